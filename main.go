package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lookbusy1344/rv32i-emu/config"
	"github.com/lookbusy1344/rv32i-emu/debugger"
	"github.com/lookbusy1344/rv32i-emu/loader"
	"github.com/lookbusy1344/rv32i-emu/logging"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		os.Exit(runCompile(os.Args[2:]))
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "-version", "--version", "version":
		fmt.Printf("rv32i-emu %s (%s)\n", Version, Commit)
		os.Exit(0)
	case "-help", "--help", "help":
		printUsage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rv32i-emu - a minimal RV32I emulator and assembler

Usage:
  rv32i-emu compile <input.s> <output.bin>   assemble source into a raw instruction word stream
  rv32i-emu run [options] <input.bin>        load and execute a compiled program

Run options:
  -config PATH    load configuration from PATH (default: platform config path)
  -max-cycles N   override the non-architectural cycle ceiling (0 disables it)
  -entry ADDR     set the initial PC (hex with 0x prefix, or decimal)
  -verbose        enable diagnostic logging
  -debug          start the line-oriented CLI debugger instead of running to completion
  -tui            start the full-screen TUI debugger instead of running to completion`)
}

// runCompile implements the `compile` subcommand.
func runCompile(args []string) int {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: rv32i-emu compile <input.s> <output.bin>")
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}
	inputPath, outputPath := fs.Arg(0), fs.Arg(1)

	source, err := os.ReadFile(inputPath) // #nosec G304 -- user-specified assembly source path
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		return 1
	}

	data, err := loader.Assemble(string(source), inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "assembly error: %v\n", err)
		return 1
	}

	if err := os.WriteFile(outputPath, data, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outputPath, err)
		return 1
	}

	return 0
}

// runRun implements the `run` subcommand.
func runRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: rv32i-emu run [options] <input.bin>")
	}

	configPath := fs.String("config", "", "load configuration from PATH")
	maxCycles := fs.Int64("max-cycles", -1, "override the non-architectural cycle ceiling (0 disables it)")
	entryStr := fs.String("entry", "", "set the initial PC (hex with 0x prefix, or decimal)")
	verbose := fs.Bool("verbose", false, "enable diagnostic logging")
	debugMode := fs.Bool("debug", false, "start the line-oriented CLI debugger")
	tuiMode := fs.Bool("tui", false, "start the full-screen TUI debugger")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return 1
	}
	inputPath := fs.Arg(0)

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		return 1
	}

	logger := logging.Default()
	logger.Verbose = *verbose

	data, err := os.ReadFile(inputPath) // #nosec G304 -- user-specified binary path
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", inputPath, err)
		return 1
	}

	machine := vm.NewVM()
	machine.Logger = logger

	if *maxCycles >= 0 {
		machine.MaxCycles = uint64(*maxCycles)
	} else {
		machine.MaxCycles = cfg.Execution.MaxCycles
	}

	if err := machine.LoadFromBytes(data); err != nil {
		fmt.Fprintf(os.Stderr, "error loading program: %v\n", err)
		return 1
	}

	entry := cfg.Execution.DefaultEntry
	if *entryStr != "" {
		entry = *entryStr
	}
	entryAddr, err := parseAddress(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid entry point %q: %v\n", entry, err)
		return 1
	}
	if entryAddr != 0 {
		machine.EntryPoint = entryAddr
		machine.CPU.PC = entryAddr
	}

	logger.Infof("loaded %s (%d bytes), entry=0x%08X, max-cycles=%d\n", inputPath, len(data), entryAddr, machine.MaxCycles)

	if *debugMode || *tuiMode {
		dbg := debugger.NewDebugger(machine)
		if *tuiMode {
			if err := debugger.RunTUI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
				return 1
			}
		} else {
			fmt.Println("RV32I debugger - type 'help' for commands")
			if err := debugger.RunCLI(dbg); err != nil {
				fmt.Fprintf(os.Stderr, "debugger error: %v\n", err)
				return 1
			}
		}
		return 0
	}

	if err := machine.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "runtime error at PC=0x%08X: %v\n", machine.CPU.PC, err)
		return 1
	}

	logger.Infof("halted after %d cycles, %d instructions executed\n", machine.CPU.Cycles, len(machine.InstructionLog))
	return 0
}

func parseAddress(s string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 32)
		return uint32(v), err
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
