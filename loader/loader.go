// Package loader glues the assembler front-end (parser+encoder) to the VM's
// load_from_bytes contract.
package loader

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/encoder"
	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// Assemble parses and encodes source text into a little-endian instruction
// word stream, the compiled object format the VM loads directly.
func Assemble(source, filename string) ([]byte, error) {
	p := parser.NewParser(source, filename)
	program, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if err := program.SymbolTable.ResolveForwardReferences(); err != nil {
		return nil, fmt.Errorf("label resolution failed: %w", err)
	}

	bytes, err := encoder.Assemble(program)
	if err != nil {
		return nil, fmt.Errorf("encode error: %w", err)
	}
	return bytes, nil
}

// AssembleAndLoad assembles source and loads the resulting image into v.
func AssembleAndLoad(v *vm.VM, source, filename string) error {
	data, err := Assemble(source, filename)
	if err != nil {
		return err
	}
	return v.LoadFromBytes(data)
}
