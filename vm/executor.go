package vm

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/logging"
)

// ExecutionState represents the current state of execution.
type ExecutionState int

const (
	StateHalted ExecutionState = iota
	StateRunning
	StateError
)

// String implements fmt.Stringer for diagnostic output.
func (s ExecutionState) String() string {
	switch s {
	case StateHalted:
		return "halted"
	case StateRunning:
		return "running"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// VM represents the complete virtual machine: CPU, memory, and the
// bookkeeping the driver and debugger need around a run.
type VM struct {
	CPU    *CPU
	Memory *Memory
	State  ExecutionState

	// MaxCycles is a non-architectural safety net; zero disables the
	// cycle ceiling.
	MaxCycles uint64

	InstructionLog []uint32 // history of executed instruction addresses
	LastError      error

	EntryPoint uint32

	// Logger receives ebreak register dumps and other operator-facing output.
	Logger *logging.Logger

	// OnEbreak, if set, is invoked after the register dump on every ebreak.
	// Nothing in this module sets it, so ebreak does not stop the debuggers.
	OnEbreak func(*VM)

	// LastMemoryWrite records the address of the most recent memory write;
	// HasMemoryWrite reports whether one has happened since the last reset.
	LastMemoryWrite uint32
	HasMemoryWrite  bool
}

// NewVM creates a new virtual machine instance.
func NewVM() *VM {
	return &VM{
		CPU:            NewCPU(),
		Memory:         NewMemory(),
		State:          StateHalted,
		MaxCycles:      DefaultMaxCycles,
		InstructionLog: make([]uint32, 0, DefaultLogCapacity),
		Logger:         logging.Default(),
	}
}

// Reset resets the VM to initial state.
func (v *VM) Reset() {
	v.CPU.Reset()
	v.Memory.Reset()
	v.State = StateHalted
	v.InstructionLog = v.InstructionLog[:0]
	v.LastError = nil
	v.HasMemoryWrite = false
}

// LoadFromBytes resets the VM and copies a program image to address 0,
// followed by the halt sentinel.
func (v *VM) LoadFromBytes(data []byte) error {
	v.Reset()

	if len(data) > MemorySize-4 {
		return fmt.Errorf("program image of %d bytes exceeds available memory (max %d bytes)", len(data), MemorySize-4)
	}

	if err := v.Memory.LoadBytes(0, data); err != nil {
		return fmt.Errorf("failed to load program: %w", err)
	}
	if err := v.Memory.WriteWord(uint32(len(data)), HaltSentinel); err != nil {
		return fmt.Errorf("failed to write halt sentinel: %w", err)
	}

	v.EntryPoint = 0
	v.CPU.PC = 0
	v.State = StateHalted
	return nil
}

// Fetch reads the 32-bit instruction word at the current PC.
func (v *VM) Fetch() (uint32, error) {
	word, err := v.Memory.ReadWord(v.CPU.PC)
	if err != nil {
		return 0, fmt.Errorf("fetch failed at PC=0x%08X: %w", v.CPU.PC, err)
	}
	return word, nil
}

// Execute decodes opcode from word and dispatches to the matching handler.
// Every handler is responsible for updating PC.
func (v *VM) Execute(word uint32) error {
	switch Opcode(word) {
	case OpcodeLUI:
		return executeLUI(v.CPU, word)
	case OpcodeAUIPC:
		return executeAUIPC(v.CPU, word)
	case OpcodeJAL:
		return executeJAL(v.CPU, word)
	case OpcodeJALR:
		return executeJALR(v.CPU, word)
	case OpcodeBranch:
		return executeBranch(v.CPU, word)
	case OpcodeLoad:
		return executeLoad(v.CPU, v.Memory, word)
	case OpcodeStore:
		err := executeStore(v.CPU, v.Memory, word)
		if err == nil {
			v.LastMemoryWrite = v.CPU.GetRegister(Rs1(word)) + uint32(DecodeImmS(word))
			v.HasMemoryWrite = true
		}
		return err
	case OpcodeALUImm:
		if Funct3(word) == Funct3SLL || Funct3(word) == Funct3SR {
			return executeShiftImm(v.CPU, word)
		}
		return executeALUImm(v.CPU, word)
	case OpcodeALUReg:
		return executeALUReg(v.CPU, word)
	case OpcodeSystem:
		return executeSystem(v, word)
	default:
		return fatalOpcodeErrorf(word, "unknown opcode 0x%X", Opcode(word))
	}
}

// fatalOpcodeErrorf formats a fatal decode/execute error with the offending word.
func fatalOpcodeErrorf(word uint32, format string, args ...interface{}) error {
	return fmt.Errorf("%s (word=0x%08X)", fmt.Sprintf(format, args...), word)
}

// Step executes a single fetch-decode-dispatch-execute cycle.
func (v *VM) Step() error {
	if v.State == StateError {
		return fmt.Errorf("VM is in error state: %w", v.LastError)
	}

	if v.MaxCycles > 0 && v.CPU.Cycles >= v.MaxCycles {
		v.State = StateError
		v.LastError = fmt.Errorf("cycle limit exceeded (%d cycles)", v.MaxCycles)
		return v.LastError
	}

	// (a) force register 0 to 0.
	v.CPU.ZeroRegisterZero()

	// (b) read the 32-bit word at memory[PC].
	word, err := v.Fetch()
	if err != nil {
		v.State = StateError
		v.LastError = err
		return err
	}

	// (c) halt sentinel check.
	if word == HaltSentinel {
		v.State = StateHalted
		return nil
	}

	v.InstructionLog = append(v.InstructionLog, v.CPU.PC)

	// (d) decode opcode and dispatch.
	if err := v.Execute(word); err != nil {
		v.State = StateError
		v.LastError = fmt.Errorf("execute failed at PC=0x%08X: %w", v.CPU.PC, err)
		return v.LastError
	}

	v.CPU.IncrementCycles(1)
	return nil
}

// Run drives execution until the sentinel is fetched or a fatal condition is raised.
func (v *VM) Run() error {
	v.State = StateRunning

	for v.State == StateRunning {
		if err := v.Step(); err != nil {
			return err
		}
	}

	return nil
}

// DumpState returns a string representation of the VM state for debugging.
func (v *VM) DumpState() string {
	return fmt.Sprintf("PC=0x%08X sp=0x%08X ra=0x%08X Cycles=%d State=%v",
		v.CPU.PC, v.CPU.GetRegister(2), v.CPU.GetRegister(1), v.CPU.Cycles, v.State)
}

// dumpRegistersTo writes the full register file to l, used by ebreak.
func (v *VM) dumpRegistersTo(l *logging.Logger) {
	if l == nil {
		return
	}
	l.Printf("ebreak at PC=0x%08X\n", v.CPU.PC)
	for i := 0; i < NumRegisters; i += 4 {
		l.Printf("  x%-2d(%-4s)=0x%08X  x%-2d(%-4s)=0x%08X  x%-2d(%-4s)=0x%08X  x%-2d(%-4s)=0x%08X\n",
			i, RegisterName(i), v.CPU.GetRegister(i),
			i+1, RegisterName(i+1), v.CPU.GetRegister(i+1),
			i+2, RegisterName(i+2), v.CPU.GetRegister(i+2),
			i+3, RegisterName(i+3), v.CPU.GetRegister(i+3))
	}
}

// GetInstructionHistory returns the history of executed instruction addresses.
func (v *VM) GetInstructionHistory() []uint32 {
	return v.InstructionLog
}
