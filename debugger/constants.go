package debugger

import "github.com/lookbusy1344/rv32i-emu/vm"

// Source and disassembly context window constants, in bytes around the
// current PC (RV32I instructions are 4 bytes wide).
const (
	SourceContextBytesBefore = 20
	SourceContextBytesAfter  = 40

	DisassemblyContextBytesBefore = 32
	DisassemblyInstructionCount   = 16
)

// Memory Display Constants
const (
	// MemoryDisplayRows is the number of rows shown in the memory hex dump view
	MemoryDisplayRows = 16

	// MemoryDisplayColumns is the number of bytes per row in the memory hex dump view
	MemoryDisplayColumns = 16
)

// Stack Display Constants
const (
	// StackDisplayWords is the number of 32-bit words shown in the TUI stack view
	StackDisplayWords = 16

	// StackInspectionWords is the number of words the `info stack` CLI command prints
	StackInspectionWords = 8
)

// Register Display Constants
const (
	// RegisterGroupSize is the number of registers displayed per row
	RegisterGroupSize = 4

	// RegisterViewRows is the number of rows needed to show all RV32I registers
	RegisterViewRows = vm.NumRegisters / RegisterGroupSize
)
