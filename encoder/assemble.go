package encoder

import (
	"github.com/lookbusy1344/rv32i-emu/parser"
)

// Assemble encodes every instruction in program, in address order, and
// returns the resulting little-endian instruction stream.
func Assemble(program *parser.Program) ([]byte, error) {
	enc := NewEncoder(program.SymbolTable)
	out := make([]byte, 0, len(program.Instructions)*4)

	for _, inst := range program.Instructions {
		word, err := enc.EncodeInstruction(inst, inst.Address)
		if err != nil {
			return nil, err
		}
		out = append(out,
			byte(word), byte(word>>8), byte(word>>16), byte(word>>24))
	}

	return out, nil
}
