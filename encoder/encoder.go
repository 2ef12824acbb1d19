// Package encoder turns parsed instructions into RV32I instruction words.
package encoder

import (
	"fmt"
	"strconv"

	"github.com/lookbusy1344/rv32i-emu/parser"
)

// Encoder holds the label table built during parsing; each call to
// EncodeInstruction is otherwise stateless.
type Encoder struct {
	symbolTable *parser.SymbolTable
}

// NewEncoder creates an Encoder bound to symbolTable.
func NewEncoder(symbolTable *parser.SymbolTable) *Encoder {
	return &Encoder{symbolTable: symbolTable}
}

// EncodeInstruction dispatches on mnemonic and returns the encoded word, or
// an EncodingError naming the offending instruction.
func (e *Encoder) EncodeInstruction(inst *parser.Instruction, address uint32) (uint32, error) {
	var word uint32
	var err error

	switch inst.Mnemonic {
	case "lui":
		word, err = e.encodeLUI(inst)
	case "auipc":
		word, err = e.encodeAUIPC(inst)
	case "jal":
		word, err = e.encodeJAL(inst, address)
	case "jalr":
		word, err = e.encodeJALR(inst)
	case "beq", "bne", "blt", "bge", "bltu", "bgeu":
		word, err = e.encodeBranchInst(inst, address)
	case "lb", "lh", "lw", "lbu", "lhu":
		word, err = e.encodeLoad(inst)
	case "sb", "sh", "sw":
		word, err = e.encodeStore(inst)
	case "addi", "slti", "sltiu", "xori", "ori", "andi":
		word, err = e.encodeALUImm(inst)
	case "slli", "srli", "srai":
		word, err = e.encodeShiftImm(inst)
	case "add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and":
		word, err = e.encodeALUReg(inst)
	case "ecall":
		word, err = e.encodeECALL(inst)
	case "ebreak":
		word, err = e.encodeEBREAK(inst)
	case "csrrw", "csrrs", "csrrc":
		word, err = e.encodeCSRReg(inst)
	case "csrrwi", "csrrsi", "csrrci":
		word, err = e.encodeCSRImm(inst)
	default:
		return 0, NewEncodingError(inst, fmt.Sprintf("unknown mnemonic %q", inst.Mnemonic))
	}

	if err != nil {
		return 0, WrapEncodingError(inst, err)
	}
	return word, nil
}

// requireOperands checks the operand count exactly matches n.
func requireOperands(inst *parser.Instruction, n int) error {
	if len(inst.Operands) != n {
		return fmt.Errorf("%s expects %d operands, got %d", inst.Mnemonic, n, len(inst.Operands))
	}
	return nil
}

// parseRegister resolves a register operand to its 0..31 index.
func parseRegister(operand string) (int, error) {
	idx, ok := parser.RegisterIndex(operand)
	if !ok {
		return 0, fmt.Errorf("invalid register %q", operand)
	}
	return idx, nil
}

// parseNumericImmediate parses a decimal or 0x-prefixed hex literal, with an
// optional leading sign.
func parseNumericImmediate(text string) (int64, bool) {
	s := text
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}

	var v int64
	var err error
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		u, perr := strconv.ParseUint(s[2:], 16, 64)
		err = perr
		v = int64(u)
	} else {
		v, err = strconv.ParseInt(s, 10, 64)
	}
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// parseImmediate resolves an operand that must be a plain numeric literal
// (arithmetic immediates, shift amounts, CSR addresses, U-type immediates).
func parseImmediate(operand string) (int64, error) {
	v, ok := parseNumericImmediate(operand)
	if !ok {
		return 0, fmt.Errorf("invalid immediate %q", operand)
	}
	return v, nil
}

// resolvePCRelative resolves a jump/branch target operand: a numeric literal
// is used as a direct byte offset, and a label resolves to
// label_addr - current_emit_addr.
func (e *Encoder) resolvePCRelative(operand string, currentAddr uint32) (int32, error) {
	if v, ok := parseNumericImmediate(operand); ok {
		return int32(v), nil
	}
	val, err := e.symbolTable.Get(operand)
	if err != nil {
		return 0, err
	}
	return int32(val) - int32(currentAddr), nil
}
