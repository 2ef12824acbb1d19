package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// encodeECALL assembles the bare `ecall` instruction: I-format, all fields zero
// except imm11_0 = 0.
func (e *Encoder) encodeECALL(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 0); err != nil {
		return 0, err
	}
	word := uint32(vm.OpcodeSystem)
	word = vm.EncodeImmI(word, vm.ImmECALL)
	return word, nil
}

// encodeEBREAK assembles the bare `ebreak` instruction: same as ecall with
// imm11_0 = 1.
func (e *Encoder) encodeEBREAK(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 0); err != nil {
		return 0, err
	}
	word := uint32(vm.OpcodeSystem)
	word = vm.EncodeImmI(word, vm.ImmEBREAK)
	return word, nil
}

// csrRegFunct3 maps csrrw/csrrs/csrrc to their funct3 encoding.
var csrRegFunct3 = map[string]uint32{
	"csrrw": vm.Funct3CSRRW, "csrrs": vm.Funct3CSRRS, "csrrc": vm.Funct3CSRRC,
}

// encodeCSRReg assembles `csrrw/csrrs/csrrc rd, csr, rs1`.
func (e *Encoder) encodeCSRReg(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	csr, err := parseImmediate(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	if csr < 0 || csr > 0xFFF {
		return 0, fmt.Errorf("CSR address %d out of range (0..4095)", csr)
	}
	rs1, err := parseRegister(inst.Operands[2])
	if err != nil {
		return 0, err
	}

	word := uint32(vm.OpcodeSystem)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, csrRegFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.EncodeImmI(word, int32(csr))
	return word, nil
}

// csrImmFunct3 maps csrrwi/csrrsi/csrrci to their funct3 encoding.
var csrImmFunct3 = map[string]uint32{
	"csrrwi": vm.Funct3CSRRWI, "csrrsi": vm.Funct3CSRRSI, "csrrci": vm.Funct3CSRRCI,
}

// encodeCSRImm assembles `csrrwi/csrrsi/csrrci rd, csr, zimm`: zimm is a
// 5-bit zero-extended immediate carried in the rs1 field.
func (e *Encoder) encodeCSRImm(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	csr, err := parseImmediate(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	if csr < 0 || csr > 0xFFF {
		return 0, fmt.Errorf("CSR address %d out of range (0..4095)", csr)
	}
	zimm, err := parseImmediate(inst.Operands[2])
	if err != nil {
		return 0, err
	}
	if zimm < 0 || zimm > 31 {
		return 0, fmt.Errorf("zero-extended immediate %d out of range (0..31)", zimm)
	}

	word := uint32(vm.OpcodeSystem)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, csrImmFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, int(zimm))
	word = vm.EncodeImmI(word, int32(csr))
	return word, nil
}
