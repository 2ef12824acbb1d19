package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// encodeLUI assembles `lui rd, imm`: imm is the 20-bit upper-field value,
// left-shifted into bits [31:12].
func (e *Encoder) encodeLUI(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	imm, err := parseImmediate(inst.Operands[1])
	if err != nil {
		return 0, err
	}

	word := uint32(vm.OpcodeLUI)
	word = vm.SetRd(word, rd)
	word = vm.EncodeImmU(word, uint32(imm)<<12)
	return word, nil
}

// encodeAUIPC assembles `auipc rd, imm`, identical field layout to lui.
func (e *Encoder) encodeAUIPC(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	imm, err := parseImmediate(inst.Operands[1])
	if err != nil {
		return 0, err
	}

	word := uint32(vm.OpcodeAUIPC)
	word = vm.SetRd(word, rd)
	word = vm.EncodeImmU(word, uint32(imm)<<12)
	return word, nil
}

// aluImmFunct3 maps the ALU-immediate mnemonics to their funct3 encoding.
var aluImmFunct3 = map[string]uint32{
	"addi": vm.Funct3AddSub, "slti": vm.Funct3SLT, "sltiu": vm.Funct3SLTU,
	"xori": vm.Funct3XOR, "ori": vm.Funct3OR, "andi": vm.Funct3AND,
}

// encodeALUImm assembles `addi/slti/sltiu/xori/ori/andi rd, rs1, imm`.
func (e *Encoder) encodeALUImm(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	imm, err := parseImmediate(inst.Operands[2])
	if err != nil {
		return 0, err
	}
	if imm < -2048 || imm > 2047 {
		return 0, fmt.Errorf("immediate %d out of range for %s (-2048..2047)", imm, inst.Mnemonic)
	}

	word := uint32(vm.OpcodeALUImm)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, aluImmFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.EncodeImmI(word, int32(imm))
	return word, nil
}

// shiftImmFunct7 maps slli/srli/srai to their funct7 (srai uses Funct7Alt).
var shiftImmFunct7 = map[string]uint32{
	"slli": vm.Funct7Base, "srli": vm.Funct7Base, "srai": vm.Funct7Alt,
}

// encodeShiftImm assembles `slli/srli/srai rd, rs1, shamt`.
func (e *Encoder) encodeShiftImm(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	shamt, err := parseImmediate(inst.Operands[2])
	if err != nil {
		return 0, err
	}
	if shamt < 0 || shamt > 31 {
		return 0, fmt.Errorf("shift amount %d out of range for %s (0..31)", shamt, inst.Mnemonic)
	}

	word := uint32(vm.OpcodeALUImm)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, vm.Funct3SLL)
	if inst.Mnemonic != "slli" {
		word = vm.SetFunct3(word, vm.Funct3SR)
	}
	word = vm.SetRs1(word, rs1)
	word = vm.EncodeShift(word, uint32(shamt))
	word = vm.SetFunct7(word, shiftImmFunct7[inst.Mnemonic])
	return word, nil
}

// aluRegFunct3 and aluRegFunct7 map add/sub/sll/slt/sltu/xor/srl/sra/or/and
// to their funct3/funct7 encoding.
var aluRegFunct3 = map[string]uint32{
	"add": vm.Funct3AddSub, "sub": vm.Funct3AddSub, "sll": vm.Funct3SLL,
	"slt": vm.Funct3SLT, "sltu": vm.Funct3SLTU, "xor": vm.Funct3XOR,
	"srl": vm.Funct3SR, "sra": vm.Funct3SR, "or": vm.Funct3OR, "and": vm.Funct3AND,
}

var aluRegFunct7 = map[string]uint32{
	"sub": vm.Funct7Alt, "sra": vm.Funct7Alt,
}

// encodeALUReg assembles `add/sub/sll/slt/sltu/xor/srl/sra/or/and rd, rs1, rs2`.
func (e *Encoder) encodeALUReg(inst *parser.Instruction) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Operands[2])
	if err != nil {
		return 0, err
	}

	word := uint32(vm.OpcodeALUReg)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, aluRegFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.SetRs2(word, rs2)
	word = vm.SetFunct7(word, aluRegFunct7[inst.Mnemonic]) // defaults to Funct7Base (zero value)
	return word, nil
}
