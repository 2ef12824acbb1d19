package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// encodeJAL assembles `jal rd, target`, where target is a label or a direct
// byte offset resolved PC-relative to address.
func (e *Encoder) encodeJAL(inst *parser.Instruction, address uint32) (uint32, error) {
	if err := requireOperands(inst, 2); err != nil {
		return 0, err
	}
	rd, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	offset, err := e.resolvePCRelative(inst.Operands[1], address)
	if err != nil {
		return 0, err
	}
	if offset%2 != 0 {
		return 0, fmt.Errorf("jal target offset %d is not even", offset)
	}
	if offset < -1048576 || offset > 1048574 {
		return 0, fmt.Errorf("jal target offset %d out of range (-1048576..1048574)", offset)
	}

	word := uint32(vm.OpcodeJAL)
	word = vm.SetRd(word, rd)
	word = vm.EncodeImmJ(word, offset)
	return word, nil
}

// encodeJALR assembles `jalr rd, rs1, imm`.
func (e *Encoder) encodeJALR(inst *parser.Instruction) (uint32, error) {
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
		return 0, fmt.Errorf("jalr immediate %d out of range (-2048..2047)", imm)
	}

	word := uint32(vm.OpcodeJALR)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, 0)
	word = vm.SetRs1(word, rs1)
	word = vm.EncodeImmI(word, int32(imm))
	return word, nil
}

// branchFunct3 maps beq/bne/blt/bge/bltu/bgeu to their funct3 encoding.
var branchFunct3 = map[string]uint32{
	"beq": vm.Funct3BEQ, "bne": vm.Funct3BNE, "blt": vm.Funct3BLT,
	"bge": vm.Funct3BGE, "bltu": vm.Funct3BLTU, "bgeu": vm.Funct3BGEU,
}

// encodeBranchInst assembles `beq/bne/blt/bge/bltu/bgeu rs1, rs2, target`.
func (e *Encoder) encodeBranchInst(inst *parser.Instruction, address uint32) (uint32, error) {
	if err := requireOperands(inst, 3); err != nil {
		return 0, err
	}
	rs1, err := parseRegister(inst.Operands[0])
	if err != nil {
		return 0, err
	}
	rs2, err := parseRegister(inst.Operands[1])
	if err != nil {
		return 0, err
	}
	offset, err := e.resolvePCRelative(inst.Operands[2], address)
	if err != nil {
		return 0, err
	}
	if offset%2 != 0 {
		return 0, fmt.Errorf("branch target offset %d is not even", offset)
	}
	if offset < -4096 || offset > 4094 {
		return 0, fmt.Errorf("branch target offset %d out of range (-4096..4094)", offset)
	}

	word := uint32(vm.OpcodeBranch)
	word = vm.SetFunct3(word, branchFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.SetRs2(word, rs2)
	word = vm.EncodeImmB(word, offset)
	return word, nil
}
