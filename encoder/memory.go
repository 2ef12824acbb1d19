package encoder

import (
	"fmt"

	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// loadFunct3 maps lb/lh/lw/lbu/lhu to their funct3 encoding.
var loadFunct3 = map[string]uint32{
	"lb": vm.Funct3LB, "lh": vm.Funct3LH, "lw": vm.Funct3LW,
	"lbu": vm.Funct3LBU, "lhu": vm.Funct3LHU,
}

// encodeLoad assembles `lb/lh/lw/lbu/lhu rd, rs1, imm`: addr = rs1 + imm.
func (e *Encoder) encodeLoad(inst *parser.Instruction) (uint32, error) {
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

	word := uint32(vm.OpcodeLoad)
	word = vm.SetRd(word, rd)
	word = vm.SetFunct3(word, loadFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.EncodeImmI(word, int32(imm))
	return word, nil
}

// storeFunct3 maps sb/sh/sw to their funct3 encoding.
var storeFunct3 = map[string]uint32{
	"sb": vm.Funct3SB, "sh": vm.Funct3SH, "sw": vm.Funct3SW,
}

// encodeStore assembles `sb/sh/sw rs1, rs2, imm`: addr = rs1 + imm, the
// value written is rs2.
func (e *Encoder) encodeStore(inst *parser.Instruction) (uint32, error) {
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
	imm, err := parseImmediate(inst.Operands[2])
	if err != nil {
		return 0, err
	}
	if imm < -2048 || imm > 2047 {
		return 0, fmt.Errorf("immediate %d out of range for %s (-2048..2047)", imm, inst.Mnemonic)
	}

	word := uint32(vm.OpcodeStore)
	word = vm.SetFunct3(word, storeFunct3[inst.Mnemonic])
	word = vm.SetRs1(word, rs1)
	word = vm.SetRs2(word, rs2)
	word = vm.EncodeImmS(word, int32(imm))
	return word, nil
}
