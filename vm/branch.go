package vm

// executeJAL implements `jal rd, J`: rd <- PC+4; PC <- PC +wrap sign-extend(imm_dec_J).
func executeJAL(c *CPU, word uint32) error {
	link := c.PC + 4
	offset := DecodeImmJ(word)
	c.SetRegister(Rd(word), link)
	c.PC = c.PC + uint32(offset)
	return nil
}

// executeJALR implements `jalr rd, rs1, I`: the target is computed from the
// *current* rs1 value (read before rd is overwritten, in case rd == rs1) and
// masked to clear bit 0.
func executeJALR(c *CPU, word uint32) error {
	oldPC := c.PC + 4
	rs1 := c.GetRegister(Rs1(word))
	offset := DecodeImmI(word)
	target := (rs1 + uint32(offset)) &^ 1
	c.SetRegister(Rd(word), oldPC)
	c.PC = target
	return nil
}

// executeBranch implements beq/bne/blt/bge/bltu/bgeu: compare rs1 and rs2,
// and branch PC-relative if taken, otherwise advance PC by 4.
func executeBranch(c *CPU, word uint32) error {
	rs1 := c.GetRegister(Rs1(word))
	rs2 := c.GetRegister(Rs2(word))
	var taken bool

	switch Funct3(word) {
	case Funct3BEQ:
		taken = rs1 == rs2
	case Funct3BNE:
		taken = rs1 != rs2
	case Funct3BLT:
		taken = int32(rs1) < int32(rs2)
	case Funct3BGE:
		taken = int32(rs1) >= int32(rs2)
	case Funct3BLTU:
		taken = rs1 < rs2
	case Funct3BGEU:
		taken = rs1 >= rs2
	default:
		return fatalOpcodeErrorf(word, "unknown BRANCH funct3 0x%X", Funct3(word))
	}

	if taken {
		c.PC = c.PC + uint32(DecodeImmB(word))
	} else {
		c.PC += 4
	}
	return nil
}
