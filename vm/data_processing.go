package vm

// executeLUI implements `lui rd, U`: rd <- imm_dec_U; PC += 4.
func executeLUI(c *CPU, word uint32) error {
	c.SetRegister(Rd(word), DecodeImmU(word))
	c.PC += 4
	return nil
}

// executeAUIPC implements `auipc rd, U`: rd <- PC +wrap imm_dec_U; PC += 4.
func executeAUIPC(c *CPU, word uint32) error {
	c.SetRegister(Rd(word), c.PC+DecodeImmU(word))
	c.PC += 4
	return nil
}

// executeALUImm implements the addi/slti/sltiu/xori/ori/andi family.
func executeALUImm(c *CPU, word uint32) error {
	rs1 := c.GetRegister(Rs1(word))
	imm := DecodeImmI(word)
	var result uint32

	switch Funct3(word) {
	case Funct3AddSub: // addi
		result = rs1 + uint32(imm)
	case Funct3SLT: // slti: signed compare
		if int32(rs1) < imm {
			result = 1
		}
	case Funct3SLTU: // sltiu: unsigned compare against the sign-extended immediate
		if rs1 < uint32(imm) {
			result = 1
		}
	case Funct3XOR: // xori
		result = rs1 ^ uint32(imm)
	case Funct3OR: // ori
		result = rs1 | uint32(imm)
	case Funct3AND: // andi
		result = rs1 & uint32(imm)
	default:
		return fatalOpcodeErrorf(word, "unknown ALU_IMM funct3 0x%X", Funct3(word))
	}

	c.SetRegister(Rd(word), result)
	c.PC += 4
	return nil
}

// executeShiftImm implements the slli/srli/srai family.
func executeShiftImm(c *CPU, word uint32) error {
	rs1 := c.GetRegister(Rs1(word))
	shamt := Shamt(word)
	var result uint32

	switch Funct7(word) {
	case Funct7Base:
		switch Funct3(word) {
		case Funct3SLL:
			result = rs1 << shamt // slli
		case Funct3SR:
			result = rs1 >> shamt // srli
		default:
			return fatalOpcodeErrorf(word, "unknown shift-immediate funct3 0x%X", Funct3(word))
		}
	case Funct7Alt:
		if Funct3(word) != Funct3SR {
			return fatalOpcodeErrorf(word, "unknown shift-immediate funct3 0x%X with alt funct7", Funct3(word))
		}
		result = uint32(int32(rs1) >> shamt) // srai
	default:
		return fatalOpcodeErrorf(word, "unknown shift-immediate funct7 0x%X", Funct7(word))
	}

	c.SetRegister(Rd(word), result)
	c.PC += 4
	return nil
}

// executeALUReg implements the add/sub/sll/slt/sltu/xor/srl/sra/or/and family.
func executeALUReg(c *CPU, word uint32) error {
	rs1 := c.GetRegister(Rs1(word))
	rs2 := c.GetRegister(Rs2(word))
	funct3 := Funct3(word)
	funct7 := Funct7(word)
	var result uint32

	switch funct3 {
	case Funct3AddSub:
		switch funct7 {
		case Funct7Base:
			result = rs1 + rs2 // add
		case Funct7Alt:
			result = rs1 - rs2 // sub
		default:
			return fatalOpcodeErrorf(word, "unknown ALU_REG funct7 0x%X for add/sub", funct7)
		}
	case Funct3SLL:
		result = rs1 << (rs2 & 0x1F)
	case Funct3SLT:
		if int32(rs1) < int32(rs2) {
			result = 1
		}
	case Funct3SLTU:
		if rs1 < rs2 {
			result = 1
		}
	case Funct3XOR:
		result = rs1 ^ rs2
	case Funct3SR:
		switch funct7 {
		case Funct7Base:
			result = rs1 >> (rs2 & 0x1F) // srl
		case Funct7Alt:
			result = uint32(int32(rs1) >> (rs2 & 0x1F)) // sra
		default:
			return fatalOpcodeErrorf(word, "unknown ALU_REG funct7 0x%X for srl/sra", funct7)
		}
	case Funct3OR:
		result = rs1 | rs2
	case Funct3AND:
		result = rs1 & rs2
	default:
		return fatalOpcodeErrorf(word, "unknown ALU_REG funct3 0x%X", funct3)
	}

	c.SetRegister(Rd(word), result)
	c.PC += 4
	return nil
}
