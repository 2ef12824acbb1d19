package vm

// executeLoad implements lb/lh/lw/lbu/lhu: addr <- rs1 +wrap sign-extend(imm_dec_I).
func executeLoad(c *CPU, m *Memory, word uint32) error {
	addr := c.GetRegister(Rs1(word)) + uint32(DecodeImmI(word))
	var result uint32

	switch Funct3(word) {
	case Funct3LB:
		b, err := m.ReadByte(addr)
		if err != nil {
			return err
		}
		result = uint32(SignExtend(uint32(b), 8))
	case Funct3LH:
		h, err := m.ReadHalfword(addr)
		if err != nil {
			return err
		}
		result = uint32(SignExtend(uint32(h), 16))
	case Funct3LW:
		w, err := m.ReadWord(addr)
		if err != nil {
			return err
		}
		result = w
	case Funct3LBU:
		b, err := m.ReadByte(addr)
		if err != nil {
			return err
		}
		result = uint32(b)
	case Funct3LHU:
		h, err := m.ReadHalfword(addr)
		if err != nil {
			return err
		}
		result = uint32(h)
	default:
		return fatalOpcodeErrorf(word, "unknown LOAD funct3 0x%X", Funct3(word))
	}

	c.SetRegister(Rd(word), result)
	c.PC += 4
	return nil
}

// executeStore implements sb/sh/sw: addr <- rs1 +wrap sign-extend(imm_dec_S);
// the low 1/2/4 bytes of rs2 are written little-endian.
func executeStore(c *CPU, m *Memory, word uint32) error {
	addr := c.GetRegister(Rs1(word)) + uint32(DecodeImmS(word))
	value := c.GetRegister(Rs2(word))

	var err error
	switch Funct3(word) {
	case Funct3SB:
		err = m.WriteByte(addr, byte(value))
	case Funct3SH:
		err = m.WriteHalfword(addr, uint16(value))
	case Funct3SW:
		err = m.WriteWord(addr, value)
	default:
		return fatalOpcodeErrorf(word, "unknown STORE funct3 0x%X", Funct3(word))
	}
	if err != nil {
		return err
	}

	c.PC += 4
	return nil
}
