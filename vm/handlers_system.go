package vm

// executeSystem implements ecall/ebreak and the csrrw/csrrs/csrrc/csrrwi/csrrsi/csrrci
// family, all sharing the SYSTEM opcode.
func executeSystem(v *VM, word uint32) error {
	funct3 := Funct3(word)

	if funct3 == Funct3PRIV {
		imm := uint32(DecodeImmI(word)) & 0xFFF
		switch imm {
		case ImmECALL:
			// No trap is modelled; ecall is a no-op beyond advancing PC.
			v.CPU.PC += 4
			return nil
		case ImmEBREAK:
			v.dumpRegistersTo(v.Logger)
			if v.OnEbreak != nil {
				v.OnEbreak(v)
			}
			v.CPU.PC += 4
			return nil
		default:
			return fatalOpcodeErrorf(word, "unknown SYSTEM imm 0x%X", imm)
		}
	}

	csrAddr := uint32(DecodeImmI(word)) & 0xFFF
	rd := Rd(word)
	c := v.CPU
	old := c.GetCSR(csrAddr)

	switch funct3 {
	case Funct3CSRRW:
		rs1 := c.GetRegister(Rs1(word))
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, uint64(rs1))
	case Funct3CSRRS:
		rs1 := c.GetRegister(Rs1(word))
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, old|uint64(rs1))
	case Funct3CSRRC:
		rs1 := c.GetRegister(Rs1(word))
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, old&^uint64(rs1))
	case Funct3CSRRWI:
		zimm := uint64(Rs1(word)) & 0x1F
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, zimm)
	case Funct3CSRRSI:
		zimm := uint64(Rs1(word)) & 0x1F
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, old|zimm)
	case Funct3CSRRCI:
		zimm := uint64(Rs1(word)) & 0x1F
		c.SetRegister(rd, uint32(old))
		c.SetCSR(csrAddr, old&^zimm)
	default:
		return fatalOpcodeErrorf(word, "unknown SYSTEM funct3 0x%X", funct3)
	}

	c.PC += 4
	return nil
}
