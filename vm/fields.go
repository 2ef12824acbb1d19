package vm

// Bit-field views over a 32-bit instruction word. Each accessor operates on
// the whole word; writers clear their bit range and OR in the masked value.

// Opcode returns the 7-bit opcode field, bits [6:0].
func Opcode(word uint32) uint32 { return word & 0x7F }

// Rd returns the 5-bit destination register field, bits [11:7].
func Rd(word uint32) int { return int((word >> 7) & 0x1F) }

// Funct3 returns the 3-bit funct3 field, bits [14:12].
func Funct3(word uint32) uint32 { return (word >> 12) & 0x7 }

// Rs1 returns the 5-bit first source register field, bits [19:15].
func Rs1(word uint32) int { return int((word >> 15) & 0x1F) }

// Rs2 returns the 5-bit second source register field, bits [24:20].
func Rs2(word uint32) int { return int((word >> 20) & 0x1F) }

// Funct7 returns the 7-bit funct7 field, bits [31:25].
func Funct7(word uint32) uint32 { return (word >> 25) & 0x7F }

// Shamt returns the 5-bit shift amount field of the Shift format, bits [24:20].
func Shamt(word uint32) uint32 { return (word >> 20) & 0x1F }

// SetOpcode clears and sets the opcode field.
func SetOpcode(word, v uint32) uint32 { return (word &^ 0x7F) | (v & 0x7F) }

// SetRd clears and sets the rd field.
func SetRd(word uint32, v int) uint32 {
	return (word &^ (0x1F << 7)) | ((uint32(v) & 0x1F) << 7)
}

// SetFunct3 clears and sets the funct3 field.
func SetFunct3(word, v uint32) uint32 {
	return (word &^ (0x7 << 12)) | ((v & 0x7) << 12)
}

// SetRs1 clears and sets the rs1 field.
func SetRs1(word uint32, v int) uint32 {
	return (word &^ (0x1F << 15)) | ((uint32(v) & 0x1F) << 15)
}

// SetRs2 clears and sets the rs2 field.
func SetRs2(word uint32, v int) uint32 {
	return (word &^ (0x1F << 20)) | ((uint32(v) & 0x1F) << 20)
}

// SetFunct7 clears and sets the funct7 field.
func SetFunct7(word, v uint32) uint32 {
	return (word &^ (0x7F << 25)) | ((v & 0x7F) << 25)
}

// SetShamt clears and sets the shift-amount field.
func SetShamt(word, v uint32) uint32 {
	return (word &^ (0x1F << 20)) | ((v & 0x1F) << 20)
}
