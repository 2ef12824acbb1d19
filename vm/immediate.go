package vm

// Immediate encode/decode pairs for the six RV32I immediate layouts. These
// are written as direct bit-by-bit tables rather than arithmetic shortcuts:
// the B- and J-type immediates scramble their bits across non-contiguous
// positions and are the single most error-prone piece of the codec.

// EncodeImmI packs a signed 12-bit immediate into the I-type field [31:20].
func EncodeImmI(word uint32, imm int32) uint32 {
	return (word &^ (0xFFF << 20)) | ((uint32(imm) & 0xFFF) << 20)
}

// DecodeImmI reads the I-type 12-bit immediate and sign-extends it from bit 11.
func DecodeImmI(word uint32) int32 {
	raw := (word >> 20) & 0xFFF
	return SignExtend(raw, 12)
}

// EncodeImmS packs a signed 12-bit immediate into the S-type split field:
// bits[4:0] into [11:7], bits[11:5] into [31:25].
func EncodeImmS(word uint32, imm int32) uint32 {
	u := uint32(imm) & 0xFFF
	word = (word &^ (0x1F << 7)) | ((u & 0x1F) << 7)
	word = (word &^ (0x7F << 25)) | (((u >> 5) & 0x7F) << 25)
	return word
}

// DecodeImmS reassembles the S-type immediate and sign-extends it from bit 11.
func DecodeImmS(word uint32) int32 {
	lo := (word >> 7) & 0x1F
	hi := (word >> 25) & 0x7F
	raw := (hi << 5) | lo
	return SignExtend(raw, 12)
}

// EncodeImmB packs a signed, even 13-bit immediate into the B-type scrambled
// field: bit 11 -> [7], bits[4:1] -> [11:8], bits[10:5] -> [30:25], bit 12 -> [31].
func EncodeImmB(word uint32, imm int32) uint32 {
	u := uint32(imm)
	bit12 := (u >> 12) & 0x1
	bit11 := (u >> 11) & 0x1
	bits10_5 := (u >> 5) & 0x3F
	bits4_1 := (u >> 1) & 0xF

	word = (word &^ (0x1 << 7)) | (bit11 << 7)
	word = (word &^ (0xF << 8)) | (bits4_1 << 8)
	word = (word &^ (0x3F << 25)) | (bits10_5 << 25)
	word = (word &^ (0x1 << 31)) | (bit12 << 31)
	return word
}

// DecodeImmB reassembles the B-type immediate and sign-extends it from bit 12.
// The result is always even: bit 0 is never stored.
func DecodeImmB(word uint32) int32 {
	bit12 := (word >> 31) & 0x1
	bits10_5 := (word >> 25) & 0x3F
	bits4_1 := (word >> 8) & 0xF
	bit11 := (word >> 7) & 0x1

	raw := (bit12 << 12) | (bit11 << 11) | (bits10_5 << 5) | (bits4_1 << 1)
	return SignExtend(raw, 13)
}

// EncodeImmU packs the already-shifted 32-bit value (upper 20 bits
// meaningful, low 12 bits zero) into the U-type field [31:12].
func EncodeImmU(word uint32, imm uint32) uint32 {
	return (word &^ 0xFFFFF000) | (imm & 0xFFFFF000)
}

// DecodeImmU returns the U-type upper bits, already shifted into position.
func DecodeImmU(word uint32) uint32 {
	return word & 0xFFFFF000
}

// EncodeImmJ packs a signed, even 21-bit immediate into the J-type scrambled
// field: bit 20 -> [31], bits[10:1] -> [30:21], bit 11 -> [20], bits[19:12] -> [19:12].
func EncodeImmJ(word uint32, imm int32) uint32 {
	u := uint32(imm)
	bit20 := (u >> 20) & 0x1
	bits10_1 := (u >> 1) & 0x3FF
	bit11 := (u >> 11) & 0x1
	bits19_12 := (u >> 12) & 0xFF

	word = (word &^ (0xFF << 12)) | (bits19_12 << 12)
	word = (word &^ (0x1 << 20)) | (bit11 << 20)
	word = (word &^ (0x3FF << 21)) | (bits10_1 << 21)
	word = (word &^ (0x1 << 31)) | (bit20 << 31)
	return word
}

// DecodeImmJ reassembles the J-type immediate and sign-extends it from bit 20.
// The result is always even: bit 0 is never stored.
func DecodeImmJ(word uint32) int32 {
	bit20 := (word >> 31) & 0x1
	bits10_1 := (word >> 21) & 0x3FF
	bit11 := (word >> 20) & 0x1
	bits19_12 := (word >> 12) & 0xFF

	raw := (bit20 << 20) | (bit11 << 11) | (bits19_12 << 12) | (bits10_1 << 1)
	return SignExtend(raw, 21)
}

// EncodeShift packs a 5-bit unsigned shift amount verbatim into bits [24:20].
func EncodeShift(word uint32, shamt uint32) uint32 {
	return (word &^ (0x1F << 20)) | ((shamt & 0x1F) << 20)
}

// DecodeShift reads the 5-bit shift amount from bits [24:20].
func DecodeShift(word uint32) uint32 {
	return (word >> 20) & 0x1F
}
