package parser

import (
	"strconv"
	"strings"
)

// abiRegisterNames maps RISC-V ABI register names to their canonical index.
// fp is an alias for s0 (x8).
var abiRegisterNames = map[string]int{
	"zero": 0, "ra": 1, "sp": 2, "gp": 3, "tp": 4,
	"t0": 5, "t1": 6, "t2": 7,
	"fp": 8, "s0": 8, "s1": 9,
	"a0": 10, "a1": 11, "a2": 12, "a3": 13, "a4": 14, "a5": 15, "a6": 16, "a7": 17,
	"s2": 18, "s3": 19, "s4": 20, "s5": 21, "s6": 22, "s7": 23, "s8": 24, "s9": 25, "s10": 26, "s11": 27,
	"t3": 28, "t4": 29, "t5": 30, "t6": 31,
}

// registerIndexOf resolves a register operand, by ABI name or numeric
// x0..x31 form, to its canonical 5-bit index.
func registerIndexOf(text string) (int, bool) {
	if idx, ok := abiRegisterNames[text]; ok {
		return idx, true
	}
	if strings.HasPrefix(text, "x") || strings.HasPrefix(text, "X") {
		n, err := strconv.Atoi(text[1:])
		if err == nil && n >= 0 && n <= 31 {
			return n, true
		}
	}
	return 0, false
}

// RegisterIndex is the exported form of registerIndexOf, used by the encoder
// to resolve register operands.
func RegisterIndex(text string) (int, bool) {
	return registerIndexOf(text)
}
