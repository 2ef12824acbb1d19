package vm

// abiNames gives the calling-convention name for each general-purpose
// register, x0 through x31.
var abiNames = [NumRegisters]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// RegisterName returns the ABI name for register i, or "?" if i is out of range.
func RegisterName(i int) string {
	if i < 0 || i >= NumRegisters {
		return "?"
	}
	return abiNames[i]
}
