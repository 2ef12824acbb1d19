package vm

// CPU represents the RV32I processor state: 32 general-purpose registers,
// a bank of control/status registers, and the program counter.
type CPU struct {
	R      [NumRegisters]uint32
	CSR    [NumCSRs]uint64
	PC     uint32
	Cycles uint64
}

// NewCPU creates and initializes a new CPU instance.
func NewCPU() *CPU {
	cpu := &CPU{}
	cpu.Reset()
	return cpu
}

// Reset re-zeros all architectural state and re-arms the stack pointer.
func (c *CPU) Reset() {
	for i := range c.R {
		c.R[i] = 0
	}
	for i := range c.CSR {
		c.CSR[i] = 0
	}
	c.PC = 0
	c.Cycles = 0
	c.R[2] = StackPointerInit // sp
}

// GetRegister returns the value of register i (0..31). Register 0 always
// reads as 0, independent of what was last written to it.
func (c *CPU) GetRegister(i int) uint32 {
	if i <= 0 {
		return 0
	}
	return c.R[i]
}

// SetRegister sets register i (0..31). Writes to register 0 are silently
// discarded; ZeroRegisterZero additionally re-zeros it at each fetch so the
// discard is enforced even if callers write through R directly.
func (c *CPU) SetRegister(i int, v uint32) {
	if i <= 0 || i >= NumRegisters {
		return
	}
	c.R[i] = v
}

// ZeroRegisterZero re-zeros register 0. Called at the top of every fetch cycle.
func (c *CPU) ZeroRegisterZero() {
	c.R[0] = 0
}

// GetCSR returns the value of CSR addr, a 12-bit index.
func (c *CPU) GetCSR(addr uint32) uint64 {
	return c.CSR[addr&0xFFF]
}

// SetCSR sets the value of CSR addr, a 12-bit index.
func (c *CPU) SetCSR(addr uint32, v uint64) {
	c.CSR[addr&0xFFF] = v
}

// IncrementCycles increments the cycle counter.
func (c *CPU) IncrementCycles(n uint64) {
	c.Cycles += n
}
