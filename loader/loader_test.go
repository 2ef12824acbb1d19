package loader

import (
	"testing"

	"github.com/lookbusy1344/rv32i-emu/vm"
)

// assembleAndRun assembles source, loads it, and runs it to halt, returning
// the machine for register inspection.
func assembleAndRun(t *testing.T, source string) *vm.VM {
	t.Helper()
	machine := vm.NewVM()
	if err := AssembleAndLoad(machine, source, "test.s"); err != nil {
		t.Fatalf("assemble/load failed: %v", err)
	}
	if err := machine.Run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return machine
}

func TestScenarioAddiLUIAdd(t *testing.T) {
	m := assembleAndRun(t, `
		addi t0, zero, 291
		lui t1, 0x12345
		add t2, t0, t1
	`)
	if got := m.CPU.GetRegister(5); got != 0x00000123 {
		t.Errorf("t0 = 0x%08X, want 0x00000123", got)
	}
	if got := m.CPU.GetRegister(6); got != 0x12345000 {
		t.Errorf("t1 = 0x%08X, want 0x12345000", got)
	}
	if got := m.CPU.GetRegister(7); got != 0x12345123 {
		t.Errorf("t2 = 0x%08X, want 0x12345123", got)
	}
}

func TestScenarioJALSkipsOneInstruction(t *testing.T) {
	m := assembleAndRun(t, `
		addi t0, zero, 582
		addi t1, t0, 291
		jal  t2, 8
		add  t2, t0, t1
		add  t3, t2, t1
		addi t3, t3, 873
	`)
	if got := m.CPU.GetRegister(5); got != 0x246 {
		t.Errorf("t0 = 0x%X, want 0x246", got)
	}
	if got := m.CPU.GetRegister(6); got != 0x369 {
		t.Errorf("t1 = 0x%X, want 0x369", got)
	}
	if got := m.CPU.GetRegister(7); got != 0x00C {
		t.Errorf("t2 = 0x%X, want 0x00C (return address)", got)
	}
	if got := m.CPU.GetRegister(28); got != 0x6DE {
		t.Errorf("t3 = 0x%X, want 0x6DE", got)
	}
}

func TestScenarioStoreLoadByteSignExtend(t *testing.T) {
	m := assembleAndRun(t, `
		addi t0, zero, 12
		addi t1, zero, -127
		sb   t0, t1, 8
		lb   t2, t0, 8
	`)
	if got := m.CPU.GetRegister(7); got != 0xFFFFFF81 {
		t.Errorf("t2 = 0x%08X, want 0xFFFFFF81", got)
	}
}

func TestScenarioArithmeticShiftPreservesSign(t *testing.T) {
	m := assembleAndRun(t, `
		lui  t0, 0x80000
		addi t0, t0, 1
		addi t1, zero, 16
		sra  t2, t0, t1
	`)
	if got := m.CPU.GetRegister(5); got != 0x80000001 {
		t.Errorf("t0 = 0x%08X, want 0x80000001", got)
	}
	if got := m.CPU.GetRegister(7); got != 0xFFFF8000 {
		t.Errorf("t2 = 0x%08X, want 0xFFFF8000", got)
	}
}

func TestScenarioBGEULoop(t *testing.T) {
	m := assembleAndRun(t, `
		addi t0, zero, 1606
		addi t1, t1, 1315
		bgeu t0, t1, -4
		add  t2, t0, t1
	`)
	if got := m.CPU.GetRegister(5); got != 0x646 {
		t.Errorf("t0 = 0x%X, want 0x646", got)
	}
	if got := m.CPU.GetRegister(6); got != 0xA46 {
		t.Errorf("t1 = 0x%X, want 0xA46", got)
	}
	if got := m.CPU.GetRegister(7); got != 0x108C {
		t.Errorf("t2 = 0x%X, want 0x108C", got)
	}
}

func TestScenarioXORI(t *testing.T) {
	m := assembleAndRun(t, `
		addi t0, zero, 291
		xori t1, t0, 582
	`)
	if got := m.CPU.GetRegister(6); got != 0x365 {
		t.Errorf("t1 = 0x%X, want 0x365", got)
	}
}

func TestAssembleRejectsUndefinedLabel(t *testing.T) {
	_, err := Assemble(`jal ra, nowhere`, "test.s")
	if err == nil {
		t.Fatal("expected an error for a jump to an undefined label")
	}
}

func TestAssembleResolvesForwardLabel(t *testing.T) {
	data, err := Assemble(`
		jal  zero, skip
		addi t0, zero, 1
	skip:
		addi t1, zero, 2
	`, "test.s")
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(data) != 12 {
		t.Fatalf("expected 3 instruction words (12 bytes), got %d", len(data))
	}
}

func TestLoadFromBytesRejectsOversizedImage(t *testing.T) {
	machine := vm.NewVM()
	oversized := make([]byte, vm.MemorySize)
	if err := machine.LoadFromBytes(oversized); err == nil {
		t.Fatal("expected an error loading an image that leaves no room for the halt sentinel")
	}
}
