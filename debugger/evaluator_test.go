package debugger

import (
	"testing"

	"github.com/lookbusy1344/rv32i-emu/vm"
)

func TestEvaluatorResolvesRegistersAndPC(t *testing.T) {
	machine := vm.NewVM()
	machine.CPU.SetRegister(5, 42)
	machine.CPU.PC = 0x100

	ev := NewExpressionEvaluator()

	got, err := ev.EvaluateExpression("t0", machine, nil)
	if err != nil || got != 42 {
		t.Errorf("EvaluateExpression(t0) = %d, %v, want 42, nil", got, err)
	}

	got, err = ev.EvaluateExpression("pc", machine, nil)
	if err != nil || got != 0x100 {
		t.Errorf("EvaluateExpression(pc) = 0x%X, %v, want 0x100, nil", got, err)
	}
}

func TestEvaluatorResolvesSymbolsAndNumerics(t *testing.T) {
	machine := vm.NewVM()
	ev := NewExpressionEvaluator()
	symbols := map[string]uint32{"loop_start": 0x40}

	got, err := ev.EvaluateExpression("loop_start", machine, symbols)
	if err != nil || got != 0x40 {
		t.Errorf("EvaluateExpression(loop_start) = 0x%X, %v, want 0x40, nil", got, err)
	}

	got, err = ev.EvaluateExpression("0x10", machine, nil)
	if err != nil || got != 0x10 {
		t.Errorf("EvaluateExpression(0x10) = 0x%X, %v, want 0x10, nil", got, err)
	}

	got, err = ev.EvaluateExpression("16", machine, nil)
	if err != nil || got != 16 {
		t.Errorf("EvaluateExpression(16) = %d, %v, want 16, nil", got, err)
	}
}

func TestEvaluatorMemoryDereference(t *testing.T) {
	machine := vm.NewVM()
	if err := machine.Memory.WriteWord(0x20, 0xCAFEBABE); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	machine.CPU.SetRegister(6, 0x20)

	ev := NewExpressionEvaluator()
	got, err := ev.EvaluateExpression("*t1", machine, nil)
	if err != nil || got != 0xCAFEBABE {
		t.Errorf("EvaluateExpression(*t1) = 0x%X, %v, want 0xCAFEBABE, nil", got, err)
	}
}

func TestEvaluatorComparisons(t *testing.T) {
	machine := vm.NewVM()
	machine.CPU.SetRegister(5, 10)
	machine.CPU.SetRegister(6, 20)
	ev := NewExpressionEvaluator()

	cases := []struct {
		expr string
		want bool
	}{
		{"t0 < t1", true},
		{"t0 > t1", false},
		{"t0 <= 10", true},
		{"t0 >= 11", false},
		{"t0 == 10", true},
		{"t0 != t1", true},
		{"t0", true},  // bare nonzero operand is truthy
		{"gp", false}, // x3 defaults to 0
	}
	for _, c := range cases {
		got, err := ev.Evaluate(c.expr, machine, nil)
		if err != nil {
			t.Errorf("Evaluate(%q) errored: %v", c.expr, err)
			continue
		}
		if got != c.want {
			t.Errorf("Evaluate(%q) = %v, want %v", c.expr, got, c.want)
		}
	}
}

func TestEvaluatorUnknownOperandErrors(t *testing.T) {
	machine := vm.NewVM()
	ev := NewExpressionEvaluator()
	if _, err := ev.EvaluateExpression("not_a_thing", machine, nil); err == nil {
		t.Error("expected an error for an unresolvable operand")
	}
}

func TestGetValueNumberIncrements(t *testing.T) {
	ev := NewExpressionEvaluator()
	if got := ev.GetValueNumber(); got != 1 {
		t.Errorf("first GetValueNumber() = %d, want 1", got)
	}
	if got := ev.GetValueNumber(); got != 2 {
		t.Errorf("second GetValueNumber() = %d, want 2", got)
	}
}
