package parser

import "testing"

func TestParseSimpleInstruction(t *testing.T) {
	p := NewParser("addi t0, zero, 5\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(prog.Instructions))
	}

	inst := prog.Instructions[0]
	if inst.Mnemonic != "addi" {
		t.Errorf("expected mnemonic addi, got %q", inst.Mnemonic)
	}
	want := []string{"t0", "zero", "5"}
	if len(inst.Operands) != len(want) {
		t.Fatalf("expected %d operands, got %d: %v", len(want), len(inst.Operands), inst.Operands)
	}
	for i, w := range want {
		if inst.Operands[i] != w {
			t.Errorf("operand %d = %q, want %q", i, inst.Operands[i], w)
		}
	}
}

func TestParseLabelOnSameLineAttaches(t *testing.T) {
	p := NewParser("loop: addi t0, t0, -1\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(prog.Instructions))
	}
	if prog.Instructions[0].Label != "loop" {
		t.Errorf("expected label 'loop', got %q", prog.Instructions[0].Label)
	}
}

func TestParseAddressesIncrementByFour(t *testing.T) {
	p := NewParser("addi t0, zero, 1\naddi t1, zero, 2\naddi t2, zero, 3\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	for i, inst := range prog.Instructions {
		want := uint32(i * 4)
		if inst.Address != want {
			t.Errorf("instruction %d address = %d, want %d", i, inst.Address, want)
		}
	}
}

func TestParseStripsCommentsAndCommas(t *testing.T) {
	p := NewParser("addi t0,zero,1 # load one into t0\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(prog.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(prog.Instructions))
	}
	if len(prog.Instructions[0].Operands) != 3 {
		t.Errorf("expected comment to be stripped and operands split on commas, got %v", prog.Instructions[0].Operands)
	}
}

func TestSymbolTableForwardReference(t *testing.T) {
	p := NewParser("jal zero, later\nlater: addi t0, zero, 1\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := prog.SymbolTable.ResolveForwardReferences(); err != nil {
		t.Fatalf("expected forward reference to resolve, got: %v", err)
	}
	sym, ok := prog.SymbolTable.Lookup("later")
	if !ok || !sym.Defined {
		t.Fatalf("expected 'later' to be defined")
	}
	if sym.Value != 4 {
		t.Errorf("expected 'later' at address 4, got %d", sym.Value)
	}
}

func TestSymbolTableUndefinedReference(t *testing.T) {
	p := NewParser("jal zero, nowhere\n", "test.s")
	prog, err := p.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if err := prog.SymbolTable.ResolveForwardReferences(); err == nil {
		t.Fatal("expected an error for an undefined label reference")
	}
}

func TestRegisterIndexABIAndNumeric(t *testing.T) {
	cases := map[string]int{
		"zero": 0, "ra": 1, "sp": 2, "fp": 8, "s0": 8,
		"a0": 10, "t6": 31, "x0": 0, "x31": 31,
	}
	for name, want := range cases {
		got, ok := RegisterIndex(name)
		if !ok {
			t.Errorf("RegisterIndex(%q) not recognized", name)
			continue
		}
		if got != want {
			t.Errorf("RegisterIndex(%q) = %d, want %d", name, got, want)
		}
	}

	if _, ok := RegisterIndex("x32"); ok {
		t.Error("expected x32 to be rejected as out of range")
	}
	if _, ok := RegisterIndex("bogus"); ok {
		t.Error("expected an unknown name to be rejected")
	}
}
