package tools

import (
	"strings"
	"testing"
)

func TestFormatDefaultStyle(t *testing.T) {
	out, err := FormatString(`
	start: addi t0,zero,1
	beq t0,zero,start
	`, "test.s")
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 formatted lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "start:") {
		t.Errorf("expected first line to carry the label, got %q", lines[0])
	}
	if !strings.Contains(lines[0], "addi") || !strings.Contains(lines[0], "t0, zero, 1") {
		t.Errorf("expected canonical operand spacing, got %q", lines[0])
	}
}

func TestFormatCompactStyleHasNoColumnPadding(t *testing.T) {
	out, err := FormatStringWithStyle(`addi t0, zero, 1`, "test.s", FormatCompact)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if strings.Contains(out, "  ") {
		t.Errorf("compact style should not pad with multiple spaces, got %q", out)
	}
}

func TestFormatExpandedStyleWidensColumns(t *testing.T) {
	def, err := FormatStringWithStyle(`addi t0, zero, 1`, "test.s", FormatDefault)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	exp, err := FormatStringWithStyle(`addi t0, zero, 1`, "test.s", FormatExpanded)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if len(exp) <= len(def) {
		t.Errorf("expected expanded output to be wider than default: default=%q expanded=%q", def, exp)
	}
}
