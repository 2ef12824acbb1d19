package tools

import "testing"

func hasCode(issues []*LintIssue, code string) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestLintDuplicateLabel(t *testing.T) {
	linter := NewLinter(nil)
	issues := linter.Lint(`
	start: addi t0, zero, 1
	start: addi t1, zero, 2
	`, "test.s")

	if !hasCode(issues, "DUPLICATE_LABEL") {
		t.Errorf("expected DUPLICATE_LABEL, got %+v", issues)
	}
}

func TestLintUndefinedLabel(t *testing.T) {
	linter := NewLinter(nil)
	issues := linter.Lint(`jal ra, missing`, "test.s")

	if !hasCode(issues, "UNDEF_LABEL") {
		t.Errorf("expected UNDEF_LABEL, got %+v", issues)
	}
}

func TestLintUnusedLabel(t *testing.T) {
	linter := NewLinter(DefaultLintOptions())
	issues := linter.Lint(`unused_label: addi t0, zero, 1`, "test.s")

	if !hasCode(issues, "UNUSED_LABEL") {
		t.Errorf("expected UNUSED_LABEL, got %+v", issues)
	}
}

func TestLintUnusedLabelSuppressed(t *testing.T) {
	opts := DefaultLintOptions()
	opts.CheckUnused = false
	linter := NewLinter(opts)
	issues := linter.Lint(`unused_label: addi t0, zero, 1`, "test.s")

	if hasCode(issues, "UNUSED_LABEL") {
		t.Errorf("expected no UNUSED_LABEL when CheckUnused is false, got %+v", issues)
	}
}

func TestLintMisalignedBranchTarget(t *testing.T) {
	linter := NewLinter(nil)
	issues := linter.Lint(`beq t0, t1, 3`, "test.s")

	if !hasCode(issues, "MISALIGNED_TARGET") {
		t.Errorf("expected MISALIGNED_TARGET, got %+v", issues)
	}
}

func TestLintCleanProgramHasNoIssues(t *testing.T) {
	linter := NewLinter(nil)
	issues := linter.Lint(`
	_start:
		addi t0, zero, 1
		beq  t0, zero, _start
	`, "test.s")

	for _, i := range issues {
		t.Errorf("unexpected issue in clean program: %+v", i)
	}
}
