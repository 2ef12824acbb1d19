package tools

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/lookbusy1344/rv32i-emu/parser"
)

// LintLevel represents the severity of a lint issue
type LintLevel int

const (
	LintError   LintLevel = iota // Syntax errors, undefined references
	LintWarning                  // Best practice violations, potential issues
	LintInfo                     // Suggestions, style recommendations
)

func (l LintLevel) String() string {
	switch l {
	case LintError:
		return "error"
	case LintWarning:
		return "warning"
	case LintInfo:
		return "info"
	default:
		return "unknown"
	}
}

// LintIssue represents a single lint finding
type LintIssue struct {
	Level   LintLevel
	Line    int
	Column  int
	Message string
	Code    string // Issue code like "UNDEF_LABEL", "UNUSED_LABEL"
}

func (i *LintIssue) String() string {
	return fmt.Sprintf("line %d:%d: %s: %s [%s]", i.Line, i.Column, i.Level, i.Message, i.Code)
}

// LintOptions controls linter behavior
type LintOptions struct {
	CheckUnused  bool // Check for unused labels
	CheckAligned bool // Check that branch/jump targets are even addresses
	SuggestFixes bool // Suggest fixes for common issues
}

// DefaultLintOptions returns default linter options
func DefaultLintOptions() *LintOptions {
	return &LintOptions{
		CheckUnused:  true,
		CheckAligned: true,
		SuggestFixes: true,
	}
}

var branchMnemonics = map[string]bool{
	"beq": true, "bne": true, "blt": true, "bge": true, "bltu": true, "bgeu": true,
}

// Linter analyzes assembly code for issues
type Linter struct {
	options *LintOptions
	issues  []*LintIssue
	program *parser.Program
}

// NewLinter creates a new linter
func NewLinter(options *LintOptions) *Linter {
	if options == nil {
		options = DefaultLintOptions()
	}
	return &Linter{
		options: options,
		issues:  make([]*LintIssue, 0),
	}
}

// Lint analyzes the given assembly source code.
func (l *Linter) Lint(input, filename string) []*LintIssue {
	p := parser.NewParser(input, filename)
	prog, err := p.Parse()

	if err != nil {
		issue := &LintIssue{
			Level:   LintError,
			Line:    1,
			Column:  1,
			Message: fmt.Sprintf("parse error: %v", err),
			Code:    "PARSE_ERROR",
		}
		// The parser rejects a duplicate label in pass 1; report it as such.
		var perr *parser.Error
		if errors.As(err, &perr) && perr.Kind == parser.ErrorDuplicateLabel {
			issue.Line, issue.Column = perr.Pos.Line, perr.Pos.Column
			issue.Message, issue.Code = perr.Message, "DUPLICATE_LABEL"
		}
		l.issues = append(l.issues, issue)
	}

	if prog == nil {
		return l.issues
	}
	l.program = prog

	l.checkDuplicateLabels()
	l.checkUndefinedLabels()

	if l.options.CheckUnused {
		l.checkUnusedLabels()
	}
	if l.options.CheckAligned {
		l.checkMisalignedTargets()
	}

	sort.Slice(l.issues, func(i, j int) bool {
		if l.issues[i].Line == l.issues[j].Line {
			return l.issues[i].Column < l.issues[j].Column
		}
		return l.issues[i].Line < l.issues[j].Line
	})

	return l.issues
}

// checkDuplicateLabels flags a label declared on more than one instruction line.
func (l *Linter) checkDuplicateLabels() {
	seen := make(map[string]int)
	for _, inst := range l.program.Instructions {
		if inst.Label == "" {
			continue
		}
		if line, exists := seen[inst.Label]; exists {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    inst.Pos.Line,
				Column:  inst.Pos.Column,
				Message: fmt.Sprintf("duplicate label %q (first defined on line %d)", inst.Label, line),
				Code:    "DUPLICATE_LABEL",
			})
			continue
		}
		seen[inst.Label] = inst.Pos.Line
	}
}

// checkUndefinedLabels flags operands that reference a label never defined.
func (l *Linter) checkUndefinedLabels() {
	for _, sym := range l.program.SymbolTable.GetUndefinedSymbols() {
		for _, ref := range sym.References {
			msg := fmt.Sprintf("undefined label %q", sym.Name)
			if l.options.SuggestFixes {
				if suggestion := l.findSimilarLabel(sym.Name); suggestion != "" {
					msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
				}
			}
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    ref.Line,
				Column:  ref.Column,
				Message: msg,
				Code:    "UNDEF_LABEL",
			})
		}
	}
}

// checkUnusedLabels warns about labels defined but never referenced.
func (l *Linter) checkUnusedLabels() {
	for _, sym := range l.program.SymbolTable.GetUnusedSymbols() {
		if isSpecialLabel(sym.Name) {
			continue
		}
		l.issues = append(l.issues, &LintIssue{
			Level:   LintWarning,
			Line:    sym.Pos.Line,
			Column:  sym.Pos.Column,
			Message: fmt.Sprintf("label %q defined but never referenced", sym.Name),
			Code:    "UNUSED_LABEL",
		})
	}
}

// checkMisalignedTargets flags branch/jump operands whose resolved address is odd.
// beq/bne/.../jal immediates encode a multiple-of-2 offset; an odd target can
// never be represented exactly.
func (l *Linter) checkMisalignedTargets() {
	for _, inst := range l.program.Instructions {
		mnem := strings.ToLower(inst.Mnemonic)
		isBranch := branchMnemonics[mnem]
		isJAL := mnem == "jal"
		if !isBranch && !isJAL {
			continue
		}

		operandIdx := 2
		if isJAL {
			operandIdx = 1
		}
		if len(inst.Operands) <= operandIdx {
			continue
		}

		target := inst.Operands[operandIdx]
		var addr uint32
		if sym, ok := l.program.SymbolTable.Lookup(target); ok && sym.Defined {
			addr = sym.Value
		} else if v, err := strconv.ParseInt(target, 0, 64); err == nil {
			addr = uint32(v)
		} else {
			continue
		}

		if addr%2 != 0 {
			l.issues = append(l.issues, &LintIssue{
				Level:   LintError,
				Line:    inst.Pos.Line,
				Column:  inst.Pos.Column,
				Message: fmt.Sprintf("%s target 0x%X is not even-aligned", mnem, addr),
				Code:    "MISALIGNED_TARGET",
			})
		}
	}
}

// findSimilarLabel finds a defined label with a similar name (for suggestions)
func (l *Linter) findSimilarLabel(target string) string {
	target = strings.ToLower(target)
	bestMatch := ""
	bestDistance := 4

	for name, sym := range l.program.SymbolTable.GetAllSymbols() {
		if !sym.Defined {
			continue
		}
		dist := levenshteinDistance(strings.ToLower(name), target)
		if dist < bestDistance {
			bestMatch = name
			bestDistance = dist
		}
	}

	return bestMatch
}

// levenshteinDistance calculates edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}
	for j := range matrix[0] {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 1
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

// isSpecialLabel checks if a label is a conventional entry point
func isSpecialLabel(label string) bool {
	special := []string{"_start", "main"}
	for _, s := range special {
		if strings.EqualFold(label, s) {
			return true
		}
	}
	return false
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
