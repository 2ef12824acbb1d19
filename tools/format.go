package tools

import (
	"fmt"
	"strings"

	"github.com/lookbusy1344/rv32i-emu/parser"
)

// FormatStyle defines formatting options
type FormatStyle int

const (
	FormatDefault  FormatStyle = iota // Standard formatting
	FormatCompact                     // Minimal whitespace
	FormatExpanded                    // Extra whitespace for readability
)

// FormatOptions controls formatter behavior
type FormatOptions struct {
	Style             FormatStyle
	InstructionColumn int  // Column for the mnemonic when no label is present
	OperandColumn     int  // Column for operands
	AlignOperands     bool // Align operands in columns
}

// DefaultFormatOptions returns default formatter options
func DefaultFormatOptions() *FormatOptions {
	return &FormatOptions{
		Style:             FormatDefault,
		InstructionColumn: 8,
		OperandColumn:     16,
		AlignOperands:     true,
	}
}

// CompactFormatOptions returns options for compact formatting
func CompactFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatCompact
	opts.InstructionColumn = 0
	opts.OperandColumn = 0
	opts.AlignOperands = false
	return opts
}

// ExpandedFormatOptions returns options for expanded formatting
func ExpandedFormatOptions() *FormatOptions {
	opts := DefaultFormatOptions()
	opts.Style = FormatExpanded
	opts.InstructionColumn = 12
	opts.OperandColumn = 24
	return opts
}

// Formatter formats assembly source code
type Formatter struct {
	options *FormatOptions
	program *parser.Program
	output  strings.Builder
}

// NewFormatter creates a new formatter
func NewFormatter(options *FormatOptions) *Formatter {
	if options == nil {
		options = DefaultFormatOptions()
	}
	return &Formatter{options: options}
}

// Format formats the given assembly source code.
func (f *Formatter) Format(input, filename string) (string, error) {
	p := parser.NewParser(input, filename)
	prog, err := p.Parse()
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	if prog == nil {
		return "", fmt.Errorf("failed to parse program")
	}

	f.program = prog
	f.output.Reset()

	for _, inst := range f.program.Instructions {
		f.formatInstruction(inst)
	}

	return f.output.String(), nil
}

// formatInstruction formats a single instruction.
func (f *Formatter) formatInstruction(inst *parser.Instruction) {
	line := strings.Builder{}

	if inst.Label != "" {
		line.WriteString(inst.Label)
		line.WriteString(":")
		if f.options.Style != FormatCompact {
			f.padToColumn(&line, f.options.InstructionColumn)
		} else {
			line.WriteString(" ")
		}
	} else if f.options.Style != FormatCompact {
		f.padToColumn(&line, f.options.InstructionColumn)
	}

	mnemonic := strings.ToLower(inst.Mnemonic)
	line.WriteString(mnemonic)

	if len(inst.Operands) > 0 {
		if f.options.Style == FormatCompact {
			line.WriteString(" ")
		} else if f.options.AlignOperands {
			f.padToColumn(&line, line.Len()+(f.options.OperandColumn-f.options.InstructionColumn-len(mnemonic)))
		} else {
			line.WriteString("\t")
		}
		line.WriteString(f.formatOperands(inst.Operands))
	}

	f.output.WriteString(line.String())
	f.output.WriteString("\n")
}

// formatOperands joins operands with canonical ", " separators.
func (f *Formatter) formatOperands(operands []string) string {
	result := strings.Builder{}
	for i, op := range operands {
		if i > 0 {
			result.WriteString(", ")
		}
		result.WriteString(strings.TrimSpace(op))
	}
	return result.String()
}

// padToColumn pads the string builder to the specified column.
func (f *Formatter) padToColumn(sb *strings.Builder, column int) {
	current := sb.Len()
	if current < column {
		sb.WriteString(strings.Repeat(" ", column-current))
	} else if current > column {
		sb.WriteString(" ")
	}
}

// FormatString is a convenience function to format a string with default options
func FormatString(input, filename string) (string, error) {
	formatter := NewFormatter(DefaultFormatOptions())
	return formatter.Format(input, filename)
}

// FormatStringWithStyle formats a string with the specified style
func FormatStringWithStyle(input, filename string, style FormatStyle) (string, error) {
	var options *FormatOptions
	switch style {
	case FormatCompact:
		options = CompactFormatOptions()
	case FormatExpanded:
		options = ExpandedFormatOptions()
	default:
		options = DefaultFormatOptions()
	}
	formatter := NewFormatter(options)
	return formatter.Format(input, filename)
}
