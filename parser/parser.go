package parser

import (
	"fmt"
	"strings"
)

// Instruction is one assembled line: an optional label declaration followed
// by a mnemonic and its operands.
type Instruction struct {
	Label     string
	Mnemonic  string
	Operands  []string
	Address   uint32
	Pos       Position
	RawLine   string
}

// Program is the result of parsing: the ordered instruction list plus the
// label table built during pass 1.
type Program struct {
	Instructions []*Instruction
	SymbolTable  *SymbolTable
}

// Parser performs the two-pass tokenize/resolve over one source file.
type Parser struct {
	source   string
	filename string
	tokens   []Token
}

// NewParser creates a Parser over source.
func NewParser(source, filename string) *Parser {
	return &Parser{
		source:   source,
		filename: filename,
	}
}

// line groups the tokens belonging to one source line.
type line struct {
	tokens []Token
	raw    string
}

// Parse tokenizes the source and runs both passes, returning the program or
// the first fatal error encountered.
func (p *Parser) Parse() (*Program, error) {
	lexer := NewLexer(p.source, p.filename)
	p.tokens = lexer.Tokenize()

	sourceLines := strings.Split(p.source, "\n")
	lines := splitLines(p.tokens)

	symbols := NewSymbolTable()

	// Pass 1: assign each label the byte address of the mnemonic that
	// follows it (or of whatever comes next), counting 4 bytes per mnemonic.
	addr := uint32(0)
	for _, ln := range lines {
		toks := ln.tokens
		if len(toks) == 0 {
			continue
		}

		i := 0
		for i < len(toks) && isLabelDecl(toks[i]) {
			name := strings.TrimSuffix(toks[i].Text, ":")
			if err := symbols.Define(name, SymbolLabel, addr, toks[i].Pos); err != nil {
				return nil, &Error{Pos: toks[i].Pos, Message: err.Error(), Kind: ErrorDuplicateLabel}
			}
			i++
		}
		if i < len(toks) {
			addr += 4
		}
	}

	// Pass 2: emit one Instruction per line that carries a mnemonic, with
	// operand tokens referencing labels recorded against the symbol table.
	var instructions []*Instruction
	addr = 0
	for _, ln := range lines {
		toks := ln.tokens
		if len(toks) == 0 {
			continue
		}

		i := 0
		var label string
		for i < len(toks) && isLabelDecl(toks[i]) {
			label = strings.TrimSuffix(toks[i].Text, ":")
			i++
		}
		if i >= len(toks) {
			continue // label-only line
		}

		mnemonicTok := toks[i]
		var operands []string
		for _, t := range toks[i+1:] {
			operands = append(operands, t.Text)
			if t.Type == TokenIdentifier && !isRegisterName(t.Text) {
				symbols.Reference(t.Text, t.Pos)
			}
		}

		raw := ""
		if mnemonicTok.Pos.Line-1 < len(sourceLines) {
			raw = strings.TrimSpace(sourceLines[mnemonicTok.Pos.Line-1])
		}

		instructions = append(instructions, &Instruction{
			Label:    label,
			Mnemonic: strings.ToLower(mnemonicTok.Text),
			Operands: operands,
			Address:  addr,
			Pos:      mnemonicTok.Pos,
			RawLine:  raw,
		})
		addr += 4
	}

	return &Program{Instructions: instructions, SymbolTable: symbols}, nil
}

func isLabelDecl(t Token) bool {
	return t.Type == TokenIdentifier && strings.HasSuffix(t.Text, ":") && len(t.Text) > 1
}

// splitLines groups a flat token stream into per-line token slices, dropping
// the TokenNewline/TokenEOF markers themselves.
func splitLines(tokens []Token) []line {
	var lines []line
	var cur []Token
	for _, t := range tokens {
		switch t.Type {
		case TokenNewline:
			lines = append(lines, line{tokens: cur})
			cur = nil
		case TokenEOF:
			if len(cur) > 0 {
				lines = append(lines, line{tokens: cur})
			}
		default:
			cur = append(cur, t)
		}
	}
	return lines
}

// isRegisterName reports whether text names a register, by ABI name or by
// numeric x0..x31 form; used to decide whether an identifier operand should
// be tracked as a label reference.
func isRegisterName(text string) bool {
	_, ok := registerIndexOf(text)
	return ok
}

// ParseError formats a message at pos in the style of the rest of the package.
func ParseError(pos Position, format string, args ...interface{}) error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...), Kind: ErrorSyntax}
}
