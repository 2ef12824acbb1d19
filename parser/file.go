package parser

import (
	"os"
	"path/filepath"
)

// ParseFile reads and parses an assembly source file.
func ParseFile(filePath string) (*Program, *Parser, error) {
	content, err := os.ReadFile(filePath) // #nosec G304 -- user-provided assembly file path
	if err != nil {
		return nil, nil, err
	}

	filename := filepath.Base(filePath)
	p := NewParser(string(content), filename)
	program, err := p.Parse()
	if err != nil {
		return nil, p, err
	}

	return program, p, nil
}
