// Package bpfc provides the tree-sitter parser for the BPF C dialect
// that the linter operates on.
package bpfc

import (
	"context"
	"errors"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
)

// GetLanguage returns the tree-sitter language used for BPF C sources.
// BPF programs are written in C; the stock C grammar is permissive
// enough to handle the macro-heavy style (SEC annotations, helper
// calls) that BPF code uses.
func GetLanguage() *sitter.Language {
	return c.GetLanguage()
}

// NewParser returns a parser configured for BPF C.
func NewParser() *sitter.Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(GetLanguage())

	return parser
}

// Parse parses source code into a syntax tree. The caller owns the
// returned tree and should Close it when done.
func Parse(code []byte) (*sitter.Tree, error) {
	parser := NewParser()
	tree, err := parser.ParseCtx(context.Background(), nil, code)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, errors.New("parser produced no syntax tree")
	}

	return tree, nil
}
