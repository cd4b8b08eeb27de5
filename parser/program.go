package parser

import "github.com/gosuda/algofr/ast"

// ParseSource scans and parses a complete program.
func ParseSource(source string) (*ast.Program, error) {
	tokens, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}
