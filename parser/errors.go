package parser

import "fmt"

// LexError reports a string literal left open; Line is where it started.
type LexError struct {
	Line   int
	Column int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("Chaîne de caractères non fermée à la ligne %d", e.Line)
}

// SyntaxError is the first grammar violation found by the parser.
type SyntaxError struct {
	Line     int
	Expected string
	Got      Kind
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Erreur de syntaxe ligne %d: attendu %s, obtenu %s", e.Line, e.Expected, e.Got)
}
