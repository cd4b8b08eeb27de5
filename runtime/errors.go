package aruntime

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/gosuda/algofr/parser"
)

type UndefinedVariableError struct {
	Name string
	Line int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Erreur ligne %d: variable non définie: %s (cette variable doit être initialisée avant utilisation)", e.Line, e.Name)
}

type DivisionByZeroError struct {
	Line int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Erreur ligne %d: division par zéro", e.Line)
}

// TypeError is an arithmetic or ordering operator applied to text.
type TypeError struct {
	Line  int
	Op    string
	Left  ValueKind
	Right ValueKind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Erreur ligne %d: opération %s impossible entre %s et %s", e.Line, e.Op, e.Left, e.Right)
}

// StateError is a misuse of the VM (stepping while waiting for input, no
// program bound) or an unknown node kind.
type StateError struct {
	Line   int
	Reason string
}

func (e *StateError) Error() string {
	if e.Line <= 0 {
		return "Erreur: " + e.Reason
	}
	return fmt.Sprintf("Erreur ligne %d: %s", e.Line, e.Reason)
}

// LimitError stops a drive that executed more statements than allowed.
type LimitError struct {
	Line  int
	Steps int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("Erreur ligne %d: limite de %d instructions atteinte (boucle infinie ?)", e.Line, e.Steps)
}

var lineRef = regexp.MustCompile(`ligne (\d+)`)

// ErrorLine extracts the source line from an error produced by the scanner,
// the parser or the VM. It returns 0 when the message names no line.
func ErrorLine(err error) int {
	if err == nil {
		return 0
	}
	var lexErr *parser.LexError
	if errors.As(err, &lexErr) {
		return lexErr.Line
	}
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Line
	}
	m := lineRef.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
