package algofr

import (
	"fmt"

	"github.com/gosuda/algofr/ast"
	"github.com/gosuda/algofr/parser"
	aruntime "github.com/gosuda/algofr/runtime"
)

// Parse scans and parses a pseudocode program.
func Parse(source string) (*ast.Program, error) {
	return parser.ParseSource(source)
}

// Run parses source and runs it with inputs queued in order. The result is
// suspended when the program reads more values than were given.
func Run(source string, inputs []string, opts ...aruntime.Option) (aruntime.Result, error) {
	program, err := parser.ParseSource(source)
	if err != nil {
		return aruntime.Result{}, err
	}
	vm := aruntime.New(opts...)
	for _, in := range inputs {
		vm.ProvideInput(in)
	}
	res, err := vm.Run(program)
	if err != nil {
		return res, fmt.Errorf("run: %w", err)
	}
	return res, nil
}
