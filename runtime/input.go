package aruntime

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gosuda/algofr/ast"
)

var decimalInput = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseInput converts raw user text to a Number when the whole text is a
// decimal literal, and keeps it as Text otherwise.
func ParseInput(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if decimalInput.MatchString(trimmed) {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Num(n)
		}
	}
	return Text(raw)
}

// ProvideInput records raw as the next answer. It joins the session history,
// so later full runs replay it, and clears the suspension.
func (vm *VM) ProvideInput(raw string) Value {
	v := ParseInput(raw)
	vm.inputHistory = append(vm.inputHistory, v)
	vm.suspended = false
	vm.pendingVar = ""
	vm.pendingLine = 0
	return v
}

// InputHistory returns every value provided since the last Reset.
func (vm *VM) InputHistory() []Value {
	return append([]Value(nil), vm.inputHistory...)
}

// PendingInputs returns the provided values the current run has not read yet.
func (vm *VM) PendingInputs() []Value {
	if vm.inputCursor >= len(vm.inputHistory) {
		return nil
	}
	return append([]Value(nil), vm.inputHistory[vm.inputCursor:]...)
}

// nextInput replays history first; values provided after the last suspension
// sit at the end of the same history, so one cursor serves both.
func (vm *VM) nextInput() (Value, bool) {
	if vm.inputCursor >= len(vm.inputHistory) {
		return Value{}, false
	}
	v := vm.inputHistory[vm.inputCursor]
	vm.inputCursor++
	vm.execSteps = 0
	return v, true
}

func (vm *VM) suspend(s ast.ReadStmt) {
	vm.suspended = true
	vm.pendingVar = s.Name
	vm.pendingLine = s.Line
	vm.execSteps = 0
	if vm.inputCallback != nil {
		vm.inputCallback(s.Name)
	}
}
