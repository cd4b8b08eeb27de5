package aruntime

import (
	"github.com/gosuda/algofr/ast"
)

// DefaultMaxSteps bounds the statements executed by one Run or Step call.
const DefaultMaxSteps = 1_000_000

// VM executes one program at a time. It never blocks: a Read without an
// available value suspends the VM and is reported in the Result.
type VM struct {
	program *ast.Program
	vars    *env
	output  []Value

	inputHistory []Value
	inputCursor  int

	suspended   bool
	pendingVar  string
	pendingLine int

	frames []*frame

	inputCallback func(name string)
	maxSteps      int
	execSteps     int
}

type Option func(*VM)

// WithMaxSteps sets the statement budget per drive; n <= 0 disables it.
func WithMaxSteps(n int) Option {
	return func(vm *VM) {
		vm.maxSteps = n
	}
}

// Result is the state observed after a Run or Step call.
type Result struct {
	Output          []Value
	Variables       map[string]Value
	Suspended       bool
	PendingVariable string
	Completed       bool
	StepCursor      int
	// Line is the source line of the next statement to execute, or of the
	// pending Read while suspended. It is 0 once the program completed.
	Line int
}

func New(opts ...Option) *VM {
	vm := &VM{
		vars:     newEnv(),
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(vm)
	}
	return vm
}

// Reset forgets the program, every variable, the output and the whole
// input history. The input callback and options are kept.
func (vm *VM) Reset() {
	vm.program = nil
	vm.vars = newEnv()
	vm.output = nil
	vm.inputHistory = nil
	vm.inputCursor = 0
	vm.suspended = false
	vm.pendingVar = ""
	vm.pendingLine = 0
	vm.frames = nil
	vm.execSteps = 0
}

// SetInputCallback registers fn to be called with the variable name each
// time execution suspends on a Read.
func (vm *VM) SetInputCallback(fn func(name string)) {
	vm.inputCallback = fn
}

// bind attaches program and clears run scoped state. Input history is kept
// so answered reads replay.
func (vm *VM) bind(program *ast.Program) {
	vm.program = program
	vm.vars = newEnv()
	vm.output = nil
	vm.inputCursor = 0
	vm.suspended = false
	vm.pendingVar = ""
	vm.pendingLine = 0
	vm.frames = []*frame{{kind: frameBlock, stmts: program.Statements}}
	vm.execSteps = 0
}

// Run executes program from the top until it completes or suspends. A nil
// program reruns the bound one. Inputs provided earlier are replayed in order.
func (vm *VM) Run(program *ast.Program) (Result, error) {
	if program == nil {
		program = vm.program
	}
	if program == nil {
		return vm.result(), &StateError{Reason: "aucun programme chargé"}
	}
	vm.bind(program)
	for !vm.completed() && !vm.suspended {
		if err := vm.tick(); err != nil {
			return vm.fail(err)
		}
	}
	return vm.result(), nil
}

// Step executes the top-level statement at the step cursor. Compound
// statements run their whole body, or up to the next suspension, in one call.
// program is only bound when no program is bound yet.
func (vm *VM) Step(program *ast.Program) (Result, error) {
	if vm.program == nil {
		if program == nil {
			return vm.result(), &StateError{Reason: "aucun programme chargé"}
		}
		vm.bind(program)
	}
	if vm.suspended {
		return vm.result(), &StateError{Line: vm.pendingLine, Reason: "en attente d'une entrée pour " + vm.pendingVar}
	}
	if vm.completed() {
		return vm.result(), nil
	}
	vm.execSteps = 0
	start := vm.frames[0].pc
	if len(vm.frames) > 1 {
		// resuming inside a compound statement already counted at top level
		start--
	}
	for {
		if err := vm.tick(); err != nil {
			return vm.fail(err)
		}
		if vm.suspended || vm.completed() {
			break
		}
		if len(vm.frames) == 1 && vm.frames[0].pc > start {
			break
		}
	}
	return vm.result(), nil
}

// fail keeps output and variables for inspection and unbinds the program so
// the next Step starts over.
func (vm *VM) fail(err error) (Result, error) {
	res := vm.result()
	res.Completed = false
	vm.program = nil
	vm.frames = nil
	vm.suspended = false
	vm.pendingVar = ""
	vm.pendingLine = 0
	return res, err
}

func (vm *VM) completed() bool {
	if len(vm.frames) != 1 {
		return false
	}
	top := vm.frames[0]
	return top.pc >= len(top.stmts)
}

func (vm *VM) result() Result {
	res := Result{
		Output:          vm.Output(),
		Variables:       vm.vars.snapshot(),
		Suspended:       vm.suspended,
		PendingVariable: vm.pendingVar,
		Completed:       vm.program != nil && vm.completed(),
		StepCursor:      vm.StepCursor(),
	}
	switch {
	case vm.suspended:
		res.Line = vm.pendingLine
	case !res.Completed:
		res.Line = vm.currentLine()
	}
	return res
}

func (vm *VM) Program() *ast.Program {
	return vm.program
}

func (vm *VM) Output() []Value {
	return append([]Value(nil), vm.output...)
}

func (vm *VM) Variables() map[string]Value {
	return vm.vars.snapshot()
}

// Bindings lists variables sorted by name.
func (vm *VM) Bindings() []Binding {
	return vm.vars.bindings()
}

func (vm *VM) Lookup(name string) (Value, bool) {
	return vm.vars.get(name)
}

func (vm *VM) Suspended() bool {
	return vm.suspended
}

func (vm *VM) PendingVariable() string {
	return vm.pendingVar
}

func (vm *VM) StepCursor() int {
	if len(vm.frames) == 0 {
		return 0
	}
	if len(vm.frames) > 1 {
		return vm.frames[0].pc - 1
	}
	return vm.frames[0].pc
}
