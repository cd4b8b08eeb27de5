package aruntime

import (
	"fmt"

	"github.com/gosuda/algofr/ast"
)

type frameKind int

const (
	frameBlock frameKind = iota
	frameWhile
	frameFor
)

// frame is an open statement list. Loop frames also carry what is needed to
// start the next iteration, so a suspended Read deep inside nested blocks
// resumes without re-executing anything before it.
type frame struct {
	kind  frameKind
	stmts []ast.Statement
	pc    int
	line  int

	cond ast.Expr

	loopVar string
	counter float64
	end     float64
}

func (vm *VM) push(fr *frame) {
	vm.frames = append(vm.frames, fr)
}

func (vm *VM) pop() {
	vm.frames = vm.frames[:len(vm.frames)-1]
}

func (vm *VM) countStep(line int) error {
	vm.execSteps++
	if vm.maxSteps > 0 && vm.execSteps > vm.maxSteps {
		return &LimitError{Line: line, Steps: vm.maxSteps}
	}
	return nil
}

// tick executes one statement of the innermost frame, or closes it when its
// statement list is exhausted.
func (vm *VM) tick() error {
	fr := vm.frames[len(vm.frames)-1]
	if fr.pc >= len(fr.stmts) {
		return vm.endOfBlock(fr)
	}
	stmt := fr.stmts[fr.pc]
	if err := vm.countStep(stmt.StmtLine()); err != nil {
		return err
	}
	switch s := stmt.(type) {
	case ast.AssignStmt:
		v, err := vm.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		vm.vars.set(s.Name, v)
		fr.pc++
	case ast.WriteStmt:
		v, err := vm.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		vm.output = append(vm.output, v)
		fr.pc++
	case ast.ReadStmt:
		v, ok := vm.nextInput()
		if !ok {
			vm.suspend(s)
			return nil
		}
		vm.vars.set(s.Name, v)
		fr.pc++
	case ast.IfStmt:
		cond, err := vm.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		fr.pc++
		branch := s.Then
		if !cond.Truthy() {
			branch = s.Else
		}
		if len(branch) > 0 {
			vm.push(&frame{kind: frameBlock, stmts: branch, line: s.Line})
		}
	case ast.WhileStmt:
		cond, err := vm.evalExpr(s.Cond)
		if err != nil {
			return err
		}
		fr.pc++
		if cond.Truthy() {
			vm.push(&frame{kind: frameWhile, stmts: s.Body, line: s.Line, cond: s.Cond})
		}
	case ast.ForStmt:
		start, err := vm.evalExpr(s.Start)
		if err != nil {
			return err
		}
		end, err := vm.evalExpr(s.End)
		if err != nil {
			return err
		}
		if start.IsText() || end.IsText() {
			return &TypeError{Line: s.Line, Op: "Pour", Left: start.kind, Right: end.kind}
		}
		fr.pc++
		if start.n <= end.n {
			vm.vars.set(s.Var, start)
			vm.push(&frame{kind: frameFor, stmts: s.Body, line: s.Line, loopVar: s.Var, counter: start.n, end: end.n})
		}
	default:
		return &StateError{Line: stmt.StmtLine(), Reason: fmt.Sprintf("type de nœud inconnu: %T", stmt)}
	}
	return nil
}

func (vm *VM) endOfBlock(fr *frame) error {
	switch fr.kind {
	case frameWhile:
		if err := vm.countStep(fr.line); err != nil {
			return err
		}
		cond, err := vm.evalExpr(fr.cond)
		if err != nil {
			return err
		}
		if cond.Truthy() {
			fr.pc = 0
			return nil
		}
	case frameFor:
		if err := vm.countStep(fr.line); err != nil {
			return err
		}
		fr.counter++
		if fr.counter <= fr.end {
			vm.vars.set(fr.loopVar, Num(fr.counter))
			fr.pc = 0
			return nil
		}
	}
	vm.pop()
	return nil
}

// currentLine is the line of the statement the innermost frame will run next.
func (vm *VM) currentLine() int {
	for i := len(vm.frames) - 1; i >= 0; i-- {
		fr := vm.frames[i]
		if fr.pc < len(fr.stmts) {
			return fr.stmts[fr.pc].StmtLine()
		}
		if fr.kind != frameBlock {
			return fr.line
		}
	}
	return 0
}
