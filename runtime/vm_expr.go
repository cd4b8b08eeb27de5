package aruntime

import (
	"fmt"
	"strings"

	"github.com/gosuda/algofr/ast"
)

func (vm *VM) evalExpr(e ast.Expr) (Value, error) {
	switch ex := e.(type) {
	case ast.NumberLit:
		return Num(ex.Value), nil
	case ast.StringLit:
		return Text(ex.Value), nil
	case ast.Ident:
		v, ok := vm.vars.get(ex.Name)
		if !ok {
			return Value{}, &UndefinedVariableError{Name: ex.Name, Line: ex.Line}
		}
		return v, nil
	case ast.BinaryExpr:
		// ET and OU evaluate both sides; there is no short circuit.
		left, err := vm.evalExpr(ex.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := vm.evalExpr(ex.Right)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(ex.Op, left, right, ex.Line)
	default:
		return Value{}, &StateError{Reason: fmt.Sprintf("type d'expression inconnu: %T", e)}
	}
}

func evalBinary(op ast.Op, left, right Value, line int) (Value, error) {
	switch op {
	case ast.OpAdd:
		if left.IsText() || right.IsText() {
			return Text(left.String() + right.String()), nil
		}
		return Num(left.n + right.n), nil
	case ast.OpSub, ast.OpMul, ast.OpDiv:
		if left.IsText() || right.IsText() {
			return Value{}, &TypeError{Line: line, Op: string(op), Left: left.kind, Right: right.kind}
		}
		switch op {
		case ast.OpSub:
			return Num(left.n - right.n), nil
		case ast.OpMul:
			return Num(left.n * right.n), nil
		default:
			if right.n == 0 {
				return Value{}, &DivisionByZeroError{Line: line}
			}
			return Num(left.n / right.n), nil
		}
	case ast.OpEQ:
		return Bool(left.Equal(right)), nil
	case ast.OpGT, ast.OpLT, ast.OpGTE, ast.OpLTE:
		if left.kind != right.kind {
			return Value{}, &TypeError{Line: line, Op: string(op), Left: left.kind, Right: right.kind}
		}
		if left.kind == TextKind {
			return Bool(ordered(op, strings.Compare(left.s, right.s), 0)), nil
		}
		return Bool(ordered(op, left.n, right.n)), nil
	case ast.OpAnd:
		return Bool(left.Truthy() && right.Truthy()), nil
	case ast.OpOr:
		return Bool(left.Truthy() || right.Truthy()), nil
	default:
		return Value{}, &StateError{Line: line, Reason: fmt.Sprintf("opérateur inconnu: %s", op)}
	}
}

func ordered[T int | float64](op ast.Op, a, b T) bool {
	switch op {
	case ast.OpGT:
		return a > b
	case ast.OpLT:
		return a < b
	case ast.OpGTE:
		return a >= b
	default:
		return a <= b
	}
}
