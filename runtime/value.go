package aruntime

import (
	"math"
	"strconv"
	"strings"
)

type ValueKind int

const (
	NumberKind ValueKind = iota
	TextKind
)

func (k ValueKind) String() string {
	if k == TextKind {
		return "texte"
	}
	return "nombre"
}

type Value struct {
	kind ValueKind
	n    float64
	s    string
}

func Num(v float64) Value {
	return Value{kind: NumberKind, n: v}
}

func Text(v string) Value {
	return Value{kind: TextKind, s: v}
}

func Bool(b bool) Value {
	if b {
		return Num(1)
	}
	return Num(0)
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsText() bool {
	return v.kind == TextKind
}

// Float64 returns the number, or 0 for text.
func (v Value) Float64() float64 {
	if v.kind == NumberKind {
		return v.n
	}
	return 0
}

func (v Value) String() string {
	if v.kind == TextKind {
		return v.s
	}
	return FormatNumber(v.n)
}

// Truthy: 0 and "" are false, everything else is true.
func (v Value) Truthy() bool {
	if v.kind == TextKind {
		return v.s != ""
	}
	return v.n != 0
}

// Equal compares kind and payload; a number never equals a text.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == TextKind {
		return v.s == o.s
	}
	return v.n == o.n
}

// FormatNumber renders the shortest decimal that round-trips. Integers have
// no fractional part and very large or very small magnitudes use an exponent.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
