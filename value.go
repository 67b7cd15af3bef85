package symexpr

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ValueKind distinguishes numeric values from symbolic ones.
type ValueKind int8

const (
	// NumberValue is a fully reduced number.
	NumberValue ValueKind = iota
	// SymbolicValue is a formatted expression that depends on variables.
	SymbolicValue
)

// Value is the result of evaluating an expression. It is either a number or,
// when the expression uses variables, a symbolic string.
type Value struct {
	kind ValueKind
	num  float64
	// exact is the number computed at the evaluating context's precision. It
	// is nil for symbolic values, for values from float64 contexts, and for
	// NaN and infinities.
	exact *big.Float
	sym   string
}

// Number creates a numeric Value.
func Number(x float64) Value {
	return Value{kind: NumberValue, num: x}
}

// Symbolic creates a symbolic Value.
func Symbolic(s string) Value {
	return Value{kind: SymbolicValue, sym: s}
}

func bigNumber(x *big.Float) Value {
	f, _ := x.Float64()
	return Value{kind: NumberValue, num: f, exact: x}
}

// Kind returns whether v is a number or symbolic.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNumber is a shortcut for v.Kind() == NumberValue.
func (v Value) IsNumber() bool {
	return v.kind == NumberValue
}

// Float64 returns the numeric value of v, rounded to float64 if v was
// computed at a higher precision. The result is 0 for symbolic values.
func (v Value) Float64() float64 {
	return v.num
}

// Big returns a copy of the value computed at the evaluating context's
// precision. If the context used float64 arithmetic, v is symbolic, or v is
// not finite, the result is nil.
func (v Value) Big() *big.Float {
	if v.exact == nil {
		return nil
	}
	return new(big.Float).Copy(v.exact)
}

// Symbol returns the string form of a symbolic value, or the empty string if
// v is a number.
func (v Value) Symbol() string {
	return v.sym
}

// String formats v the way it appears inside symbolic results.
func (v Value) String() string {
	switch {
	case v.kind == SymbolicValue:
		return v.sym
	case v.exact != nil:
		return formatBig(v.exact)
	default:
		return formatNum(v.num)
	}
}

// plain reports whether a finite number prints without an exponent.
func plain(x float64) bool {
	a := math.Abs(x)
	return a == 0 || a >= 1e-6 && a < 1e21
}

// formatNum formats a number with the fewest digits that identify it.
func formatNum(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		// Includes negative zero.
		return "0"
	case plain(x):
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return trimexp(strconv.FormatFloat(x, 'g', -1, 64))
	}
}

func formatBig(x *big.Float) string {
	if x.Sign() == 0 {
		return "0"
	}
	if f, _ := x.Float64(); plain(f) {
		return x.Text('f', -1)
	}
	return trimexp(x.Text('g', -1))
}

// trimexp removes leading zeros from the exponent of a number in exponent
// form, so 1e-07 becomes 1e-7.
func trimexp(s string) string {
	e := strings.IndexByte(s, 'e')
	if e < 0 || e+2 >= len(s) {
		return s
	}
	// Skip the exponent's sign.
	d := e + 2
	k := d
	for k < len(s)-1 && s[k] == '0' {
		k++
	}
	return s[:d] + s[k:]
}
