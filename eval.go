package symexpr

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions. Variables are never bound
// to values, so a context holds only settings and may be used for any number
// of evaluations, including concurrent ones.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits. The default, 0, uses
// float64 arithmetic. With a nonzero precision, numbers are computed as
// big.Floats wherever the result is finite and the operation has an
// arbitrary-precision implementation; elsewhere, evaluation falls back to
// float64 semantics, including NaN and infinities.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
		default:
			panic("symexpr: unknown option type")
		}
	}
	return &n
}

// Prec returns the precision to which values are computed in the context.
// Zero means float64.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates a parsed expression.
func (ctx *Context) Eval(e *Expr) Value {
	return ctx.EvalNode(e.root)
}

// EvalNode evaluates a syntax tree. Numeric subtrees are fully reduced before
// they are formatted into symbolic results. Arithmetic never fails: undefined
// results are NaN or infinities. Panics if n contains a node that the parser
// cannot produce.
func (ctx *Context) EvalNode(n Node) Value {
	switch n := n.(type) {
	case *Num:
		return ctx.num(n)
	case *Var:
		return Symbolic(string(n.Name))
	case *Call:
		return ctx.call(n.Func, ctx.EvalNode(n.Arg))
	case *Unary:
		return ctx.unary(n.Op, ctx.EvalNode(n.X))
	case *Binary:
		l := ctx.EvalNode(n.Left)
		r := ctx.EvalNode(n.Right)
		if l.IsNumber() && r.IsNumber() {
			return ctx.arith(n.Op, l, r)
		}
		return symbolic(n.Op, l, r)
	default:
		panic(fmt.Sprintf("symexpr: invalid AST node %T", n))
	}
}

// num gets the value of a literal at the context's precision.
func (ctx *Context) num(n *Num) Value {
	if ctx.prec == 0 || n.Text == "" {
		return ctx.promote(n.Value)
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(n.Text, 10)
	if err != nil {
		panic("symexpr: invalid number: " + n.Text + " (" + err.Error() + ")")
	}
	return bigNumber(r)
}

// promote converts a float64 result to a Value, at the context's precision if
// it is finite.
func (ctx *Context) promote(x float64) Value {
	if ctx.prec == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return Number(x)
	}
	return bigNumber(new(big.Float).SetPrec(ctx.prec).SetFloat64(x))
}

func (ctx *Context) unary(op Op, v Value) Value {
	if !v.IsNumber() {
		return Symbolic(op.String() + v.sym)
	}
	switch op {
	case OpAdd:
		return v
	case OpSub:
		if v.exact != nil {
			return bigNumber(new(big.Float).Neg(v.exact))
		}
		return Number(-v.num)
	default:
		panic("symexpr: invalid unary operator " + op.String())
	}
}

func (ctx *Context) arith(op Op, l, r Value) Value {
	if l.exact != nil && r.exact != nil {
		if z := ctx.bigArith(op, l.exact, r.exact); z != nil {
			return bigNumber(z)
		}
	}
	return ctx.promote(floatArith(op, l.num, r.num))
}

func floatArith(op Op, l, r float64) float64 {
	switch op {
	case OpAdd:
		return l + r
	case OpSub:
		return l - r
	case OpMul:
		return l * r
	case OpDiv:
		return l / r
	case OpPow:
		return math.Pow(l, r)
	default:
		panic("symexpr: invalid binary operator " + op.String())
	}
}

// bigArith computes l op r at the context's precision. The result is nil if
// the operation has no finite result in big.Float arithmetic.
func (ctx *Context) bigArith(op Op, l, r *big.Float) (z *big.Float) {
	defer nanfallback(&z)
	z = new(big.Float).SetPrec(ctx.prec)
	switch op {
	case OpAdd:
		z.Add(l, r)
	case OpSub:
		z.Sub(l, r)
	case OpMul:
		z.Mul(l, r)
	case OpDiv:
		if r.Sign() == 0 {
			return nil
		}
		z.Quo(l, r)
	case OpPow:
		// bigfloat only has positive bases. Leave the rest, e.g. (-2)^3, to
		// math.Pow.
		if l.Sign() <= 0 {
			return nil
		}
		// Pow may return a Float other than z, at another precision.
		z.Set(bigfloat.Pow(new(big.Float).SetPrec(ctx.prec), l, r))
	default:
		panic("symexpr: invalid binary operator " + op.String())
	}
	if z.IsInf() {
		return nil
	}
	return z
}

// nanfallback recovers a big.ErrNaN panic and sets *z to nil.
func nanfallback(z **big.Float) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(big.ErrNaN); ok {
		*z = nil
		return
	}
	panic(r)
}

// symbolic formats a binary operation with at least one symbolic operand. A
// number times a symbol is written as a coefficient, e.g. 2x.
func symbolic(op Op, l, r Value) Value {
	if op == OpMul && l.IsNumber() != r.IsNumber() {
		return Symbolic(l.String() + r.String())
	}
	return Symbolic(l.String() + " " + op.String() + " " + r.String())
}

// Eval is a shortcut to parse an expression and evaluate it in a new context
// created with opts.
func Eval(src io.RuneScanner, opts ...ContextOption) (Value, error) {
	a, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	return NewContext(opts...).Eval(a), nil
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return Eval(strings.NewReader(src), opts...)
}
