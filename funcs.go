package symexpr

import (
	"math"
	"math/big"
	"strconv"

	"github.com/zephyrtronium/bigfloat"
)

// fn is one of the functions the tokenizer recognizes.
type fn struct {
	// f computes the function in float64.
	f func(float64) float64
	// big computes the function to z's precision, or is nil if there is no
	// arbitrary-precision implementation.
	big func(z, x *big.Float) *big.Float
	// pos indicates that big is only defined for positive arguments.
	pos bool
}

var globalfuncs = map[string]fn{
	"sin":   {f: math.Sin},
	"cos":   {f: math.Cos},
	"tan":   {f: math.Tan},
	"cosec": {f: func(x float64) float64 { return 1 / math.Sin(x) }},
	"sec":   {f: func(x float64) float64 { return 1 / math.Cos(x) }},
	"abs":   {f: math.Abs, big: (*big.Float).Abs},
	"log":   {f: math.Log10, big: log10, pos: true},
	"ln":    {f: math.Log, big: bigfloat.Log, pos: true},
	"exp":   {f: math.Exp, big: bigfloat.Exp},
	"sqrt":  {f: math.Sqrt, big: (*big.Float).Sqrt, pos: true},
}

func log10(z, x *big.Float) *big.Float {
	ten := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
	ln := bigfloat.Log(z, x)
	return z.Quo(ln, bigfloat.Log(ten, ten))
}

func (ctx *Context) call(name string, x Value) Value {
	f, ok := globalfuncs[name]
	if !ok {
		panic("symexpr: unknown function " + strconv.Quote(name))
	}
	if !x.IsNumber() {
		return Symbolic(name + "(" + x.sym + ")")
	}
	if x.exact != nil && f.big != nil && (!f.pos || x.exact.Sign() > 0) {
		if z := ctx.bigCall(f.big, x.exact); z != nil {
			return bigNumber(z)
		}
	}
	return ctx.promote(f.f(x.num))
}

// bigCall computes f(x) at the context's precision. The result is nil if f
// has no finite result for x.
func (ctx *Context) bigCall(f func(z, x *big.Float) *big.Float, x *big.Float) (z *big.Float) {
	defer nanfallback(&z)
	z = new(big.Float).SetPrec(ctx.prec)
	// f may return a Float other than z, at another precision.
	z.Set(f(new(big.Float).SetPrec(ctx.prec), x))
	if z.IsInf() {
		return nil
	}
	return z
}
