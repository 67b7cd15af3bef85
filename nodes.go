package symexpr

import (
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. The concrete
// types are *Num, *Var, *Call, *Unary, and *Binary; no other type implements
// Node.
type Node interface {
	// String formats the subtree with every term bracketed, alternating round
	// and square brackets by depth.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Num is a number literal.
type Num struct {
	Value float64
	// Text is the literal as written. Precision contexts parse it again at
	// their own precision.
	Text string
}

// Var is a single-letter variable.
type Var struct {
	Name rune
}

// Call is a call of one of the recognized functions.
type Call struct {
	Func string
	Arg  Node
}

// Unary is a unary plus or minus. Op is OpAdd or OpSub.
type Unary struct {
	Op Op
	X  Node
}

// Binary is a binary operation.
type Binary struct {
	Op          Op
	Left, Right Node
}

// Op is an operator, identified by its glyph.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
	OpPow Op = '^'
)

func (op Op) String() string {
	return string(rune(op))
}

// binops maps binary operator token kinds to their ops.
var binops = map[TokenKind]Op{
	TokenPlus:  OpAdd,
	TokenMinus: OpSub,
	TokenMul:   OpMul,
	TokenDiv:   OpDiv,
	TokenPow:   OpPow,
}

func (n *Num) String() string    { return nodestring(n) }
func (n *Var) String() string    { return nodestring(n) }
func (n *Call) String() string   { return nodestring(n) }
func (n *Unary) String() string  { return nodestring(n) }
func (n *Binary) String() string { return nodestring(n) }

func nodestring(n Node) string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (n *Num) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	if n.Text != "" {
		b.WriteString(n.Text)
	} else {
		b.WriteString(formatNum(n.Value))
	}
	b.WriteByte(r)
}

func (n *Var) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteRune(n.Name)
	b.WriteByte(r)
}

func (n *Call) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.Func)
	n.Arg.fmt(b, !square)
	b.WriteByte(r)
}

func (n *Unary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteByte(byte(n.Op))
	n.X.fmt(b, !square)
	b.WriteByte(r)
}

func (n *Binary) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	n.Left.fmt(b, !square)
	b.WriteByte(' ')
	b.WriteByte(byte(n.Op))
	b.WriteByte(' ')
	n.Right.fmt(b, !square)
	b.WriteByte(r)
}
