package symexpr

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Expr       = Term { ('+' | '-') Term }
// Term       = Factor { ('*' | '/') Factor }
// Factor     = { '+' | '-' } Power
// Power      = Atom [ '^' Power ]
// Atom       = SingleAtom { SingleAtom }
// SingleAtom = num | var | func '(' Expr ')' | '(' Expr ')'
//
// Implicit multiplications that the lexer synthesizes appear as '*' in Term.
// Adjacent atoms with no synthesized operator, like "2 x" or "x2", multiply
// in Atom, so they bind tighter than '^': "2 x^2" is "(2 x)^2".

// Expr is a parsed expression.
type Expr struct {
	// root is the root node of the expression.
	root Node
	// names is the sorted list of variable names used in the expression.
	names []string
}

type parser struct {
	scan *lexer
	// tok is the lookahead token.
	tok Token
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
}

// Parse parses an expression. The first invalid token or syntax error ends the
// parse; the error is a *LexError or *SyntaxError, or an error from reading
// src.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{
		scan:  lex(src),
		names: make(map[string]bool),
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenEnd {
		return nil, p.unexpected("unexpected input after expression")
	}
	ex := Expr{
		root:  n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// advance scans the next lookahead token.
func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat consumes the lookahead token, which must have the given kind.
func (p *parser) eat(kind TokenKind) error {
	if p.tok.Kind != kind {
		return &SyntaxError{Col: p.tok.Pos, Want: kind, Got: p.tok.Kind, Text: p.tok.Text}
	}
	return p.advance()
}

func (p *parser) unexpected(reason string) error {
	return &SyntaxError{Col: p.tok.Pos, Got: p.tok.Kind, Text: p.tok.Text, Reason: reason}
}

func (p *parser) expr() (Node, error) {
	return p.leftassoc(p.term, TokenPlus, TokenMinus)
}

func (p *parser) term() (Node, error) {
	return p.leftassoc(p.factor, TokenMul, TokenDiv)
}

// leftassoc parses a chain of operands separated by any of the given binary
// operators, folding to the left.
func (p *parser) leftassoc(operand func() (Node, error), kinds ...TokenKind) (Node, error) {
	n, err := operand()
	if err != nil {
		return nil, err
	}
	for p.is(kinds...) {
		op := binops[p.tok.Kind]
		if err := p.advance(); err != nil {
			return nil, err
		}
		rhs, err := operand()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: op, Left: n, Right: rhs}
	}
	return n, nil
}

// is returns whether the lookahead has any of the given kinds.
func (p *parser) is(kinds ...TokenKind) bool {
	for _, k := range kinds {
		if p.tok.Kind == k {
			return true
		}
	}
	return false
}

func (p *parser) factor() (Node, error) {
	var signs []Op
	for p.is(TokenPlus, TokenMinus) {
		signs = append(signs, binops[p.tok.Kind])
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	n, err := p.power()
	if err != nil {
		return nil, err
	}
	// The sign nearest the operand wraps first, so the leftmost sign is the
	// outermost node.
	for i := len(signs) - 1; i >= 0; i-- {
		n = &Unary{Op: signs[i], X: n}
	}
	return n, nil
}

func (p *parser) power() (Node, error) {
	n, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.tok.Kind != TokenPow {
		return n, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.power()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: OpPow, Left: n, Right: rhs}, nil
}

func (p *parser) atom() (Node, error) {
	n, err := p.single()
	if err != nil {
		return nil, err
	}
	for p.is(TokenNumber, TokenVariable, TokenFunction, TokenOpen) {
		rhs, err := p.single()
		if err != nil {
			return nil, err
		}
		n = &Binary{Op: OpMul, Left: n, Right: rhs}
	}
	return n, nil
}

func (p *parser) single() (Node, error) {
	tok := p.tok
	switch tok.Kind {
	case TokenNumber:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Num{Value: tok.Num, Text: tok.Text}, nil
	case TokenVariable:
		if err := p.advance(); err != nil {
			return nil, err
		}
		p.names[tok.Text] = true
		r, _ := utf8.DecodeRuneInString(tok.Text)
		return &Var{Name: r}, nil
	case TokenFunction:
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.group()
		if err != nil {
			return nil, err
		}
		return &Call{Func: tok.Text, Arg: arg}, nil
	case TokenOpen:
		return p.group()
	default:
		return nil, p.unexpected("unexpected token")
	}
}

// group parses a parenthesized expression.
func (p *parser) group() (Node, error) {
	if err := p.eat(TokenOpen); err != nil {
		return nil, err
	}
	n, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.eat(TokenClose); err != nil {
		return nil, err
	}
	return n, nil
}

// Root returns the root node of the parsed expression.
func (e *Expr) Root() Node {
	return e.root
}

// Vars returns the variable names used in the expression, sorted.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.root.String()
}
