package symexpr

import (
	"sort"
	"strconv"
)

// Token is a single lexical token.
type Token struct {
	// Kind is the token's kind.
	Kind TokenKind
	// Text is the source text of the token. Implicit multiplications have the
	// text "*". End tokens have empty text.
	Text string
	// Num is the value of a Number token.
	Num float64
	// Pos is the 0-based rune offset of the token in the input. For implicit
	// multiplications, it is the position of the token that follows.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a lexical token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. The lexer never produces it.
	TokenNone TokenKind = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenPow
	// TokenVariable is a single-letter variable name.
	TokenVariable
	// TokenFunction is one of the names in Funcs.
	TokenFunction
	TokenOpen
	TokenClose
	// TokenEnd indicates the end of the input.
	TokenEnd
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token
//go:generate go mod tidy

// funcnames is the set of function names recognized in symbol runs, longest
// first so that cosec is preferred over cos.
var funcnames = func() []string {
	v := []string{"sin", "cos", "tan", "cosec", "sec", "abs", "log", "ln", "exp", "sqrt"}
	sort.SliceStable(v, func(i, j int) bool { return len(v[i]) > len(v[j]) })
	return v
}()

// Funcs returns the names of the functions the tokenizer recognizes.
func Funcs() []string {
	v := append([]string(nil), funcnames...)
	sortstrs(v)
	return v
}
