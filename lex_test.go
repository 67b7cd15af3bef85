package symexpr

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func num(text string, v float64, pos int) Token {
	return Token{Kind: TokenNumber, Text: text, Num: v, Pos: pos}
}

func sym(kind TokenKind, text string, pos int) Token {
	return Token{Kind: kind, Text: text, Pos: pos}
}

func imul(pos int) Token {
	return Token{Kind: TokenMul, Text: "*", Pos: pos}
}

func end(pos int) Token {
	return Token{Kind: TokenEnd, Pos: pos}
}

func TestLex(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []Token
	}{
		// spaces
		{"empty", "", []Token{end(0)}},
		{"spaces", " \t \r\n ", []Token{end(6)}},
		// numbers
		{"zero", "0", []Token{num("0", 0, 0), end(1)}},
		{"digits", "9876543210", []Token{num("9876543210", 9876543210, 0), end(10)}},
		{"two", "1 0", []Token{num("1", 1, 0), num("0", 0, 2), end(3)}},
		{"dot", "1.5", []Token{num("1.5", 1.5, 0), end(3)}},
		{"trailing-dot", "3.", []Token{num("3.", 3, 0), end(2)}},
		{"add", "2 + 3", []Token{num("2", 2, 0), sym(TokenPlus, "+", 2), num("3", 3, 4), end(5)}},
		// operators
		{"ops", "+-*/^", []Token{
			sym(TokenPlus, "+", 0),
			sym(TokenMinus, "-", 1),
			sym(TokenMul, "*", 2),
			sym(TokenDiv, "/", 3),
			sym(TokenPow, "^", 4),
			end(5),
		}},
		{"powneg", "2^-x", []Token{num("2", 2, 0), sym(TokenPow, "^", 1), sym(TokenMinus, "-", 2), sym(TokenVariable, "x", 3), end(4)}},
		// symbols
		{"var", "x", []Token{sym(TokenVariable, "x", 0), end(1)}},
		{"unicode", "π", []Token{sym(TokenVariable, "π", 0), end(1)}},
		{"vars", "xy", []Token{sym(TokenVariable, "x", 0), imul(1), sym(TokenVariable, "y", 1), end(2)}},
		{"func", "ln", []Token{sym(TokenFunction, "ln", 0), end(2)}},
		{"longest", "cosec", []Token{sym(TokenFunction, "cosec", 0), end(5)}},
		{"func-var", "lnx", []Token{sym(TokenFunction, "ln", 0), imul(2), sym(TokenVariable, "x", 2), end(3)}},
		{"partial", "second", []Token{
			sym(TokenFunction, "sec", 0),
			imul(3),
			sym(TokenVariable, "o", 3),
			imul(4),
			sym(TokenVariable, "n", 4),
			imul(5),
			sym(TokenVariable, "d", 5),
			end(6),
		}},
		// implicit multiplication
		{"numvar", "2x", []Token{num("2", 2, 0), imul(1), sym(TokenVariable, "x", 1), end(2)}},
		{"numparen", "2(x)", []Token{num("2", 2, 0), imul(1), sym(TokenOpen, "(", 1), sym(TokenVariable, "x", 2), sym(TokenClose, ")", 3), end(4)}},
		{"numspacevar", "2 x", []Token{num("2", 2, 0), sym(TokenVariable, "x", 2), end(3)}},
		{"varnum", "x2", []Token{sym(TokenVariable, "x", 0), num("2", 2, 1), end(2)}},
		{"numvarfunc", "2xsin(x)", []Token{
			num("2", 2, 0),
			imul(1),
			sym(TokenVariable, "x", 1),
			imul(2),
			sym(TokenFunction, "sin", 2),
			sym(TokenOpen, "(", 5),
			sym(TokenVariable, "x", 6),
			sym(TokenClose, ")", 7),
			end(8),
		}},
		{"funcfunc", "sin(x)log(x)", []Token{
			sym(TokenFunction, "sin", 0),
			sym(TokenOpen, "(", 3),
			sym(TokenVariable, "x", 4),
			sym(TokenClose, ")", 5),
			imul(6),
			sym(TokenFunction, "log", 6),
			sym(TokenOpen, "(", 9),
			sym(TokenVariable, "x", 10),
			sym(TokenClose, ")", 11),
			end(12),
		}},
		{"parens", "(2)(3)", []Token{
			sym(TokenOpen, "(", 0),
			num("2", 2, 1),
			sym(TokenClose, ")", 2),
			imul(3),
			sym(TokenOpen, "(", 3),
			num("3", 3, 4),
			sym(TokenClose, ")", 5),
			end(6),
		}},
		{"parennum", "(x)2", []Token{sym(TokenOpen, "(", 0), sym(TokenVariable, "x", 1), sym(TokenClose, ")", 2), imul(3), num("2", 2, 3), end(4)}},
		{"parenop", "(x)^2", []Token{sym(TokenOpen, "(", 0), sym(TokenVariable, "x", 1), sym(TokenClose, ")", 2), sym(TokenPow, "^", 3), num("2", 2, 4), end(5)}},
		{"parenspace", "(x) y", []Token{sym(TokenOpen, "(", 0), sym(TokenVariable, "x", 1), sym(TokenClose, ")", 2), sym(TokenVariable, "y", 4), end(5)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := TokenizeString(c.src)
			if err != nil {
				t.Fatalf("scanning %q: unexpected error %v", c.src, err)
			}
			if !reflect.DeepEqual(got, c.tokens) {
				t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind string
		text string
		col  int
	}{
		{"dots", "3.12.1", "number", "3.12.", 4},
		{"dots-late", "x + 10..", "number", "10..", 7},
		{"dollar", "$", "", "$", 0},
		{"after", "a$", "", "$", 1},
		{"comma", "sin(x, y)", "", ",", 5},
		{"bracket", "[x]", "", "[", 0},
		{"lone-dot", ".5", "", ".", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := TokenizeString(c.src)
			if err == nil {
				t.Fatalf("scanning %q gave no error, tokens %v", c.src, toks)
			}
			if toks != nil {
				t.Errorf("scanning %q gave tokens %v with error", c.src, toks)
			}
			var lerr *LexError
			if !errors.As(err, &lerr) {
				t.Fatalf("scanning %q gave %#v, not *LexError", c.src, err)
			}
			if lerr.Kind != c.kind || lerr.Text != c.text || lerr.Col != c.col {
				t.Errorf("scanning %q: want %q %q @ %d, got %q %q @ %d", c.src, c.kind, c.text, c.col, lerr.Kind, lerr.Text, lerr.Col)
			}
			if lerr.Pos() != c.col {
				t.Errorf("scanning %q: Pos() is %d, want %d", c.src, lerr.Pos(), c.col)
			}
		})
	}
}

func TestLexErrorMessages(t *testing.T) {
	_, err := TokenizeString("3.12.1")
	if err == nil || !strings.Contains(err.Error(), "multiple dots") || !strings.HasPrefix(err.Error(), "4: ") {
		t.Errorf("wrong error for multiple dots: %v", err)
	}
	_, err = TokenizeString("1 # 2")
	if err == nil || !strings.Contains(err.Error(), "unknown character") || !strings.Contains(err.Error(), `"#"`) {
		t.Errorf("wrong error for unknown character: %v", err)
	}
}

func TestLexDeterministic(t *testing.T) {
	srcs := []string{"2xsin(x)", "sin(x)log(x)", "(a+b)(a-b)^2 / cosec(3.5y)", "-+-x"}
	for _, src := range srcs {
		a, err := TokenizeString(src)
		if err != nil {
			t.Fatalf("scanning %q: %v", src, err)
		}
		b, err := TokenizeString(src)
		if err != nil {
			t.Fatalf("rescanning %q: %v", src, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("scanning %q twice gave\n\t%v\n\t%v", src, a, b)
		}
	}
}

func TestLexEndRepeats(t *testing.T) {
	scan := lex(strings.NewReader("x"))
	for i, want := range []Token{sym(TokenVariable, "x", 0), end(1), end(1)} {
		got, err := scan.next()
		if err != nil {
			t.Fatalf("token %d: %v", i, err)
		}
		if got != want {
			t.Errorf("token %d: want %v, got %v", i, want, got)
		}
	}
}

func TestFuncsLongestFirst(t *testing.T) {
	for i := 1; i < len(funcnames); i++ {
		if len(funcnames[i]) > len(funcnames[i-1]) {
			t.Errorf("%q sorts after shorter %q", funcnames[i], funcnames[i-1])
		}
	}
	for _, name := range Funcs() {
		if _, ok := globalfuncs[name]; !ok {
			t.Errorf("no implementation for %q", name)
		}
	}
	if len(Funcs()) != len(globalfuncs) {
		t.Errorf("lexer knows %d functions, evaluator knows %d", len(Funcs()), len(globalfuncs))
	}
}
