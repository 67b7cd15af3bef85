package symexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Operators contains the runes which are lexed as operators, in the order of
// their token kinds in operkinds.
const Operators = "+-*/^"

var operkinds = [...]TokenKind{TokenPlus, TokenMinus, TokenMul, TokenDiv, TokenPow}

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// pos is the offset of the next rune to be read.
	pos int
	// q holds synthesized tokens to deliver before scanning further.
	q []Token
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.pos++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.pos--
}

// peek returns the next rune without consuming it. ok is false at the end of
// the input.
func (l *lexer) peek() (r rune, ok bool, err error) {
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.unreadRune()
	return r, true, nil
}

// next scans the next token from the input. Queued tokens are returned first.
// At the end of the input, the result is an End token, and further calls
// continue to return End tokens as long as the source stays exhausted.
func (l *lexer) next() (Token, error) {
	if len(l.q) > 0 {
		tok := l.q[0]
		l.q = l.q[1:]
		return tok, nil
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Token{Kind: TokenEnd, Pos: l.pos}, nil
			}
			return Token{}, err
		}
		pos := l.pos - 1
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			l.unreadRune()
			return l.scanNum()
		case unicode.IsLetter(r):
			l.unreadRune()
			return l.scanSymbols()
		case r == '(':
			return Token{Kind: TokenOpen, Text: "(", Pos: pos}, nil
		case r == ')':
			// )x, )2, and )( are implicit multiplications.
			if err := l.mulBefore(startsAfterClose); err != nil {
				return Token{}, err
			}
			return Token{Kind: TokenClose, Text: ")", Pos: pos}, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				return Token{Kind: operkinds[k], Text: operstrs[k], Pos: pos}, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return Token{}, l.error("", pos, "unknown character")
		}
	}
}

// mulBefore queues an implicit multiplication if the next rune in the input
// starts a term according to starts.
func (l *lexer) mulBefore(starts func(rune) bool) error {
	r, ok, err := l.peek()
	if err != nil || !ok {
		return err
	}
	if starts(r) {
		l.q = append(l.q, Token{Kind: TokenMul, Text: "*", Pos: l.pos})
	}
	return nil
}

func (l *lexer) scanNum() (Token, error) {
	tok := Token{Kind: TokenNumber, Pos: l.pos}
	dot := false
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Token{}, err
		}
		if r == '.' {
			if dot {
				l.buf.WriteRune(r)
				return Token{}, l.error("number", l.pos-1, "multiple dots in number")
			}
			dot = true
		} else if !isDigit(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	tok.Text = l.buf.String()
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// Digits with at most one dot always parse, perhaps to infinity.
		panic("symexpr: invalid number " + strconv.Quote(tok.Text) + ": " + err.Error())
	}
	tok.Num = v
	// 2x and 2( are implicit multiplications.
	if err := l.mulBefore(startsAfterNum); err != nil {
		return Token{}, err
	}
	return tok, nil
}

// scanSymbols scans a run of letters and splits it into function names and
// single-letter variables, preferring the longest function name at each
// position. Every segment after the first is queued behind an implicit
// multiplication.
func (l *lexer) scanSymbols() (Token, error) {
	start := l.pos
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides symbol scanning, so we
				// have scanned at least one rune.
				break
			}
			return Token{}, err
		}
		if !unicode.IsLetter(r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	run := []rune(l.buf.String())
	var first Token
	for i := 0; i < len(run); {
		tok := Token{Pos: start + i}
		if name := funcprefix(run[i:]); name != "" {
			tok.Kind, tok.Text = TokenFunction, name
			// Function names are ASCII, so bytes are runes.
			i += len(name)
		} else {
			tok.Kind, tok.Text = TokenVariable, string(run[i])
			i++
		}
		if tok.Pos == start {
			first = tok
			continue
		}
		l.q = append(l.q, Token{Kind: TokenMul, Text: "*", Pos: tok.Pos}, tok)
	}
	return first, nil
}

// funcprefix returns the longest function name that run begins with, or the
// empty string if there is none.
func funcprefix(run []rune) string {
	for _, name := range funcnames {
		if len(run) >= len(name) && string(run[:len(name)]) == name {
			return name
		}
	}
	return ""
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func startsAfterNum(r rune) bool {
	return r == '(' || unicode.IsLetter(r)
}

func startsAfterClose(r rune) bool {
	return r == '(' || isDigit(r) || unicode.IsLetter(r)
}

func (l *lexer) error(kind string, col int, reason string) error {
	return &LexError{
		Text:   l.buf.String(),
		Kind:   kind,
		Reason: reason,
		Col:    col,
	}
}

// Tokenize scans an entire expression. The last token in the result is always
// the End token. If the input contains an invalid token, the result is nil
// with a *LexError.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	scan := lex(src)
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEnd {
			return toks, nil
		}
	}
}

// TokenizeString is a shortcut to tokenize a string.
func TokenizeString(src string) ([]Token, error) {
	return Tokenize(strings.NewReader(src))
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Reason describes what is wrong with the token.
	Reason string
	// Col is the 0-based rune offset of the invalid rune.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, err.Reason+" "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *LexError) Pos() int {
	return err.Col
}
