package symexpr

import "strconv"

// SyntaxError is an error indicating a token that the grammar does not allow
// where it appears. It implements InputError.
type SyntaxError struct {
	// Col is the position of the offending token.
	Col int
	// Want is the token kind the parser required, or TokenNone if no single
	// kind would have been acceptable.
	Want TokenKind
	// Got is the kind of the offending token.
	Got TokenKind
	// Text is the text of the offending token.
	Text string
	// Reason describes the error when Want is TokenNone.
	Reason string
}

func (err *SyntaxError) Error() string {
	got := err.Got.String()
	if err.Text != "" {
		got += " " + strconv.Quote(err.Text)
	}
	if err.Want != TokenNone {
		return errpos(err.Col, "expected "+err.Want.String()+", got "+got)
	}
	return errpos(err.Col, err.Reason+": "+got)
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based rune offset in the input of the rune or token
	// that caused the error.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
