// Package repl implements the interactive shell of the symexpr command.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"

	"github.com/zephyrtronium/symexpr"
	"github.com/zephyrtronium/symexpr/internal/config"
)

const banner = "Math Expression REPL\nType a math expression to see its result.\nType 'exit' to quit.\n"

// Shell evaluates expressions one line at a time.
type Shell struct {
	cfg config.Config
	ctx *symexpr.Context
}

// New creates a shell with the given settings.
func New(cfg config.Config) *Shell {
	return &Shell{
		cfg: cfg,
		ctx: symexpr.NewContext(symexpr.Prec(cfg.Prec)),
	}
}

// Run prompts for expressions on in and writes their results to out until
// in ends or a line is exit. Errors in expressions are printed and do not
// stop the loop; the returned error is from reading in.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, banner+"\n")
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, s.cfg.Prompt)
		if !sc.Scan() {
			fmt.Fprintln(out)
			break
		}
		line := strings.TrimSpace(sc.Text())
		if strings.EqualFold(line, "exit") {
			break
		}
		if line == "" {
			continue
		}
		r, err := s.Eval(out, line)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		fmt.Fprintln(out, "Result:", r)
	}
	fmt.Fprintln(out, "Goodbye!")
	return sc.Err()
}

// Eval evaluates a single expression and returns its formatted result. If the
// shell shows tokens or syntax trees, they are written to out first.
func (s *Shell) Eval(out io.Writer, line string) (string, error) {
	if s.cfg.Tokens {
		toks, err := symexpr.TokenizeString(line)
		if err != nil {
			return "", err
		}
		fmt.Fprintln(out, "Tokens:", repr.String(toks, repr.Indent("  ")))
	}
	a, err := symexpr.ParseString(line)
	if err != nil {
		return "", err
	}
	if s.cfg.AST {
		fmt.Fprintln(out, "AST:", repr.String(a.Root(), repr.Indent("  ")))
	}
	return Format(s.ctx.Eval(a), s.cfg.Format), nil
}

// Format formats a value. Numbers use verb if it is not empty, applied to the
// value at full precision when there is one.
func Format(v symexpr.Value, verb string) string {
	if verb == "" || !v.IsNumber() {
		return v.String()
	}
	if z := v.Big(); z != nil {
		return fmt.Sprintf(verb, z)
	}
	return fmt.Sprintf(verb, v.Float64())
}
