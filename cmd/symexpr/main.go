package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/unixpickle/essentials"

	"github.com/zephyrtronium/symexpr/internal/config"
	"github.com/zephyrtronium/symexpr/internal/repl"
)

type options struct {
	Exprs  []string `arg:"" optional:"" help:"Expressions to evaluate."`
	In     string   `placeholder:"FILE" help:"File with one expression per line, or - for stdin."`
	Prec   uint     `short:"p" help:"Precision of calculations in bits. Zero uses float64."`
	Fmt    string   `help:"Formatting verb for numeric results, e.g. %.10g."`
	Tokens bool     `negatable:"" help:"Print the tokens of each expression."`
	AST    bool     `name:"ast" negatable:"" help:"Print the syntax tree of each expression."`
	Config string   `type:"path" help:"TOML configuration file. Flags override its settings."`
	Prompt string   `help:"REPL prompt. The default is 'expr> '."`
}

var cli options

// flagkeys maps flag names to the configuration keys they override.
var flagkeys = map[string]string{
	"prompt": "prompt",
	"prec":   "precision",
	"fmt":    "format",
	"tokens": "show_tokens",
	"ast":    "show_ast",
}

// setkeys returns the configuration keys of the flags given on the command
// line.
func setkeys(kctx *kong.Context) []string {
	var keys []string
	for _, f := range kctx.Flags() {
		if k, ok := flagkeys[f.Name]; ok && f.Set {
			keys = append(keys, k)
		}
	}
	return keys
}

// settings combines the flags with cfg.
func (o *options) settings(cfg config.Config, keys []string) config.Config {
	return cfg.Merge(config.Config{
		Prompt: o.Prompt,
		Prec:   o.Prec,
		Format: o.Fmt,
		Tokens: o.Tokens,
		AST:    o.AST,
	}, keys...)
}

func main() {
	log.SetFlags(0)
	kctx := kong.Parse(&cli, kong.Description(`
Evaluate math expressions with implicit multiplication, like 2x or
sin(x)log(x). Expressions with variables are reduced as far as possible and
printed symbolically.

With no expressions and no input file, an interactive shell reads from stdin.
`))
	cfg := config.Default()
	if cli.Config != "" {
		c, err := config.Load(cli.Config)
		kctx.FatalIfErrorf(err)
		cfg = c
	}
	cfg = cli.settings(cfg, setkeys(kctx))
	sh := repl.New(cfg)

	if len(cli.Exprs) == 0 && cli.In == "" {
		if err := sh.Run(os.Stdin, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	var srcs []string
	if cli.In != "" {
		f, err := infile(cli.In)
		if err != nil {
			log.Fatal(err)
		}
		lines, err := readLines(f)
		f.Close()
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, cli.Exprs...)

	for _, src := range srcs {
		r, err := sh.Eval(os.Stdout, src)
		if err != nil {
			essentials.Die("evaluating "+strconv.Quote(src)+":", err)
		}
		fmt.Println(r)
	}
}

func infile(inname string) (io.ReadCloser, error) {
	if inname == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(inname)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// readLines reads the non-blank lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
