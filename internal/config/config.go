// Package config loads settings for the symexpr command from TOML files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds the settings of the symexpr command and its REPL.
type Config struct {
	// Prompt is printed before each line the REPL reads.
	Prompt string `toml:"prompt"`
	// Prec is the precision of calculations in bits. Zero uses float64.
	Prec uint `toml:"precision"`
	// Format is a fmt verb for numeric results. Empty means the same
	// formatting as numbers inside symbolic results.
	Format string `toml:"format"`
	// Tokens and AST print the token stream and syntax tree of each input.
	Tokens bool `toml:"show_tokens"`
	AST    bool `toml:"show_ast"`
}

// Default returns the settings used when there is no configuration file.
func Default() Config {
	return Config{Prompt: "expr> "}
}

// Load reads a TOML configuration file. Keys missing from the file keep their
// default values. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if u := md.Undecoded(); len(u) != 0 {
		keys := make([]string, len(u))
		for i, k := range u {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("parsing config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Merge returns c with the fields of o named by keys replacing the
// corresponding fields of c. Keys are the TOML names of the fields. Zero values
// in o are copied like any other, so a setting can be reset to its zero value.
func (c Config) Merge(o Config, keys ...string) Config {
	for _, k := range keys {
		switch k {
		case "prompt":
			c.Prompt = o.Prompt
		case "precision":
			c.Prec = o.Prec
		case "format":
			c.Format = o.Format
		case "show_tokens":
			c.Tokens = o.Tokens
		case "show_ast":
			c.AST = o.AST
		default:
			panic("config: unknown key " + k)
		}
	}
	return c
}
