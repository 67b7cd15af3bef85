//go:build go1.18
// +build go1.18

package symexpr_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/symexpr"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("2xsin(x)")
	f.Add("(a+b)(a-b)^2")
	f.Add("3.12.1")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := symexpr.Parse(strings.NewReader(s))
		if (a == nil) == (err == nil) {
			t.Errorf("%q gave tree %v and error %v", s, a, err)
		}
	})
}
