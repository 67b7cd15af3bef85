// Package symexpr implements a calculator for arithmetic expressions that
// may contain free variables.
//
// The syntax is the math you'd write in your notes. "2x" is 2*x, "xsin(x)" is
// x*sin(x), and "(a+b)(a-b)" multiplies two groups. Each letter is its own
// variable unless it begins one of the function names sin, cos, tan, cosec,
// sec, abs, log, ln, exp, or sqrt. Variables are never bound to values: an
// expression that uses one evaluates to a symbolic string, with every purely
// numeric subexpression reduced first. "2x + 3*4" evaluates to "2x + 12".
//
// Evaluation uses float64 arithmetic by default. Contexts created with Prec
// compute to a chosen number of bits instead.
package symexpr
