package methods

import (
	"github.com/zclconf/go-cty/cty"

	"github.com/Pure-Company/purekata/literal"
)

// The lambdas kata: anonymous functions bound to names.
var (
	Square     = func(n int) int { return n * n }
	PlusOne    = func(n int) int { return n + 1 }
	Into2      = func(n int) int { return 2 * n }
	Adder      = func(n, m int) int { return n + m }
	ValuesOnly = func(h literal.Hash) []cty.Value { return h.Values() }
)

// Area returns a zero-argument lambda closing over both sides.
func Area(l, b float64) func() float64 {
	return func() float64 { return l * b }
}
