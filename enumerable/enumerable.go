// Package enumerable holds the katas built on collection traversal:
// each, each_with_index, map, reduce, the any/all/none/find family and
// group_by.
package enumerable

import (
	"context"
	"strconv"
	"strings"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/literal"
)

// Eacher is a collection that can only be walked.
type Eacher[T any] interface {
	Each(fn func(T))
}

// Colors is a string collection that exposes nothing but Each.
type Colors []string

// Each calls fn with every color in order.
func (c Colors) Each(fn func(string)) {
	for _, color := range c {
		fn(color)
	}
}

// IterateColors collects everything colors yields.
func IterateColors(colors Eacher[string]) []string {
	out := []string{}
	colors.Each(func(c string) {
		out = append(out, c)
	})
	return out
}

// SkipAnimals labels every animal at or after index skip as "index:name".
func SkipAnimals(animals []string, skip int) []string {
	out := []string{}
	pk.EachWithIndex(animals, func(animal string, i int) {
		if i >= skip {
			out = append(out, strconv.Itoa(i)+":"+animal)
		}
	})
	return out
}

// ROT13 decodes every message.
func ROT13(secretMessages []string) []string {
	return pk.Map(secretMessages, func(msg string) string {
		return strings.Map(rot13Rune, msg)
	})
}

// ROT13Bytes rotates ASCII letters in place and returns b. It keeps the
// length, so it can back a streaming pk.ReadFunc.Map.
func ROT13Bytes(b []byte) []byte {
	for i, c := range b {
		b[i] = byte(rot13Rune(rune(c)))
	}
	return b
}

func rot13Rune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z':
		return 'a' + (r-'a'+13)%26
	case r >= 'A' && r <= 'Z':
		return 'A' + (r-'A'+13)%26
	}
	return r
}

// SumTerms sums t(k) = k^2 + 1 for k = 1..n.
func SumTerms(n int) int {
	sum, _ := SumTermsContext(context.Background(), n)
	return sum
}

// SumTermsContext is SumTerms that gives up when ctx is done.
func SumTermsContext(ctx context.Context, n int) (int, error) {
	ks := pk.WithContext(ctx, pk.TakeSeq(pk.Naturals(1), n))
	terms := pk.MapSeq(ks, func(k int) int { return k*k + 1 })
	sum := pk.ReduceSeq(terms, 0, func(acc, t int) int { return acc + t })
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return sum, nil
}

// FuncAny reports whether any key is an integer.
func FuncAny(hash literal.Hash) bool {
	return pk.Any(hash, func(p literal.Pair) bool {
		return literal.IsInteger(p.Key)
	})
}

// FuncAll reports whether every value is an integer below 10.
func FuncAll(hash literal.Hash) bool {
	return pk.All(hash, func(p literal.Pair) bool {
		return literal.IsInteger(p.Value) && literal.LessThan(p.Value, 10)
	})
}

// FuncNone reports whether no value is nil.
func FuncNone(hash literal.Hash) bool {
	return pk.None(hash, func(p literal.Pair) bool {
		return literal.IsNil(p.Value)
	})
}

var (
	smallIntPair pk.Predicate[literal.Pair] = func(p literal.Pair) bool {
		return literal.IsInteger(p.Key) && literal.IsInteger(p.Value) && literal.LessThan(p.Value, 20)
	}
	aStringPair pk.Predicate[literal.Pair] = func(p literal.Pair) bool {
		return literal.IsString(p.Key) && literal.HasPrefix(p.Value, "a")
	}
)

// FuncFind returns the first pair that is either integer => integer below
// 20, or string => string starting with "a".
func FuncFind(hash literal.Hash) (literal.Pair, bool) {
	return pk.Find(hash, smallIntPair.Or(aStringPair))
}

const (
	Failed = "Failed"
	Passed = "Passed"
)

// GroupByMarks splits name => score pairs into Failed (score < passMarks)
// and Passed. Groups are in first-seen order and an empty group is left
// out. Scores that are not numbers count as passed; callers validate.
func GroupByMarks(marks literal.Hash, passMarks int) []pk.Group[string, literal.Pair] {
	return pk.GroupBy(marks, func(p literal.Pair) string {
		if literal.LessThan(p.Value, int64(passMarks)) {
			return Failed
		}
		return Passed
	})
}
