package exercise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"

	"github.com/zclconf/go-cty/cty"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/enumerable"
	"github.com/Pure-Company/purekata/intro"
	"github.com/Pure-Company/purekata/literal"
	"github.com/Pure-Company/purekata/methods"
	"github.com/Pure-Company/purekata/strs"
)

// Default returns every kata wired to the stdin/stdout convention.
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister(introExercises()...)
	r.MustRegister(enumerableExercises()...)
	r.MustRegister(methodExercises()...)
	r.MustRegister(stringExercises()...)
	return r
}

// maxOperand bounds the inputs of katas whose result grows without limit,
// so one request cannot build a number of unbounded size.
const maxOperand = 1 << 16

func checkOperand(name string, n int) error {
	if n > maxOperand || n < -maxOperand {
		return Invalid(fmt.Errorf("%s %d is out of range [-%d, %d]", name, n, maxOperand, maxOperand))
	}
	return nil
}

func writeLine(out io.Writer, v any) error {
	_, err := fmt.Fprintln(out, v)
	return err
}

func introExercises() []Exercise {
	return []Exercise{
		{
			Name:    "hello",
			Topic:   TopicIntroduction,
			Summary: "print the greeting",
			Run:     Print(intro.Greeting()),
		},
		{
			Name:    "self",
			Topic:   TopicIntroduction,
			Summary: "print the name of the top-level object",
			Run:     Print(intro.Self()),
		},
		{
			Name:    "odd-or-even",
			Topic:   TopicIntroduction,
			Summary: "true for every even number",
			Input:   "count, then one integer per line",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				for range n {
					v, err := in.Int()
					if err != nil {
						return err
					}
					if err := writeLine(out, intro.OddOrEven(v)); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Name:    "range",
			Topic:   TopicIntroduction,
			Summary: "whether a lies within [b, c]",
			Input:   "a b c",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				xs, err := in.Ints()
				if err != nil {
					return err
				}
				if len(xs) != 3 {
					return Invalid(fmt.Errorf("want 3 integers, got %d", len(xs)))
				}
				return writeLine(out, intro.InRange(xs[0], xs[1], xs[2]))
			},
		},
	}
}

func enumerableExercises() []Exercise {
	hashPredicate := func(name, summary string, test func(literal.Hash) bool) Exercise {
		return Exercise{
			Name:    name,
			Topic:   TopicEnumerables,
			Summary: summary,
			Input:   "hash literal",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				h, err := in.Hash()
				if err != nil {
					return err
				}
				return writeLine(out, test(h))
			},
		}
	}

	return []Exercise{
		{
			Name:    "iterate-colors",
			Topic:   TopicEnumerables,
			Summary: "collect what an each-only collection yields",
			Input:   "array of strings",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				colors, err := in.Strings()
				if err != nil {
					return err
				}
				return writeLine(out, literal.InspectStrings(enumerable.IterateColors(enumerable.Colors(colors))))
			},
		},
		{
			Name:    "skip-animals",
			Topic:   TopicEnumerables,
			Summary: "label animals from index skip onwards",
			Input:   "array of strings, then skip",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				animals, err := in.Strings()
				if err != nil {
					return err
				}
				skip, err := in.Int()
				if err != nil {
					return err
				}
				return writeLine(out, literal.InspectStrings(enumerable.SkipAnimals(animals, skip)))
			},
		},
		{
			Name:    "rot13",
			Topic:   TopicEnumerables,
			Summary: "decode ROT13 messages",
			Input:   "array of strings",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				msgs, err := in.Strings()
				if err != nil {
					return err
				}
				return writeLine(out, literal.InspectStrings(enumerable.ROT13(msgs)))
			},
		},
		{
			Name:    "sum-terms",
			Topic:   TopicEnumerables,
			Summary: "sum of k^2 + 1 for k in 1..n",
			Input:   "n",
			Run: func(ctx context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				sum, err := enumerable.SumTermsContext(ctx, n)
				if err != nil {
					return err
				}
				return writeLine(out, sum)
			},
		},
		hashPredicate("func-any", "any key is an integer", enumerable.FuncAny),
		hashPredicate("func-all", "every value is an integer below 10", enumerable.FuncAll),
		hashPredicate("func-none", "no value is nil", enumerable.FuncNone),
		{
			Name:    "func-find",
			Topic:   TopicEnumerables,
			Summary: "first small integer pair or string pair whose value starts with a",
			Input:   "hash literal",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				h, err := in.Hash()
				if err != nil {
					return err
				}
				p, ok := enumerable.FuncFind(h)
				if !ok {
					return writeLine(out, "nil")
				}
				return writeLine(out, p.Inspect())
			},
		},
		{
			Name:    "group-by-marks",
			Topic:   TopicEnumerables,
			Summary: "split students into Failed and Passed",
			Input:   "hash of name => score, then pass marks",
			Run:     groupByMarks,
		},
	}
}

func groupByMarks(_ context.Context, in *Input, out io.Writer) error {
	h, err := in.Hash()
	if err != nil {
		return err
	}
	pass, err := in.Int()
	if err != nil {
		return err
	}

	for _, p := range h {
		if !literal.IsString(p.Key) || !literal.IsNumber(p.Value) {
			return Invalid(fmt.Errorf("%w: want string => number, got %s", literal.ErrType, p.Inspect()))
		}
	}

	groups := enumerable.GroupByMarks(h, pass)
	result := pk.Map(groups, func(g pk.Group[string, literal.Pair]) literal.Pair {
		rows := pk.Map(g.Items, func(p literal.Pair) cty.Value {
			return literal.Tuple(p.Key, p.Value)
		})
		return literal.Pair{Key: cty.StringVal(g.Key), Value: literal.Tuple(rows...)}
	})
	return writeLine(out, literal.Hash(result).Inspect())
}

func methodExercises() []Exercise {
	return []Exercise{
		{
			Name:    "prime",
			Topic:   TopicMethods,
			Summary: "whether n is prime",
			Input:   "n",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				return writeLine(out, methods.IsPrime(n))
			},
		},
		{
			Name:    "take",
			Topic:   TopicMethods,
			Summary: "elements from index onwards (default 1, negative counts from the end)",
			Input:   "array literal, then an optional index",
			Run:     take,
		},
		{
			Name:    "full-name",
			Topic:   TopicMethods,
			Summary: "join first, middle and last names",
			Input:   "names separated by spaces",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				names, err := in.Fields()
				if err != nil {
					return err
				}
				return writeLine(out, methods.FullName(names...))
			},
		},
		{
			Name:    "convert-temp",
			Topic:   TopicMethods,
			Summary: "convert between celsius, fahrenheit and kelvin",
			Input:   "temperature input-scale [output-scale]",
			Run:     convertTemp,
		},
		{
			Name:    "factorial",
			Topic:   TopicMethods,
			Summary: "n! yielded to a block",
			Input:   "n",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				if n < 0 {
					return Invalid(fmt.Errorf("factorial of negative number %d", n))
				}
				if err := checkOperand("n", n); err != nil {
					return err
				}
				methods.Factorial(n, func(v *big.Int) {
					err = writeLine(out, v)
				})
				return err
			},
		},
		{
			Name:    "square-of-sum",
			Topic:   TopicMethods,
			Summary: "square of the sum through two procs",
			Input:   "integers separated by spaces",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				xs, err := in.Ints()
				if err != nil {
					return err
				}
				return writeLine(out, methods.SquareOfSum(xs, methods.ProcSquareNumber, methods.ProcSumArray))
			},
		},
		{
			Name:    "lambdas",
			Topic:   TopicMethods,
			Summary: "square, plus_one, into_2, adder and values_only",
			Input:   "two integers on separate lines, then a hash",
			Run:     lambdas,
		},
		{
			Name:    "closures",
			Topic:   TopicMethods,
			Summary: "block, proc and lambda printers closing over a message",
			Input:   "message",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				msg, err := in.Line()
				if err != nil {
					return err
				}
				remember := methods.RememberMessage(msg)
				methods.BlockMessagePrinter(out, remember)
				methods.ProcMessagePrinter(out, remember)
				methods.LambdaMessagePrinter(out, remember)
				return nil
			},
		},
		{
			Name:    "combination",
			Topic:   TopicMethods,
			Summary: "nCr by partial application",
			Input:   "n, then r",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				if err := checkOperand("n", n); err != nil {
					return err
				}
				r, err := in.Int()
				if err != nil {
					return err
				}
				return writeLine(out, methods.Combination(n)(r))
			},
		},
		{
			Name:    "currying",
			Topic:   TopicMethods,
			Summary: "base curried into a power function",
			Input:   "base, then power",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				base, err := in.Int()
				if err != nil {
					return err
				}
				raise := methods.RaiseToPower(base)
				power, err := in.Int()
				if err != nil {
					return err
				}
				if err := checkOperand("power", power); err != nil {
					return err
				}
				v := raise(power)
				if v == nil {
					return Invalid(errors.New("0 cannot be raised to a negative power"))
				}
				return writeLine(out, v.RatString())
			},
		},
		{
			Name:    "palindromic-primes",
			Topic:   TopicMethods,
			Summary: "first n palindromic primes, lazily",
			Input:   "n",
			Run: func(ctx context.Context, in *Input, out io.Writer) error {
				n, err := in.Int()
				if err != nil {
					return err
				}
				if n < 0 {
					return Invalid(fmt.Errorf("negative count %d", n))
				}
				primes, err := methods.PalindromicPrimesContext(ctx, n)
				if err != nil {
					return err
				}
				return writeLine(out, literal.InspectInts(primes))
			},
		},
	}
}

func take(_ context.Context, in *Input, out io.Writer) error {
	v, err := in.Value()
	if err != nil {
		return err
	}
	if v.IsNull() || !(v.Type().IsTupleType() || v.Type().IsListType()) {
		return Invalid(fmt.Errorf("%w: want array, got %s", literal.ErrType, literal.Inspect(v)))
	}
	elems := make([]cty.Value, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		_, e := it.Element()
		elems = append(elems, e)
	}

	var rest []cty.Value
	line, ok, err := in.OptionalLine()
	switch {
	case err != nil:
		return err
	case ok:
		index, perr := literal.ParseInt(line)
		if perr != nil {
			return &InputError{Line: in.line, Err: perr}
		}
		rest = methods.Take(elems, index)
	default:
		rest = methods.Take(elems)
	}
	return writeLine(out, literal.Inspect(literal.Tuple(rest...)))
}

func convertTemp(_ context.Context, in *Input, out io.Writer) error {
	fields, err := in.Fields()
	if err != nil {
		return err
	}
	if len(fields) < 2 || len(fields) > 3 {
		return Invalid(errors.New("want: temperature input-scale [output-scale]"))
	}
	temp, err := literal.ParseFloat(fields[0])
	if err != nil {
		return Invalid(err)
	}
	from, err := methods.ParseScale(fields[1])
	if err != nil {
		return Invalid(err)
	}
	var opts []methods.ConvertOption
	if len(fields) == 3 {
		to, err := methods.ParseScale(fields[2])
		if err != nil {
			return Invalid(err)
		}
		opts = append(opts, methods.OutputScale(to))
	}
	v, err := methods.ConvertTemp(temp, from, opts...)
	if err != nil {
		return Invalid(err)
	}
	return writeLine(out, literal.FormatFloat(v))
}

func lambdas(ctx context.Context, in *Input, out io.Writer) error {
	a, err := in.Int()
	if err != nil {
		return err
	}
	b, err := in.Int()
	if err != nil {
		return err
	}
	h, err := in.Hash()
	if err != nil {
		return err
	}
	lines := []string{
		strconv.Itoa(methods.Square(a)),
		strconv.Itoa(methods.PlusOne(b)),
		strconv.Itoa(methods.Into2(a)),
		strconv.Itoa(methods.Adder(a, b)),
		literal.Inspect(literal.Tuple(methods.ValuesOnly(h)...)),
	}
	return Print(lines...)(ctx, in, out)
}

func stringExercises() []Exercise {
	return []Exercise{
		{
			Name:    "quotes",
			Topic:   TopicStrings,
			Summary: "the same greeting as single-quoted, double-quoted and heredoc literals",
			Run: Print(strs.SingleQuote(), strs.DoubleQuote()).Then(
				func(_ context.Context, _ *Input, out io.Writer) error {
					_, err := io.WriteString(out, strs.HereDoc())
					return err
				}),
		},
		{
			Name:    "transcode",
			Topic:   TopicStrings,
			Summary: "decode ISO-8859-1 lines to UTF-8",
			Input:   "any number of ISO-8859-1 lines",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				return in.EachLine(func(line string) error {
					s, err := strs.Transcode([]byte(line))
					if err != nil {
						return err
					}
					return writeLine(out, s)
				})
			},
		},
		{
			Name:    "serial-average",
			Topic:   TopicStrings,
			Summary: "SSS-XX.XX-YY.YY to SSS-ZZ.ZZ",
			Input:   "serial",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				line, err := in.Line()
				if err != nil {
					return err
				}
				avg, err := strs.SerialAverage(line)
				if err != nil {
					return Invalid(err)
				}
				return writeLine(out, avg)
			},
		},
		{
			Name:    "count-multibyte",
			Topic:   TopicStrings,
			Summary: "count characters wider than one byte",
			Input:   "text",
			Run: lineTo(func(s string) string {
				return strconv.Itoa(strs.CountMultibyteChar(s))
			}),
		},
		{
			Name:    "strike",
			Topic:   TopicStrings,
			Summary: "wrap text in strike tags",
			Input:   "text",
			Run:     lineTo(strs.Strike),
		},
		{
			Name:    "process-text",
			Topic:   TopicStrings,
			Summary: "strip and join lines with single spaces",
			Input:   "array of strings",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				lines, err := in.Strings()
				if err != nil {
					return err
				}
				return writeLine(out, strs.ProcessText(lines))
			},
		},
		{
			Name:    "mask-article",
			Topic:   TopicStrings,
			Summary: "strike every occurrence of the given words",
			Input:   "text, then an array of words",
			Run: func(_ context.Context, in *Input, out io.Writer) error {
				text, err := in.Line()
				if err != nil {
					return err
				}
				words, err := in.Strings()
				if err != nil {
					return err
				}
				return writeLine(out, strs.MaskArticle(text, words))
			},
		},
	}
}

// lineTo maps one input line to one output line.
func lineTo(fn func(string) string) RunFunc {
	return func(_ context.Context, in *Input, out io.Writer) error {
		line, err := in.Line()
		if err != nil {
			return err
		}
		return writeLine(out, fn(line))
	}
}
