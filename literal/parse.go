// Package literal reads the collection literals katas receive on stdin and
// renders results back in inspect notation.
//
// Input lines use HCL expression syntax, loosened so the literals graders
// write are accepted as-is: `=>` works as a hash separator and `nil` is the
// null value.
//
//	[1, 2, 3]
//	["red", "green"]
//	{"Ramesh" => 23, "Vivek" => 40}
//	{1 => 2, "a" => "apple", "c" => nil}
//
// Quoted strings are taken literally: "${x}" and "%{x}" are not
// interpolated. Numbers written with a fraction or exponent (1.0, 2e3)
// stay floats even when whole, as IsInteger and Inspect show.
package literal

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	// ErrSyntax is returned when a line is not a valid literal.
	ErrSyntax = errors.New("invalid literal")
	// ErrType is returned when a literal has the wrong shape for the caller.
	ErrType = errors.New("unexpected literal type")
)

const filename = "<stdin>"

var evalCtx = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"nil": cty.NullVal(cty.DynamicPseudoType),
	},
}

// Parse evaluates one literal. Nested hashes come back as cty objects, so
// only top-level hashes keep their key order; use ParseHash for those.
func Parse(src string) (cty.Value, error) {
	expr, buf, err := parseExpr(src)
	if err != nil {
		return cty.NilVal, err
	}
	return eval(expr, buf)
}

// ParseHash evaluates a hash literal, keeping source order and key types.
func ParseHash(src string) (Hash, error) {
	expr, buf, err := parseExpr(src)
	if err != nil {
		return nil, err
	}
	obj, ok := expr.(*hclsyntax.ObjectConsExpr)
	if !ok {
		return nil, fmt.Errorf("%w: want hash, got %q", ErrType, src)
	}

	h := make(Hash, 0, len(obj.Items))
	for _, item := range obj.Items {
		key, err := evalKey(item.KeyExpr, buf)
		if err != nil {
			return nil, err
		}
		val, err := eval(item.ValueExpr, buf)
		if err != nil {
			return nil, err
		}
		h = append(h, Pair{Key: key, Value: val})
	}
	return h, nil
}

// ParseStrings evaluates an array literal into strings. Numbers and bools
// are converted to their string form.
func ParseStrings(src string) ([]string, error) {
	var out []string
	if err := decodeAs(src, cty.List(cty.String), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

// ParseInts evaluates an array literal of whole numbers.
func ParseInts(src string) ([]int, error) {
	var out []int
	if err := decodeAs(src, cty.List(cty.Number), &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []int{}
	}
	return out, nil
}

// ParseInt evaluates a single whole number.
func ParseInt(src string) (int, error) {
	var n int
	if err := decodeAs(src, cty.Number, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// ParseFloat evaluates a single number.
func ParseFloat(src string) (float64, error) {
	var f float64
	if err := decodeAs(src, cty.Number, &f); err != nil {
		return 0, err
	}
	return f, nil
}

func decodeAs(src string, ty cty.Type, target any) error {
	v, err := Parse(src)
	if err != nil {
		return err
	}
	if v.IsNull() {
		return fmt.Errorf("%w: want %s, got nil", ErrType, ty.FriendlyName())
	}
	v, _ = v.UnmarkDeep()
	v, err = convert.Convert(v, ty)
	if err != nil {
		return fmt.Errorf("%w: want %s: %v", ErrType, ty.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(v, target); err != nil {
		return fmt.Errorf("%w: %v", ErrType, err)
	}
	return nil
}

// parseExpr rewrites the token stream before parsing: every `=>` becomes
// `= ` and template openers inside quoted strings are escaped, so "${x}"
// stays literal text. The returned source is what expression ranges refer
// to.
func parseExpr(src string) (hclsyntax.Expression, []byte, error) {
	in := []byte(src)
	tokens, diags := hclsyntax.LexExpression(in, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}

	buf := make([]byte, 0, len(in)+8)
	prev := 0
	for _, tok := range tokens {
		start, end := tok.Range.Start.Byte, tok.Range.End.Byte
		switch tok.Type {
		case hclsyntax.TokenFatArrow:
			buf = append(append(buf, in[prev:start]...), "= "...)
		case hclsyntax.TokenTemplateInterp:
			buf = append(append(buf, in[prev:start]...), '$')
			buf = append(buf, in[start:end]...)
		case hclsyntax.TokenTemplateControl:
			buf = append(append(buf, in[prev:start]...), '%')
			buf = append(buf, in[start:end]...)
		default:
			continue
		}
		prev = end
	}
	buf = append(buf, in[prev:]...)

	expr, diags := hclsyntax.ParseExpression(buf, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, nil, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}
	return expr, buf, nil
}

func eval(expr hcl.Expression, src []byte) (cty.Value, error) {
	if tuple, ok := expr.(*hclsyntax.TupleConsExpr); ok {
		if len(tuple.Exprs) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(tuple.Exprs))
		for i, item := range tuple.Exprs {
			v, err := eval(item, src)
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = v
		}
		return cty.TupleVal(vals), nil
	}

	v, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%w: %s", ErrSyntax, diags.Error())
	}
	if isFloatLiteral(expr, src) {
		v = v.Mark(floatMark)
	}
	return v, nil
}

// isFloatLiteral reports whether expr is a number written with a fraction
// or exponent, optionally negated: 1.0, -2.5, 3e2.
func isFloatLiteral(expr hcl.Expression, src []byte) bool {
	if neg, ok := expr.(*hclsyntax.UnaryOpExpr); ok && neg.Op == hclsyntax.OpNegate {
		expr = neg.Val
	}
	lit, ok := expr.(*hclsyntax.LiteralValueExpr)
	if !ok || lit.Val.IsNull() || lit.Val.Type() != cty.Number {
		return false
	}
	rng := lit.SrcRange
	if rng.End.Byte > len(src) || rng.Start.Byte > rng.End.Byte {
		return false
	}
	return bytes.ContainsAny(src[rng.Start.Byte:rng.End.Byte], ".eE")
}

// evalKey keeps bare identifiers as string keys and evaluates everything
// else, so `1 => x` yields a number key rather than "1".
func evalKey(expr hcl.Expression, src []byte) (cty.Value, error) {
	inner := expr
	if wrapped, ok := expr.(*hclsyntax.ObjectConsKeyExpr); ok {
		inner = wrapped.Wrapped
	}
	if name := hcl.ExprAsKeyword(inner); name != "" && name != "nil" {
		return cty.StringVal(name), nil
	}
	return eval(inner, src)
}
