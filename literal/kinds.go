package literal

import (
	"math/big"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// floatLiteral marks numbers written as floats in the input.
type floatLiteral struct{}

var floatMark = floatLiteral{}

// IsNil reports whether v is the null value.
func IsNil(v cty.Value) bool {
	return v.IsNull()
}

// IsNumber reports whether v is a known number, integer or float.
func IsNumber(v cty.Value) bool {
	return !v.IsNull() && v.IsKnown() && v.Type() == cty.Number
}

// IsInteger reports whether v is a known whole number that was not
// written as a float, so 2 is an integer and 2.0 is not.
func IsInteger(v cty.Value) bool {
	if !IsNumber(v) || v.HasMark(floatMark) {
		return false
	}
	v, _ = v.Unmark()
	return v.AsBigFloat().IsInt()
}

// IsFloat reports whether v is a number written as a float or holding a
// fraction.
func IsFloat(v cty.Value) bool {
	return IsNumber(v) && !IsInteger(v)
}

// IsString reports whether v is a known string.
func IsString(v cty.Value) bool {
	return !v.IsNull() && v.IsKnown() && v.Type() == cty.String
}

// LessThan reports whether v is a number strictly below limit.
func LessThan(v cty.Value, limit int64) bool {
	if !IsNumber(v) {
		return false
	}
	v, _ = v.Unmark()
	return v.AsBigFloat().Cmp(new(big.Float).SetInt64(limit)) < 0
}

// HasPrefix reports whether v is a string starting with prefix.
func HasPrefix(v cty.Value, prefix string) bool {
	if !IsString(v) {
		return false
	}
	v, _ = v.Unmark()
	return strings.HasPrefix(v.AsString(), prefix)
}
