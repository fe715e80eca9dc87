package methods

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScale is returned for a temperature scale other than celsius,
// fahrenheit or kelvin.
var ErrInvalidScale = errors.New("invalid scale")

// Scale is a temperature scale, named in lowercase.
type Scale string

const (
	Celsius    Scale = "celsius"
	Fahrenheit Scale = "fahrenheit"
	Kelvin     Scale = "kelvin"
)

// ParseScale accepts any casing of the three scale names.
func ParseScale(s string) (Scale, error) {
	switch sc := Scale(strings.ToLower(strings.TrimSpace(s))); sc {
	case Celsius, Fahrenheit, Kelvin:
		return sc, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidScale, s)
}

// ConvertOption tweaks ConvertTemp.
type ConvertOption func(*convertOptions)

type convertOptions struct {
	output Scale
}

// OutputScale selects the result scale. The default is Celsius.
func OutputScale(s Scale) ConvertOption {
	return func(o *convertOptions) {
		o.output = s
	}
}

// ConvertTemp converts temp from inputScale, going through kelvin.
func ConvertTemp(temp float64, inputScale Scale, opts ...ConvertOption) (float64, error) {
	o := convertOptions{output: Celsius}
	for _, opt := range opts {
		opt(&o)
	}

	var kelvin float64
	switch inputScale {
	case Celsius:
		kelvin = temp + 273.15
	case Fahrenheit:
		kelvin = (temp + 459.67) * 5.0 / 9.0
	case Kelvin:
		kelvin = temp
	default:
		return 0, fmt.Errorf("input: %w: %q", ErrInvalidScale, inputScale)
	}

	switch o.output {
	case Celsius:
		return kelvin - 273.15, nil
	case Fahrenheit:
		return kelvin*9.0/5.0 - 459.67, nil
	case Kelvin:
		return kelvin, nil
	}
	return 0, fmt.Errorf("output: %w: %q", ErrInvalidScale, o.output)
}
