package exercise

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/Pure-Company/purekata/literal"
)

// ErrMissingLine is returned when an exercise asks for more lines than
// stdin holds.
var ErrMissingLine = errors.New("missing input line")

const maxLineBytes = 1 << 20

// Input hands stdin to an exercise one line at a time, decoding literals
// on request.
type Input struct {
	sc   *bufio.Scanner
	line int
}

// NewInput reads lines from r.
func NewInput(r io.Reader) *Input {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	return &Input{sc: sc}
}

// Line returns the next line without its line terminator.
func (in *Input) Line() (string, error) {
	s, ok, err := in.next()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", &InputError{Line: in.line + 1, Err: ErrMissingLine}
	}
	return s, nil
}

// OptionalLine is Line for trailing inputs that may be left out. A blank
// line counts as absent.
func (in *Input) OptionalLine() (string, bool, error) {
	s, ok, err := in.next()
	if err != nil || !ok || strings.TrimSpace(s) == "" {
		return "", false, err
	}
	return s, true, nil
}

// EachLine calls fn for every remaining line.
func (in *Input) EachLine(fn func(string) error) error {
	for {
		s, ok, err := in.next()
		if err != nil || !ok {
			return err
		}
		if err := fn(s); err != nil {
			return err
		}
	}
}

// Int decodes the next line as a whole number.
func (in *Input) Int() (int, error) {
	return decodeLine(in, literal.ParseInt)
}

// Value decodes the next line as any literal.
func (in *Input) Value() (cty.Value, error) {
	return decodeLine(in, literal.Parse)
}

// Strings decodes the next line as an array of strings.
func (in *Input) Strings() ([]string, error) {
	return decodeLine(in, literal.ParseStrings)
}

// Hash decodes the next line as a hash.
func (in *Input) Hash() (literal.Hash, error) {
	return decodeLine(in, literal.ParseHash)
}

// Ints decodes the next line as whole numbers, written either as an array
// literal or separated by whitespace.
func (in *Input) Ints() ([]int, error) {
	return decodeLine(in, func(s string) ([]int, error) {
		if strings.HasPrefix(strings.TrimSpace(s), "[") {
			return literal.ParseInts(s)
		}
		fields := strings.Fields(s)
		out := make([]int, len(fields))
		for i, f := range fields {
			n, err := literal.ParseInt(f)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	})
}

// Fields splits the next line on whitespace.
func (in *Input) Fields() ([]string, error) {
	s, err := in.Line()
	if err != nil {
		return nil, err
	}
	return strings.Fields(s), nil
}

func (in *Input) next() (string, bool, error) {
	if !in.sc.Scan() {
		if err := in.sc.Err(); err != nil {
			return "", false, &InputError{Line: in.line + 1, Err: fmt.Errorf("read: %w", err)}
		}
		return "", false, nil
	}
	in.line++
	return strings.TrimSuffix(in.sc.Text(), "\r"), true, nil
}

func decodeLine[T any](in *Input, decode func(string) (T, error)) (T, error) {
	var zero T
	s, err := in.Line()
	if err != nil {
		return zero, err
	}
	v, err := decode(s)
	if err != nil {
		return zero, &InputError{Line: in.line, Err: err}
	}
	return v, nil
}
