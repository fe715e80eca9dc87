// Package strs holds the string katas: literals, encoding, indexing,
// iteration and the search/replace helpers.
package strs

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	pk "github.com/Pure-Company/purekata"
)

const helloWorld = "Hello World and others!"

// SingleQuote returns the greeting as a raw literal.
func SingleQuote() string {
	return `Hello World and others!`
}

// DoubleQuote returns the greeting as an interpreted literal.
func DoubleQuote() string {
	return "Hello World and others!"
}

// HereDoc returns the greeting as a here document, trailing newline
// included.
func HereDoc() string {
	return helloWorld + `
`
}

// Transcode decodes ISO-8859-1 bytes into a UTF-8 string.
func Transcode(encoded []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(encoded)
	if err != nil {
		return "", fmt.Errorf("transcode: %w", err)
	}
	return string(out), nil
}

// ErrSerialFormat is returned by SerialAverage for input not shaped like
// SSS-XX.XX-YY.YY.
var ErrSerialFormat = errors.New("want SSS-XX.XX-YY.YY")

var serialRe = regexp.MustCompile(`^(\d{3})-(\d{1,2}(?:\.\d{1,2})?)-(\d{1,2}(?:\.\d{1,2})?)$`)

// SerialAverage turns "SSS-XX.XX-YY.YY" into "SSS-ZZ.ZZ" where ZZ.ZZ is
// the mean of the two numbers rounded half up to two places. The math is
// done in hundredths so 10.00 and 20.01 average to 15.01 exactly.
func SerialAverage(input string) (string, error) {
	m := serialRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return "", fmt.Errorf("serial average %q: %w", input, ErrSerialFormat)
	}
	sum := hundredths(m[2]) + hundredths(m[3])
	avg := (sum + 1) / 2
	return fmt.Sprintf("%s-%d.%02d", m[1], avg/100, avg%100), nil
}

// hundredths reads a validated "D[D][.F[F]]" number as an integer count of
// hundredths.
func hundredths(s string) int {
	whole, frac, _ := strings.Cut(s, ".")
	for len(frac) < 2 {
		frac += "0"
	}
	w, _ := strconv.Atoi(whole)
	f, _ := strconv.Atoi(frac)
	return w*100 + f
}

// CountMultibyteChar counts characters that take more than one byte in
// UTF-8. Invalid bytes count as single-byte characters.
func CountMultibyteChar(input string) int {
	count := 0
	for i := 0; i < len(input); {
		_, size := utf8.DecodeRuneInString(input[i:])
		if size > 1 {
			count++
		}
		i += size
	}
	return count
}

// ProcessText strips surrounding whitespace from each line and joins them
// with single spaces.
func ProcessText(lines []string) string {
	return pk.JoinStrings(" ", pk.Map(lines, strings.TrimSpace)...)
}

// Strike wraps s in strike-through tags.
func Strike(s string) string {
	return pk.Text(s).Surround("<strike>", "</strike>").String()
}

// MaskArticle strikes every occurrence of each word, one word at a time in
// the order given. Empty words are ignored.
func MaskArticle(text string, words []string) string {
	words = pk.Filter(words, func(w string) bool { return w != "" })
	return pk.Reduce(words, text, func(acc, word string) string {
		return strings.ReplaceAll(acc, word, Strike(word))
	})
}
