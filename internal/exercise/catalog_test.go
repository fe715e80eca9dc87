package exercise

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hello", "", "Hello HackerRank!!\n"},
		{"self", "", "main\n"},
		{"odd-or-even", "2\n4\n7\n", "true\nfalse\n"},
		{"range", "5 1 10", "true\n"},
		{"range", "11 1 10", "false\n"},

		{"iterate-colors", `["red", "green", "blue"]`, "[\"red\", \"green\", \"blue\"]\n"},
		{"skip-animals", "[\"leopard\", \"bear\", \"fox\", \"wolf\"]\n2", "[\"2:fox\", \"3:wolf\"]\n"},
		{"rot13", `["Uryyb", "Jbeyq"]`, "[\"Hello\", \"World\"]\n"},
		{"sum-terms", "3", "17\n"},
		{"func-any", `{1 => 2, "a" => "apple"}`, "true\n"},
		{"func-any", `{"a" => 1}`, "false\n"},
		{"func-all", `{"a" => 1, "b" => 9}`, "true\n"},
		{"func-all", `{"a" => 1, "b" => 10}`, "false\n"},
		{"func-none", `{"a" => 1, "b" => nil}`, "false\n"},
		{"func-find", `{"a" => "apple", 1 => 2}`, "[\"a\", \"apple\"]\n"},
		{"func-find", `{3 => 25, 4 => 5}`, "[4, 5]\n"},
		{"func-find", `{"b" => "banana"}`, "nil\n"},
		{
			"group-by-marks",
			"{\"Ramesh\" => 23, \"Vivek\" => 40}\n30",
			"{\"Failed\"=>[[\"Ramesh\", 23]], \"Passed\"=>[[\"Vivek\", 40]]}\n",
		},

		{"prime", "7", "true\n"},
		{"prime", "1", "false\n"},
		{"take", "[1, 2, 3]", "[2, 3]\n"},
		{"take", "[1, 2, 3]\n2", "[3]\n"},
		{"take", "[1, 2, 3]\n5", "[]\n"},
		{"take", "[1, 2, 3]\n-1", "[3]\n"},
		{"full-name", "Ada Augusta Lovelace", "Ada Augusta Lovelace\n"},
		{"convert-temp", "273.15 kelvin", "0.0\n"},
		{"convert-temp", "0 Celsius KELVIN", "273.15\n"},
		{"factorial", "5", "120\n"},
		{"factorial", "0", "1\n"},
		{"square-of-sum", "1 2 3", "36\n"},
		{"lambdas", "3\n4\n{\"a\" => 1, \"b\" => 2}", "9\n5\n6\n7\n[1, 2]\n"},
		{"combination", "5\n2", "10\n"},
		{"currying", "2\n10", "1024\n"},
		{"currying", "2\n-1", "1/2\n"},
		{
			"group-by-marks",
			"{\"Ann\" => 29.5, \"Bo\" => 30.0}\n30",
			"{\"Failed\"=>[[\"Ann\", 29.5]], \"Passed\"=>[[\"Bo\", 30.0]]}\n",
		},
		{"palindromic-primes", "5", "[2, 3, 5, 7, 11]\n"},

		{"quotes", "", strings.Repeat("Hello World and others!\n", 3)},
		{"transcode", "caf\xe9\nna\xefve", "café\nnaïve\n"},
		{"serial-average", "002-10.00-20.00", "002-15.00\n"},
		{"count-multibyte", "¥1000", "1\n"},
		{"strike", "Meow!", "<strike>Meow!</strike>\n"},
		{"process-text", `["  Hi, \n", " Are you having fun?    "]`, "Hi, Are you having fun?\n"},
		{
			"mask-article",
			"Hello World! This is crap!\n[\"crap\"]",
			"Hello World! This is <strike>crap</strike>!\n",
		},
	}

	runner := NewRunner(Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runner.Run(context.Background(), tt.name, strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestDefaultCatalog_Closures(t *testing.T) {
	var out bytes.Buffer
	err := NewRunner(Default()).Run(context.Background(), "closures", strings.NewReader("hey\n"), &out)
	require.NoError(t, err)

	want := []string{
		"This message remembers message :: hey",
		"But in this function/method message is :: Welcome to Block Message Printer",
		"This message remembers message :: hey",
		"But in this function/method message is :: Welcome to Proc Message Printer",
		"This message remembers message :: hey",
		"But in this function/method message is :: Welcome to Lambda Message Printer",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out.String())
}

func TestDefaultCatalog_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"odd-or-even", "2\n4"},
		{"range", "1 2"},
		{"sum-terms", "three"},
		{"func-any", "[1, 2]"},
		{"group-by-marks", "{1 => 2}\n30"},
		{"take", "42"},
		{"take", "[1, 2]\nx"},
		{"convert-temp", "100 rankine"},
		{"convert-temp", "100"},
		{"factorial", "-1"},
		{"palindromic-primes", "-2"},
		{"factorial", "1000000"},
		{"combination", "1000000\n3"},
		{"currying", "2\n1000000"},
		{"currying", "0\n-1"},
		{"serial-average", "02-10.00-20.00"},
		{"mask-article", "text only"},
	}

	runner := NewRunner(Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runner.Run(context.Background(), tt.name, strings.NewReader(tt.input), &bytes.Buffer{})
			require.Error(t, err)
			assert.True(t, IsKind(err, KindInvalidInput), "got %v", err)
		})
	}
}

func TestDefaultCatalog_EveryExerciseDocumented(t *testing.T) {
	reg := Default()
	require.NotEmpty(t, reg.List(""))
	for _, ex := range reg.List("") {
		assert.NotEmpty(t, ex.Summary, ex.Name)
		assert.NotEmpty(t, ex.Topic, ex.Name)
	}
	assert.Equal(t, []Topic{TopicEnumerables, TopicIntroduction, TopicMethods, TopicStrings}, reg.Topics())
}
