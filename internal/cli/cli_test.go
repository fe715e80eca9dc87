package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pk "github.com/Pure-Company/purekata"
	"github.com/Pure-Company/purekata/internal/exercise"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCmd(exercise.Default())
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRun(t *testing.T) {
	stdout, _, err := execute(t, "{\"Ramesh\" => 23, \"Vivek\" => 40}\n30\n", "run", "group-by-marks")
	require.NoError(t, err)
	assert.Equal(t, "{\"Failed\"=>[[\"Ramesh\", 23]], \"Passed\"=>[[\"Vivek\", 40]]}\n", stdout)
}

func TestRun_LogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "4\n", "--log-level", "info", "--log-format", "json", "run", "sum-terms")
	require.NoError(t, err)
	assert.Equal(t, "34\n", stdout)
	assert.Contains(t, stderr, `"msg":"exercise.completed"`)
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		in   string
		want int
	}{
		{"unknown exercise", []string{"run", "nope"}, "", ExitUsage},
		{"bad input", []string{"run", "factorial"}, "-3", ExitUsage},
		{"missing argument", []string{"run"}, "", ExitUsage},
		{"bad flag", []string{"run", "--nope", "hello"}, "", ExitUsage},
		{"bad log level", []string{"--log-level", "loud", "run", "hello"}, "", ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.in, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.want, ExitCode(err))
		})
	}
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "purekata.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n  format: json\n"), 0o644))

	_, stderr, err := execute(t, "", "--config", path, "run", "hello")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"exercise.started"`)
}

func TestList(t *testing.T) {
	stdout, _, err := execute(t, "", "list", "--topic", "strings")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Greater(t, len(lines), 1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, stdout, "mask-article")
	assert.NotContains(t, stdout, "rot13")
}

func TestList_UnknownTopic(t *testing.T) {
	stdout, _, err := execute(t, "", "list", "--topic", "poetry")
	require.NoError(t, err)
	assert.Equal(t, "(no exercises found)\n", stdout)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitError, ExitCode(errors.New("plain")))
	assert.Equal(t, 7, ExitCode(pk.WithExitCode(errors.New("coded"), 7)))
}
