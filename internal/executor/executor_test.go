package executor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2lazy2debug/gitf/internal/model"
)

// TestExecuteCapturesOutput verifies stdout capture and a zero exit.
func TestExecuteCapturesOutput(t *testing.T) {
	e := New(t.TempDir())

	result, err := e.Execute(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", result.Output)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, "echo hello", result.Command)
}

// TestExecuteRunsInWorkingDirectory verifies that commands are rooted at
// the executor's directory.
func TestExecuteRunsInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	_, err := e.Execute(context.Background(), "echo data > marker.txt")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "marker.txt"))
	assert.NoError(t, statErr, "marker file should be created in the executor's directory")
}

// TestExecuteChainsStopOnFailure verifies && short-circuiting: the
// second command never runs when the first fails.
func TestExecuteChainsStopOnFailure(t *testing.T) {
	dir := t.TempDir()
	e := New(dir)

	_, err := e.Execute(context.Background(), "false && echo reached > marker.txt")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "marker.txt"))
	assert.True(t, os.IsNotExist(statErr), "second command must not run after a failure")
}

// TestExecuteNonZeroExit verifies the failure contract: a CLIError with
// ExitExecError, the exit code preserved, and stderr captured.
func TestExecuteNonZeroExit(t *testing.T) {
	e := New(t.TempDir())

	result, err := e.Execute(context.Background(), "echo broken >&2; exit 3")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitExecError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "broken", "stderr text is surfaced verbatim")

	require.NotNil(t, result)
	assert.Equal(t, 3, result.ExitCode)
	assert.Equal(t, "broken\n", result.ErrOutput)
}

// TestExecuteParseError verifies that an unparseable command string is
// reported without anything running.
func TestExecuteParseError(t *testing.T) {
	e := New(t.TempDir())

	_, err := e.Execute(context.Background(), "echo 'unterminated")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, model.ExitExecError, cliErr.Code)
}
