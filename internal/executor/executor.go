// Package executor runs rendered workflow command strings as a single
// shell invocation rooted at the repository working directory.
//
// Commands are interpreted in-process using mvdan.cc/sh rather than
// spawning /bin/sh. The rendered sequences rely on POSIX shell features
// (&&-chaining, quoting, a pipe in remove-path), and the embedded
// interpreter executes them identically on every platform, including
// hosts without a system shell.
//
// There are no retries and no rollback: a failed step (e.g., a merge
// conflict) surfaces its stderr verbatim, and git's own state is the
// source of truth for what already succeeded.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"github.com/2lazy2debug/gitf/internal/model"
)

// Result holds the outcome of one executed command string.
type Result struct {
	// Command is the exact command string that was executed.
	Command string

	// Output is the captured standard output.
	Output string

	// ErrOutput is the captured standard error.
	ErrOutput string

	// ExitCode is the command's exit status. Zero means success.
	ExitCode int
}

// Executor runs command strings in a fixed working directory.
type Executor struct {
	// dir is the working directory commands run in.
	dir string
}

// New creates an Executor rooted at the given directory.
func New(dir string) *Executor {
	return &Executor{dir: dir}
}

// Execute parses and runs the given command string, capturing stdout and
// stderr. The returned Result is populated even on failure so callers can
// surface partial output.
//
// A non-zero exit is reported as a model.CLIError with ExitExecError
// carrying the trimmed stderr text; the caller is never left without a
// definitive success/failure signal.
func (e *Executor) Execute(ctx context.Context, command string) (*Result, error) {
	result := &Result{Command: command}

	prog, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		result.ExitCode = 1
		return result, model.WrapCLIError(model.ExitExecError,
			fmt.Sprintf("failed to parse command %q", command), err)
	}

	var stdout, stderr bytes.Buffer
	runner, err := interp.New(
		interp.Dir(e.dir),
		interp.StdIO(nil, &stdout, &stderr),
	)
	if err != nil {
		result.ExitCode = 1
		return result, model.WrapCLIError(model.ExitExecError, "failed to create interpreter", err)
	}

	runErr := runner.Run(ctx, prog)

	result.Output = stdout.String()
	result.ErrOutput = stderr.String()

	if runErr != nil {
		var exitStatus interp.ExitStatus
		if errors.As(runErr, &exitStatus) {
			result.ExitCode = int(exitStatus)
		} else {
			result.ExitCode = 1
		}

		message := fmt.Sprintf("command failed with exit code %d", result.ExitCode)
		if detail := strings.TrimSpace(result.ErrOutput); detail != "" {
			message = fmt.Sprintf("%s: %s", message, detail)
		}
		return result, model.WrapCLIError(model.ExitExecError, message, runErr)
	}

	return result, nil
}
