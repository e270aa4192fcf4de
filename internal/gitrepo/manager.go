package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/2lazy2debug/gitf/internal/model"
)

// Manager provides git read queries for a single working directory by
// invoking the git CLI.
//
// The directory is fixed at construction so that every component holding
// a Manager talks to the same repository; there is no package-level state.
type Manager struct {
	// dir is the working directory all queries are rooted at.
	dir string
}

// New creates a Manager rooted at the given directory. The directory is
// not required to be a repository yet; use IsRepo to check.
func New(dir string) *Manager {
	return &Manager{dir: dir}
}

// Dir returns the working directory this Manager queries.
func (m *Manager) Dir() string {
	return m.dir
}

// IsRepo reports whether the working directory is inside a git work tree.
//
// Uses `git rev-parse --is-inside-work-tree`, which prints "true" when
// inside a work tree and fails entirely outside a repository.
func (m *Manager) IsRepo(ctx context.Context) bool {
	out, err := m.run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// RepoRoot returns the absolute path to the top-level directory of the
// repository containing the working directory.
func (m *Manager) RepoRoot(ctx context.Context) (string, error) {
	out, err := m.run(ctx, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CurrentBranch returns the name of the currently checked-out branch.
//
// Uses `git rev-parse --abbrev-ref HEAD` which returns the short branch
// name (e.g., "develop" instead of "refs/heads/develop"). Returns "HEAD"
// if the repository is in a detached HEAD state.
func (m *Manager) CurrentBranch(ctx context.Context) (string, error) {
	out, err := m.run(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BranchExists checks whether a local branch with the given name exists.
//
// Uses `git rev-parse --verify refs/heads/<name>` which exits non-zero
// when the ref is missing. Only the exit status matters; the output
// (the commit SHA) is discarded. The refs/heads/ prefix restricts the
// check to local branches so that a tag of the same name does not count.
func (m *Manager) BranchExists(ctx context.Context, branch string) bool {
	_, err := m.run(ctx, "rev-parse", "--verify", "refs/heads/"+branch)
	return err == nil
}

// Tags returns all tag names in the repository, one per entry, in the
// order git lists them. The caller is responsible for any semantic
// filtering (the version resolver ignores tags that are not semver).
func (m *Manager) Tags(ctx context.Context) ([]string, error) {
	out, err := m.run(ctx, "tag", "--list")
	if err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(out)
	if trimmed == "" {
		return nil, nil
	}
	return strings.Split(trimmed, "\n"), nil
}

// run executes a git command with the given arguments in the Manager's
// working directory.
//
// It captures stdout and stderr separately. On success (exit code 0), it
// returns the stdout output. On failure, it returns a model.CLIError with
// ExitGitError, including the stderr output in the error message.
//
// The working directory is passed via the -C flag, which causes git to
// change to that directory before doing anything else. This avoids
// mutating the process's own working directory.
func (m *Manager) run(ctx context.Context, args ...string) (string, error) {
	fullArgs := append([]string{"-C", m.dir}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.CommandContext(ctx, "git", fullArgs...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitGitError, message, err)
	}

	return stdout.String(), nil
}
