package model

import (
	"fmt"
	"regexp"
	"strings"
)

// Action identifies one of the supported workflow actions. The set is
// closed: actions are registered once at engine construction and the
// command table is never mutated afterwards.
type Action string

const (
	// ActionCreateFeature creates a feature branch off the base branch.
	ActionCreateFeature Action = "create-feature"

	// ActionIncorporateFeature merges a finished feature branch back into
	// the base branch and deletes it.
	ActionIncorporateFeature Action = "incorporate-feature"

	// ActionCreateRelease cuts a new release line: bumps the version,
	// tags a release candidate, and creates the release branch.
	ActionCreateRelease Action = "create-release"

	// ActionFinishRelease finalizes a release line: bumps the patch
	// version, tags it, and merges the release branch into the base branch.
	ActionFinishRelease Action = "finish-release"

	// ActionCreateHotfix creates a hotfix branch off an existing
	// release branch.
	ActionCreateHotfix Action = "create-hotfix"

	// ActionFinishHotfix finalizes a hotfix: writes and tags the version,
	// merges the hotfix back into its release branch, and deletes it.
	ActionFinishHotfix Action = "finish-hotfix"

	// ActionRemovePath rewrites history on a branch to purge a path from
	// every commit.
	ActionRemovePath Action = "remove-path"
)

// Actions lists every supported action in a stable order. Used by the CLI
// to register subcommands and by the engine to build the command table.
func Actions() []Action {
	return []Action{
		ActionCreateFeature,
		ActionIncorporateFeature,
		ActionCreateRelease,
		ActionFinishRelease,
		ActionCreateHotfix,
		ActionFinishHotfix,
		ActionRemovePath,
	}
}

// String returns the string representation of the Action.
// This method satisfies the fmt.Stringer interface.
func (a Action) String() string {
	return string(a)
}

// IsValid checks whether the Action value is one of the supported actions.
func (a Action) IsValid() bool {
	switch a {
	case ActionCreateFeature, ActionIncorporateFeature,
		ActionCreateRelease, ActionFinishRelease,
		ActionCreateHotfix, ActionFinishHotfix,
		ActionRemovePath:
		return true
	default:
		return false
	}
}

// ParseAction converts a string to an Action.
// Returns an error if the string does not name a supported action.
func ParseAction(s string) (Action, error) {
	action := Action(strings.ToLower(s))
	if !action.IsValid() {
		return "", fmt.Errorf("unknown action: %q", s)
	}
	return action, nil
}

// BranchKind classifies a workflow branch by its role. The kind determines
// the fixed prefix prepended to the caller-supplied or derived suffix.
type BranchKind string

const (
	// KindFeature marks a short-lived branch for a single feature,
	// created from and merged back into the base branch.
	KindFeature BranchKind = "feature"

	// KindRelease marks a long-lived branch for one release line
	// (a major.minor family of patch releases).
	KindRelease BranchKind = "release"

	// KindHotfix marks a short-lived branch for a single patch release,
	// created from and merged back into a release branch.
	KindHotfix BranchKind = "hotfix"
)

// Prefix returns the branch-name prefix for the kind (e.g., "feature-").
func (k BranchKind) Prefix() string {
	return string(k) + "-"
}

// BranchName builds the full branch name for a kind and suffix
// (e.g., KindRelease + "1.2" → "release-1.2").
//
// Uniqueness is not checked here: duplicate branch creation is rejected
// by git itself when the rendered command runs.
func BranchName(kind BranchKind, suffix string) string {
	return kind.Prefix() + suffix
}

// releaseLineRegex matches a "major.minor" release line (e.g., "1.2").
var releaseLineRegex = regexp.MustCompile(`^\d+\.\d+$`)

// versionTripleRegex matches a plain "major.minor.patch" version with no
// prerelease or build suffix (e.g., "1.2.3").
var versionTripleRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

// ValidateReleaseLine checks that the given string is a well-formed
// release line identifier (major.minor, both non-negative integers).
func ValidateReleaseLine(line string) error {
	if line == "" {
		return fmt.Errorf("release line must not be empty")
	}
	if !releaseLineRegex.MatchString(line) {
		return fmt.Errorf("invalid release line %q: expected major.minor (e.g., 1.2)", line)
	}
	return nil
}

// ValidateVersionTriple checks that the given string is a plain
// major.minor.patch version, the form finish-hotfix takes as its
// argument. Prerelease or build suffixes are rejected: a hotfix branch
// is always named after the final version it delivers.
func ValidateVersionTriple(v string) error {
	if v == "" {
		return fmt.Errorf("version must not be empty")
	}
	if !versionTripleRegex.MatchString(v) {
		return fmt.Errorf("invalid version %q: expected major.minor.patch (e.g., 1.2.3)", v)
	}
	return nil
}

// ValidateFeatureName checks that the given name can be used as a branch
// suffix. Git ref syntax is stricter than this, but catching the common
// mistakes here gives a clearer message than git's own rejection.
func ValidateFeatureName(name string) error {
	if name == "" {
		return fmt.Errorf("feature name must not be empty")
	}
	if strings.ContainsAny(name, " \t~^:?*[\\") {
		return fmt.Errorf("invalid feature name %q: must not contain whitespace or git ref special characters", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, ".lock") {
		return fmt.Errorf("invalid feature name %q", name)
	}
	return nil
}

// ExitCode defines standard CLI exit codes. These codes allow scripts
// and CI systems to programmatically determine the outcome of a command.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitNotARepo indicates the working directory is not inside a
	// git repository.
	ExitNotARepo ExitCode = 2

	// ExitNoBaseBranch indicates the repository lacks the configured
	// base branch (develop by default).
	ExitNoBaseBranch ExitCode = 3

	// ExitValidationError indicates an action's preconditions were not
	// met (missing branch, malformed argument). No command was executed.
	ExitValidationError ExitCode = 4

	// ExitResolveError indicates no version could be resolved from tag
	// history and the manifest held no version either.
	ExitResolveError ExitCode = 5

	// ExitGitError indicates a read query against git failed.
	ExitGitError ExitCode = 6

	// ExitExecError indicates the rendered command sequence exited
	// non-zero (e.g., a merge conflict).
	ExitExecError ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
