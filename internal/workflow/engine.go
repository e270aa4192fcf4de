package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/2lazy2debug/gitf/internal/config"
	"github.com/2lazy2debug/gitf/internal/executor"
	"github.com/2lazy2debug/gitf/internal/model"
	"github.com/2lazy2debug/gitf/internal/version"
)

// BranchState is the subset of git queries validators need: branch
// existence checks. Implemented by gitrepo.Manager; tests substitute a
// static set.
type BranchState interface {
	BranchExists(ctx context.Context, branch string) bool
}

// Runner executes a rendered command string. Implemented by
// executor.Executor; tests substitute a recorder.
type Runner interface {
	Execute(ctx context.Context, command string) (*executor.Result, error)
}

// Env carries the collaborators one action invocation works against.
// It is threaded explicitly through validators and renderers instead of
// living in package-level state.
type Env struct {
	// Git answers branch-existence queries during validation.
	Git BranchState

	// Resolver determines the current version from tag history with
	// manifest fallback.
	Resolver *version.Resolver

	// Exec runs command strings: the pre-step checkouts performed by
	// renderers as well as the final rendered sequence.
	Exec Runner

	// ManifestPath is the location of the project manifest whose
	// version field create-release, finish-release, and finish-hotfix
	// rewrite.
	ManifestPath string

	// Cfg supplies the base and master branch names.
	Cfg config.Config
}

// Spec describes one workflow action: how many positional arguments it
// takes, how to validate them (possibly against repository state), and
// how to render the final command string.
//
// Render may perform the action's read/mutate pre-steps (checking out a
// branch, rewriting the manifest) before producing the command string;
// producing the string is the hand-off point to the executor.
type Spec struct {
	// Arity is the number of positional arguments. Invocations with
	// fewer arguments are padded with empty strings before validation,
	// so validators see "" for omitted optionals.
	Arity int

	// Validate checks argument shape and, for some actions, repository
	// state. A non-nil return short-circuits the action: Render is
	// never called and nothing is executed.
	Validate func(ctx context.Context, env *Env, args []string) error

	// Render produces the command string for the executor.
	Render func(ctx context.Context, env *Env, args []string) (string, error)
}

// Engine dispatches action invocations through the command table.
type Engine struct {
	env   *Env
	table map[model.Action]Spec
}

// NewEngine builds the command table over the given environment.
func NewEngine(env *Env) *Engine {
	return &Engine{env: env, table: buildTable()}
}

// Run drives one action invocation end to end: table lookup, argument
// padding, validation, rendering (including any manifest pre-steps), and
// execution. The returned Result carries the executed command string and
// its captured output; it is nil when the action failed before execution.
//
// An unknown action is a caller bug, not a recoverable condition, and
// fails fast.
func (e *Engine) Run(ctx context.Context, action model.Action, args ...string) (*executor.Result, error) {
	spec, ok := e.table[action]
	if !ok {
		return nil, model.NewCLIError(model.ExitGeneralError,
			fmt.Sprintf("unknown action %q", action))
	}

	// Reject surplus arguments here: the CLI guards arity through
	// cobra, but programmatic callers reach Run directly.
	if len(args) > spec.Arity {
		return nil, model.NewCLIError(model.ExitValidationError,
			fmt.Sprintf("%s takes at most %d argument(s), got %d", action, spec.Arity, len(args)))
	}

	// Pad missing optional arguments with the empty-string sentinel.
	// Validators for required arguments reject "" with a message.
	for len(args) < spec.Arity {
		args = append(args, "")
	}

	if err := spec.Validate(ctx, e.env, args); err != nil {
		return nil, toCLIError(model.ExitValidationError, err)
	}

	command, err := spec.Render(ctx, e.env, args)
	if err != nil {
		if errors.Is(err, version.ErrNoVersion) {
			return nil, toCLIError(model.ExitResolveError, err)
		}
		return nil, toCLIError(model.ExitGeneralError, err)
	}

	return e.env.Exec.Execute(ctx, command)
}

// LastVersion exposes the version resolver on the engine so the
// programmatic surface and the CLI share one resolution path.
// releaseLine may be empty to consider all tags.
func (e *Engine) LastVersion(ctx context.Context, releaseLine string) (string, error) {
	if releaseLine != "" {
		if err := model.ValidateReleaseLine(releaseLine); err != nil {
			return "", toCLIError(model.ExitValidationError, err)
		}
	}
	v, err := e.env.Resolver.Resolve(ctx, releaseLine)
	if err != nil {
		if errors.Is(err, version.ErrNoVersion) {
			return "", toCLIError(model.ExitResolveError, err)
		}
		return "", err
	}
	return v, nil
}

// toCLIError wraps err in a CLIError with the given code, unless it
// already is one (git query failures arrive pre-wrapped with
// ExitGitError and keep their code).
func toCLIError(code model.ExitCode, err error) error {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return err
	}
	return model.WrapCLIError(code, err.Error(), err)
}
