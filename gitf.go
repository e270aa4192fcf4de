// Package gitf is the programmatic surface of the gitf branching
// workflow helper. It exposes the same validate → resolve → render →
// execute pipeline the CLI drives, for callers embedding the workflow
// in their own tooling.
//
// A Client is constructed once per repository and is not safe for
// concurrent use: every action mutates shared repository state (current
// branch, manifest, tag set) and assumes exclusive ownership of the
// working directory for the duration of one call.
package gitf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/2lazy2debug/gitf/internal/config"
	"github.com/2lazy2debug/gitf/internal/executor"
	"github.com/2lazy2debug/gitf/internal/gitrepo"
	"github.com/2lazy2debug/gitf/internal/manifest"
	"github.com/2lazy2debug/gitf/internal/model"
	"github.com/2lazy2debug/gitf/internal/version"
	"github.com/2lazy2debug/gitf/internal/workflow"
)

// Action names accepted by Client.Run, re-exported so callers do not
// import internal packages.
const (
	CreateFeature      = string(model.ActionCreateFeature)
	IncorporateFeature = string(model.ActionIncorporateFeature)
	CreateRelease      = string(model.ActionCreateRelease)
	FinishRelease      = string(model.ActionFinishRelease)
	CreateHotfix       = string(model.ActionCreateHotfix)
	FinishHotfix       = string(model.ActionFinishHotfix)
	RemovePath         = string(model.ActionRemovePath)
)

// Options configures a Client. Zero values mean defaults.
type Options struct {
	// Path is the repository working directory (default: current
	// directory, resolved by git itself via the subprocess layer).
	Path string

	// BaseBranch overrides the integration branch (default from
	// .gitf.yml, then "develop").
	BaseBranch string

	// MasterBranch overrides the stable branch (default "master").
	MasterBranch string

	// Manifest overrides the manifest filename (default "package.json").
	Manifest string

	// ClearScreen clears the terminal before each action, the same
	// behavior the clearScreen key in .gitf.yml enables. Setting it
	// true turns the behavior on even when the config file leaves it
	// off; false defers to the config file.
	ClearScreen bool
}

// Result reports one executed action.
type Result struct {
	// Command is the shell command sequence that ran.
	Command string

	// Output is the captured standard output.
	Output string

	// ErrOutput is the captured standard error.
	ErrOutput string
}

// Client is a handle over one repository's branching workflow.
type Client struct {
	engine       *workflow.Engine
	manifestPath string
	clearScreen  bool
}

// clearOutput receives the terminal-clear sequence. A package variable
// so tests can observe the write without capturing os.Stdout.
var clearOutput io.Writer = os.Stdout

// New constructs a Client for the repository at opts.Path. It verifies
// the path is inside a git repository and that the base branch exists;
// both are reported as errors before any action can run.
func New(ctx context.Context, opts Options) (*Client, error) {
	dir := opts.Path
	if dir == "" {
		dir = "."
	}

	git := gitrepo.New(dir)
	if !git.IsRepo(ctx) {
		return nil, model.NewCLIError(model.ExitNotARepo,
			fmt.Sprintf("%s is not inside a git repository", dir))
	}

	root, err := git.RepoRoot(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	if opts.BaseBranch != "" {
		cfg.BaseBranch = opts.BaseBranch
	}
	if opts.MasterBranch != "" {
		cfg.MasterBranch = opts.MasterBranch
	}
	if opts.Manifest != "" {
		cfg.Manifest = opts.Manifest
	}
	if opts.ClearScreen {
		cfg.ClearScreen = true
	}

	if !git.BranchExists(ctx, cfg.BaseBranch) {
		return nil, model.NewCLIError(model.ExitNoBaseBranch,
			fmt.Sprintf("repository has no %q branch", cfg.BaseBranch))
	}

	manifestPath := filepath.Join(root, cfg.Manifest)

	env := &workflow.Env{
		Git:          git,
		Resolver:     version.NewResolver(git, manifest.Source{Path: manifestPath}),
		Exec:         executor.New(root),
		ManifestPath: manifestPath,
		Cfg:          cfg,
	}

	return &Client{
		engine:       workflow.NewEngine(env),
		manifestPath: manifestPath,
		clearScreen:  cfg.ClearScreen,
	}, nil
}

// Run executes one workflow action with the given positional arguments.
// Validation failures, resolution failures, and non-zero command exits
// are returned as errors; on success the Result carries the executed
// command and its output.
func (c *Client) Run(ctx context.Context, action string, args ...string) (*Result, error) {
	parsed, err := model.ParseAction(action)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, err.Error(), err)
	}

	if c.clearScreen {
		fmt.Fprint(clearOutput, "\033[2J\033[H")
	}

	res, err := c.engine.Run(ctx, parsed, args...)
	if err != nil {
		return nil, err
	}
	return &Result{
		Command:   res.Command,
		Output:    res.Output,
		ErrOutput: res.ErrOutput,
	}, nil
}

// LastVersion resolves the current version from tag history, optionally
// restricted to a "major.minor" release line (empty considers all tags).
// With no qualifying tag it falls back to the manifest's version.
func (c *Client) LastVersion(ctx context.Context, releaseLine string) (string, error) {
	return c.engine.LastVersion(ctx, releaseLine)
}

// ManifestVersion reads the version currently recorded in the manifest.
func (c *Client) ManifestVersion() (string, error) {
	m, err := manifest.Load(c.manifestPath)
	if err != nil {
		return "", err
	}
	return m.Version()
}

// SetManifestVersion rewrites the manifest's version field in place,
// pretty-printed, preserving all other fields.
func (c *Client) SetManifestVersion(v string) error {
	return manifest.WriteVersion(c.manifestPath, v)
}
