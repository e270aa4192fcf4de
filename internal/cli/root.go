// Package cli implements the cobra-based CLI commands for gitf.
//
// Each workflow action is a subcommand defined in its own file within
// this package. This file defines the root command, the shared setup
// that every action goes through (repository detection, config loading,
// base-branch precondition), and the error-to-exit-code translation.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/2lazy2debug/gitf/internal/config"
	"github.com/2lazy2debug/gitf/internal/executor"
	"github.com/2lazy2debug/gitf/internal/gitrepo"
	"github.com/2lazy2debug/gitf/internal/manifest"
	"github.com/2lazy2debug/gitf/internal/model"
	"github.com/2lazy2debug/gitf/internal/version"
	"github.com/2lazy2debug/gitf/internal/workflow"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// jsonOutput switches command output to structured JSON for
	// machine consumption.
	jsonOutput bool

	// verbose enables detailed logging output on stderr.
	verbose bool

	// workDir is the repository working directory (--path flag,
	// default: current directory).
	workDir string
)

// Version, Commit, and Date are set at build time via ldflags and
// injected from the main package for --version output.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// The root command itself performs no action — functionality lives in
// the per-action subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitf",
		Short: "Branching workflow helper for git",
		Long: `gitf automates a feature/release/hotfix branching workflow on top of git:
it validates preconditions against repository state, resolves the next semantic
version from tag history (falling back to the manifest), and runs a fixed
command sequence per action.`,

		// We format errors ourselves (text or JSON based on --json),
		// so cobra's automatic printing is silenced.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&workDir, "path", "", "Repository working directory (default: current directory)")

	rootCmd.AddCommand(NewCreateFeatureCommand())
	rootCmd.AddCommand(NewIncorporateFeatureCommand())
	rootCmd.AddCommand(NewCreateReleaseCommand())
	rootCmd.AddCommand(NewFinishReleaseCommand())
	rootCmd.AddCommand(NewCreateHotfixCommand())
	rootCmd.AddCommand(NewFinishHotfixCommand())
	rootCmd.AddCommand(NewRemovePathCommand())
	rootCmd.AddCommand(NewLastVersionCommand())

	return rootCmd
}

// Execute runs the root command and translates errors into OS exit
// codes. CLIError types carry their own codes; other errors default to 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// session bundles everything one action invocation needs, built by setup.
type session struct {
	engine *workflow.Engine
	cfg    config.Config
}

// setup performs the shared preconditions and wiring for every action:
//  1. Resolve the working directory (--path or cwd)
//  2. Verify it is inside a git repository
//  3. Load .gitf.yml from the repository root
//  4. Verify the configured base branch exists
//  5. Wire the engine (git queries, resolver, executor, manifest path)
//
// Precondition failures return CLIError with ExitNotARepo or
// ExitNoBaseBranch so the process exits immediately with a message,
// before any mutation.
func setup(ctx context.Context) (*session, error) {
	dir := workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, model.WrapCLIError(model.ExitGeneralError, "failed to get current directory", err)
		}
		dir = cwd
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
	VerboseLog("Repository root: %s", root)

	cfg, err := config.Load(root)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitGeneralError, "failed to load configuration", err)
	}

	if !git.BranchExists(ctx, cfg.BaseBranch) {
		return nil, model.NewCLIError(model.ExitNoBaseBranch,
			fmt.Sprintf("repository has no %q branch; create it before using gitf", cfg.BaseBranch))
	}

	manifestPath := filepath.Join(root, cfg.Manifest)
	VerboseLog("Manifest: %s", manifestPath)

	env := &workflow.Env{
		Git:          git,
		Resolver:     version.NewResolver(git, manifest.Source{Path: manifestPath}),
		Exec:         executor.New(root),
		ManifestPath: manifestPath,
		Cfg:          cfg,
	}

	return &session{
		engine: workflow.NewEngine(env),
		cfg:    cfg,
	}, nil
}

// runAction is the shared RunE body for every action subcommand.
func runAction(ctx context.Context, action model.Action, args []string) error {
	s, err := setup(ctx)
	if err != nil {
		return err
	}

	if s.cfg.ClearScreen && !jsonOutput {
		clearScreen()
	}

	result, err := s.engine.Run(ctx, action, args...)
	if err != nil {
		return err
	}

	printResult(action, result)
	return nil
}

// clearScreen clears the terminal with the ANSI erase + home sequence.
func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// printResult outputs an action's outcome in text or JSON format.
func printResult(action model.Action, result *executor.Result) {
	if jsonOutput {
		out := struct {
			Action  string `json:"action"`
			Command string `json:"command"`
			Output  string `json:"output,omitempty"`
		}{
			Action:  action.String(),
			Command: result.Command,
			Output:  result.Output,
		}
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return
	}

	VerboseLog("Executed: %s", result.Command)
	if result.Output != "" {
		fmt.Print(result.Output)
	}
	fmt.Printf("%s completed\n", action)
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag. Errors go to stderr
// in both modes; stdout is reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is
// enabled. Used throughout the CLI for trace output.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
func IsJSONOutput() bool {
	return jsonOutput
}
