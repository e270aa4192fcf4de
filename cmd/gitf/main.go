// Package main is the entry point for the gitf CLI.
//
// This binary automates a feature/release/hotfix branching workflow on
// top of git. It delegates all functionality to the internal/cli
// package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process; during development they default to "dev",
// "none", and "unknown".
package main

import (
	"github.com/2lazy2debug/gitf/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Inject build-time version info into the CLI package. This
	// decouples the build system from the CLI framework, keeping
	// main.go minimal.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
