// hotfix.go implements the "create-hotfix" and "finish-hotfix"
// subcommands: patch releases on an existing release line.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/2lazy2debug/gitf/internal/model"
)

// NewCreateHotfixCommand creates the "create-hotfix" cobra command.
func NewCreateHotfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-hotfix <major.minor>",
		Short: "Create a hotfix branch off a release branch",
		Long: `Resolve the current version restricted to the given release line,
increment the patch component, and create hotfix-<next-version> from
release-<major.minor>. The release branch must exist.

Example:
  gitf create-hotfix 1.2`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionCreateHotfix, args)
		},
	}
}

// NewFinishHotfixCommand creates the "finish-hotfix" cobra command.
func NewFinishHotfixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "finish-hotfix <major.minor.patch>",
		Short: "Finalize a hotfix and merge it into its release branch",
		Long: `Check out hotfix-<version>, write the version to the manifest,
commit, tag it, merge the hotfix into its release branch, and delete
the hotfix branch. The hotfix branch must exist; validation fails
before any manifest write or command execution otherwise.

Example:
  gitf finish-hotfix 1.2.1`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionFinishHotfix, args)
		},
	}
}
