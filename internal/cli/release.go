// release.go implements the "create-release" and "finish-release"
// subcommands: cutting a release line and finalizing it.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/2lazy2debug/gitf/internal/model"
)

// NewCreateReleaseCommand creates the "create-release" cobra command.
func NewCreateReleaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-release [minor|major]",
		Short: "Cut a new release line with a release-candidate tag",
		Long: `Resolve the current version from tag history (falling back to the
manifest), increment it at the given level (default: minor), write the
new version with an -rc.1 suffix into the manifest on the base branch,
commit, tag, and create the release-<major.minor> branch.

Example:
  gitf create-release minor`,

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionCreateRelease, args)
		},
	}
}

// NewFinishReleaseCommand creates the "finish-release" cobra command.
func NewFinishReleaseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "finish-release <major.minor>",
		Short: "Finalize a release line and merge it into the base branch",
		Long: `Resolve the current version restricted to the given release line,
increment the patch component, write it to the manifest on the release
branch, commit, tag the final version, and merge the release branch
back into the base branch.

Example:
  gitf finish-release 1.2`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionFinishRelease, args)
		},
	}
}
