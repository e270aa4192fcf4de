// removepath.go implements the "remove-path" subcommand: history
// rewriting to purge a path from every commit on a branch.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/2lazy2debug/gitf/internal/model"
)

// NewRemovePathCommand creates the "remove-path" cobra command.
func NewRemovePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-path <path> <branch>",
		Short: "Rewrite history on a branch, removing a path from every commit",
		Long: `Check out the branch, rewrite its history removing <path> from every
commit, prune now-empty commits, delete the backup refs left by the
rewrite, and run garbage collection.

Only argument shape is validated: an unknown branch name is checked out
verbatim and fails at execution time, not validation time. This is a
destructive operation — rewritten history cannot be force-pulled by
collaborators without coordination.

Example:
  gitf remove-path secrets.env develop`,

		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionRemovePath, args)
		},
	}
}
