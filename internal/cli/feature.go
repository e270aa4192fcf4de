// feature.go implements the "create-feature" and "incorporate-feature"
// subcommands: the short-lived branch half of the workflow.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/2lazy2debug/gitf/internal/model"
)

// NewCreateFeatureCommand creates the "create-feature" cobra command.
func NewCreateFeatureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-feature <name>",
		Short: "Create a feature branch off the base branch",
		Long: `Create a branch named feature-<name> from the base branch and check it out.

Example:
  gitf create-feature experiment`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionCreateFeature, args)
		},
	}
}

// NewIncorporateFeatureCommand creates the "incorporate-feature" cobra command.
func NewIncorporateFeatureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "incorporate-feature <name>",
		Short: "Merge a feature branch into the base branch and delete it",
		Long: `Check out the base branch, merge feature-<name> into it, and delete
the feature branch. The branch must exist; merge conflicts are reported
verbatim and left for the operator to resolve.

Example:
  gitf incorporate-feature experiment`,

		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd.Context(), model.ActionIncorporateFeature, args)
		},
	}
}
