// lastversion.go implements the "last-version" subcommand, exposing the
// version resolver directly: useful in scripts and for checking what the
// next create-release or create-hotfix would start from.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// NewLastVersionCommand creates the "last-version" cobra command.
func NewLastVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "last-version [major.minor]",
		Short: "Print the current version resolved from tag history",
		Long: `Resolve the current version from tag history, ignoring release-candidate
suffixes, optionally restricted to one release line. With no qualifying
tag, the manifest's recorded version is printed instead.

Example:
  gitf last-version 1.2`,

		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := setup(cmd.Context())
			if err != nil {
				return err
			}

			line := ""
			if len(args) > 0 {
				line = args[0]
			}

			v, err := s.engine.LastVersion(cmd.Context(), line)
			if err != nil {
				return err
			}

			if IsJSONOutput() {
				out := struct {
					Version     string `json:"version"`
					ReleaseLine string `json:"releaseLine,omitempty"`
				}{Version: v, ReleaseLine: line}
				data, _ := json.MarshalIndent(out, "", "  ")
				fmt.Println(string(data))
			} else {
				fmt.Println(v)
			}
			return nil
		},
	}
}
