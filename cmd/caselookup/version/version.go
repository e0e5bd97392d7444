package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/caselookup/internal/buildinfo"
	"github.com/flarebyte/caselookup/internal/report"
)

// NewCmd returns the `caselookup version` command.
func NewCmd() *cobra.Command {
	var (
		flagShort bool
		flagJSON  bool
	)
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", buildinfo.Name, buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, the human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s version: %s\n", buildinfo.Name, buildinfo.Summary())
			return report.EncodeJSON(cmd.OutOrStdout(), map[string]any{
				"version":    buildinfo.ResolvedVersion(),
				"commit":     buildinfo.Commit,
				"date":       buildinfo.ResolvedDate(),
				"built_by":   buildinfo.BuiltBy,
				"user_agent": buildinfo.UserAgent(),
				"go":         runtime.Version(),
				"go_os":      runtime.GOOS,
				"go_arch":    runtime.GOARCH,
				"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
			})
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
