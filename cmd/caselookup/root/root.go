package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/flarebyte/caselookup/cmd/caselookup/validate"
	"github.com/flarebyte/caselookup/cmd/caselookup/version"
	"github.com/flarebyte/caselookup/internal/config"
)

// NewRootCmd creates the root command for caselookup. The root command
// itself performs the lookup.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caselookup",
		Short: "Look up the UUID of a Zaaksysteem case by its case number",
		Long: "Reads API credentials from an INI file, requests the case with the given\n" +
			"number from the Zaaksysteem API and prints its UUID.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	config.RegisterFlags(cmd.Flags())

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(validate.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}
