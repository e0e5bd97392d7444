package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flarebyte/caselookup/internal/config"
	"github.com/flarebyte/caselookup/internal/report"
)

// NewCmd returns `caselookup validate`, which checks a credentials file
// without contacting the API. The file is resolved like the lookup does:
// --ini, then CASELOOKUP_INI (also from --env-file), then the default.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "validate",
		Short:         "Check that the credentials file is complete",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			if err := config.LoadEnvFileFrom(v); err != nil {
				return err
			}
			iniPath := v.GetString(config.KeyINI)
			if iniPath == "" {
				return fmt.Errorf("missing required flag: --%s", config.KeyINI)
			}
			if _, err := config.LoadCredentials(iniPath); err != nil {
				if herr := report.CredentialsHelp(cmd.OutOrStdout(), iniPath); herr != nil {
					return errors.Join(err, fmt.Errorf("failed to write help: %w", herr))
				}
				return err
			}
			// Success output must be a single JSON line.
			_, err = fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
			return err
		},
	}
	config.RegisterCredentialsFlags(cmd.Flags())
	return cmd
}
