package root

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flarebyte/caselookup/internal/config"
	"github.com/flarebyte/caselookup/internal/logging"
	"github.com/flarebyte/caselookup/internal/report"
	"github.com/flarebyte/caselookup/internal/zaaksysteem"
)

func runLookup(cmd *cobra.Command) error {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return err
	}
	if err := config.LoadEnvFileFrom(v); err != nil {
		return err
	}
	opts, err := config.ResolveOptions(v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), opts.LogLevel)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(opts.Output)
	if err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{
		"case":     opts.Case,
		"ini":      opts.INI,
		"base_url": opts.BaseURL,
		"timeout":  opts.Timeout,
		"output":   opts.Output,
	}).Debug("resolved options")

	out := cmd.OutOrStdout()
	creds, err := config.LoadCredentials(opts.INI)
	if err != nil {
		logger.WithError(err).Debug("credentials unavailable")
		if herr := report.CredentialsHelp(out, opts.INI); herr != nil {
			return errors.Join(classifyLookupError(err), fmt.Errorf("failed to write help: %w", herr))
		}
		return classifyLookupError(err)
	}

	ctx := cmd.Context()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	client := zaaksysteem.NewClient(&http.Client{}, opts.BaseURL, creds.APIKey, creds.InterfaceID, logger)
	printer := report.NewPrinter(out, format)
	if err := printer.Start(opts.Case); err != nil {
		return err
	}

	c, err := client.GetCaseByNumber(ctx, opts.Case)
	var apiErr *zaaksysteem.APIError
	if errors.As(err, &apiErr) {
		if perr := printer.Failure(opts.Case, apiErr); perr != nil {
			return perr
		}
		return classifyLookupError(err)
	}
	if err != nil {
		return classifyLookupError(err)
	}
	return printer.Success(c)
}
