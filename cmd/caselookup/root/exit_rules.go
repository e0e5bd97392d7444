package root

import (
	"errors"

	"github.com/flarebyte/caselookup/internal/config"
	"github.com/flarebyte/caselookup/internal/zaaksysteem"
)

const (
	exitCodeSuccess = 0
	exitCodeFailure = 1
	exitCodeFault   = 2
)

type lookupExitError struct {
	code int
	err  error
}

func (e lookupExitError) Error() string { return e.err.Error() }
func (e lookupExitError) ExitCode() int { return e.code }
func (e lookupExitError) Unwrap() error { return e.err }

type exitCoder interface {
	ExitCode() int
}

// classifyLookupError maps a lookup failure to its exit code. Credentials
// and API errors are expected outcomes; transport and decoding problems are
// faults.
func classifyLookupError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *zaaksysteem.APIError
	switch {
	case errors.Is(err, config.ErrCredentials), errors.As(err, &apiErr):
		return lookupExitError{code: exitCodeFailure, err: err}
	case errors.Is(err, zaaksysteem.ErrTransport), errors.Is(err, zaaksysteem.ErrUnexpectedResponse):
		return lookupExitError{code: exitCodeFault, err: err}
	default:
		return lookupExitError{code: exitCodeFailure, err: err}
	}
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return exitCodeSuccess
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return exitCodeFailure
}
