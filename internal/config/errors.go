package config

import (
	"errors"
	"fmt"
)

// ErrCredentials marks every failure to obtain a complete credential pair.
var ErrCredentials = errors.New("credentials unavailable")

// CredentialsError reports which file could not supply credentials and why.
type CredentialsError struct {
	Path string
	Err  error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("failed to retrieve API credentials from '%s': %v", e.Path, e.Err)
}

func (e *CredentialsError) Unwrap() []error { return []error{ErrCredentials, e.Err} }
