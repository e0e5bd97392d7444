package buildinfo

import (
	"strings"

	"github.com/flarebyte/caselookup/cli"
)

// Package buildinfo exposes version metadata for the CLI. Values can be
// overridden at build time via -ldflags. Values set in the cli package
// (cli.Version/cli.Date) are honored for compatibility with release scripts.

// Name is the program name used in version output and the HTTP User-Agent.
const Name = "caselookup"

var (
	// Version is the semantic version or custom string. Falls back to cli.Version, then "dev".
	Version = ""
	// Commit is the VCS commit hash (optional).
	Commit = ""
	// Date is the build time in RFC3339 or similar (optional). Falls back to cli.Date.
	Date = ""
	// BuiltBy is an optional builder identifier (optional).
	BuiltBy = ""
)

// ResolvedVersion returns Version, falling back to cli.Version and then "dev".
func ResolvedVersion() string {
	if Version != "" {
		return Version
	}
	if cli.Version != "" {
		return cli.Version
	}
	return "dev"
}

// ResolvedDate returns Date, falling back to cli.Date.
func ResolvedDate() string {
	if Date != "" {
		return Date
	}
	return cli.Date
}

// Summary returns a concise single-line version string.
func Summary() string {
	v := ResolvedVersion()
	parts := make([]string, 0, 2)
	if Commit != "" {
		c := Commit
		if len(c) > 7 {
			c = c[:7]
		}
		parts = append(parts, "commit="+c)
	}
	if d := ResolvedDate(); d != "" {
		parts = append(parts, "date="+d)
	}
	if len(parts) > 0 {
		v += " (" + strings.Join(parts, ", ") + ")"
	}
	return v
}

// UserAgent is sent with every outbound API request.
func UserAgent() string {
	return Name + "/" + ResolvedVersion()
}
