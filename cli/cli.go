package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/caselookup/cli.Version=1.2.3' -X 'github.com/flarebyte/caselookup/cli.Date=2026-10-17'"
var (
	Version string
	Date    string
)
