package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flarebyte/caselookup/internal/zaaksysteem"
)

const (
	DefaultCase     = 783
	DefaultINI      = "my_ini_file.ini"
	DefaultBaseURL  = zaaksysteem.DefaultBaseURL
	DefaultOutput   = "text"
	DefaultLogLevel = "warn"
	DefaultEnvFile  = ".env"

	// EnvPrefix scopes environment overrides, e.g. CASELOOKUP_BASE_URL.
	EnvPrefix = "CASELOOKUP"
)

// Option keys, shared by flags, environment variables and viper lookups.
const (
	KeyCase     = "case"
	KeyINI      = "ini"
	KeyBaseURL  = "base-url"
	KeyTimeout  = "timeout"
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
	KeyEnvFile  = "env-file"
)

// Options are resolved once, before any credentials are read.
type Options struct {
	Case     int           `mapstructure:"case" validate:"min=1"`
	INI      string        `mapstructure:"ini" validate:"required"`
	BaseURL  string        `mapstructure:"base-url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"min=0"`
	Output   string        `mapstructure:"output" validate:"oneof=text json yaml"`
	LogLevel string        `mapstructure:"log-level" validate:"required"`
	EnvFile  string        `mapstructure:"env-file"`
}

// DefaultOptions returns the values used when neither a flag nor an
// environment variable is given.
func DefaultOptions() Options {
	return Options{
		Case:     DefaultCase,
		INI:      DefaultINI,
		BaseURL:  DefaultBaseURL,
		Output:   DefaultOutput,
		LogLevel: DefaultLogLevel,
		EnvFile:  DefaultEnvFile,
	}
}

// RegisterFlags adds the lookup flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := DefaultOptions()
	fs.Int(KeyCase, d.Case, "The case number to look up")
	RegisterCredentialsFlags(fs)
	fs.String(KeyBaseURL, d.BaseURL, "Base URL of the case-management API")
	fs.Duration(KeyTimeout, d.Timeout, "Request timeout (0 waits for the transport)")
	fs.String(KeyOutput, d.Output, "Output format: text|json|yaml")
	fs.String(KeyLogLevel, d.LogLevel, "Log level: trace|debug|info|warn|error")
}

// RegisterCredentialsFlags adds --ini and --env-file, the flags every
// command reading credentials shares.
func RegisterCredentialsFlags(fs *pflag.FlagSet) {
	fs.String(KeyINI, DefaultINI, "Path to the credentials file (.ini or .cue)")
	fs.String(KeyEnvFile, DefaultEnvFile, "Optional dotenv file with CASELOOKUP_* overrides")
}

// NewViper binds fs and CASELOOKUP_* environment variables into a fresh
// viper instance. Changed flags win over the environment, which wins over
// flag defaults.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}
	return v, nil
}

// LoadEnvFileFrom loads the dotenv file named by the env-file option in v.
// Call it before reading any other option so its values are visible.
func LoadEnvFileFrom(v *viper.Viper) error {
	return LoadEnvFile(v.GetString(KeyEnvFile))
}

// ResolveOptions reads and validates every option from v.
func ResolveOptions(v *viper.Viper) (Options, error) {
	o := Options{
		Case:     v.GetInt(KeyCase),
		INI:      v.GetString(KeyINI),
		BaseURL:  strings.TrimRight(v.GetString(KeyBaseURL), "/"),
		Timeout:  v.GetDuration(KeyTimeout),
		Output:   strings.ToLower(v.GetString(KeyOutput)),
		LogLevel: v.GetString(KeyLogLevel),
		EnvFile:  v.GetString(KeyEnvFile),
	}
	if err := validateStruct(o); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return o, nil
}
