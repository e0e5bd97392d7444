package config

import (
	"fmt"
	"path/filepath"

	"cuelang.org/go/cue"
	"gopkg.in/ini.v1"
)

// CredentialsSection is the INI section (or CUE struct) holding the API credentials.
const CredentialsSection = "credentials"

// Credentials authenticate a single case lookup request. An empty value is
// treated as missing.
type Credentials struct {
	APIKey      string `json:"api_key" validate:"required"`
	InterfaceID string `json:"interface_id" validate:"required"`
}

// LoadCredentials reads the credentials section from path. Files ending in
// .cue are compiled with CUE; anything else is parsed as INI. Both keys must
// be present and non-empty; otherwise a *CredentialsError is returned and no
// partial value escapes.
func LoadCredentials(path string) (Credentials, error) {
	var (
		c   Credentials
		err error
	)
	if filepath.Ext(path) == ".cue" {
		c, err = readCUECredentials(path)
	} else {
		c, err = readINICredentials(path)
	}
	if err == nil {
		err = validateStruct(c)
	}
	if err != nil {
		return Credentials{}, &CredentialsError{Path: path, Err: err}
	}
	return c, nil
}

// iniLoadOptions keep values verbatim: '#' and ';' inside a value and
// surrounding quotes belong to the value.
var iniLoadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	PreserveSurroundedQuote: true,
	InsensitiveKeys:         true,
}

func readINICredentials(path string) (Credentials, error) {
	f, err := ini.LoadSources(iniLoadOptions, path)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	section, err := f.GetSection(CredentialsSection)
	if err != nil {
		return Credentials{}, fmt.Errorf("missing section: [%s]", CredentialsSection)
	}
	return Credentials{
		APIKey:      section.Key("api_key").String(),
		InterfaceID: section.Key("interface_id").String(),
	}, nil
}

func readCUECredentials(path string) (Credentials, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Credentials{}, err
	}
	var c Credentials
	if err := decodeStringField(v, CredentialsSection+".api_key", &c.APIKey); err != nil {
		return Credentials{}, err
	}
	if err := decodeStringField(v, CredentialsSection+".interface_id", &c.InterfaceID); err != nil {
		return Credentials{}, err
	}
	return c, nil
}

func decodeStringField(v cue.Value, path string, dst *string) error {
	if err := requireStringField(v, path); err != nil {
		return err
	}
	if err := v.LookupPath(cue.ParsePath(path)).Decode(dst); err != nil {
		return fmt.Errorf("invalid value for %s: %v", path, err)
	}
	return nil
}
