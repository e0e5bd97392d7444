package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoadCredentials_INI(t *testing.T) {
	p := writeFile(t, "creds.ini", "[credentials]\napi_key = secret-key\ninterface_id = 12\n")

	c, err := LoadCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, "secret-key", c.APIKey)
	assert.Equal(t, "12", c.InterfaceID)
}

func TestLoadCredentials_INIIgnoresOtherSections(t *testing.T) {
	p := writeFile(t, "creds.ini", "[other]\napi_key = wrong\n\n[credentials]\napi_key = right\ninterface_id = 7\n")

	c, err := LoadCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, "right", c.APIKey)
	assert.Equal(t, "7", c.InterfaceID)
}

func TestLoadCredentials_INIKeepsValuesVerbatim(t *testing.T) {
	p := writeFile(t, "creds.ini", "[credentials]\napi_key = abc#def;ghi\ninterface_id = \"12\"\n")

	c, err := LoadCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, "abc#def;ghi", c.APIKey)
	assert.Equal(t, `"12"`, c.InterfaceID)
}

func TestLoadCredentials_INIKeysAreCaseInsensitive(t *testing.T) {
	p := writeFile(t, "creds.ini", "[credentials]\nAPI_KEY = k\nInterface_ID = 1\n")

	c, err := LoadCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, Credentials{APIKey: "k", InterfaceID: "1"}, c)
}

func TestLoadCredentials_Failures(t *testing.T) {
	cases := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{
			name:    "missing section",
			file:    "creds.ini",
			content: "[other]\napi_key = a\ninterface_id = b\n",
			wantMsg: "missing section: [credentials]",
		},
		{
			name:    "empty section",
			file:    "creds.ini",
			content: "[credentials]\n",
			wantMsg: "missing required key: api_key, interface_id",
		},
		{
			name:    "missing interface id",
			file:    "creds.ini",
			content: "[credentials]\napi_key = a\n",
			wantMsg: "missing required key: interface_id",
		},
		{
			name:    "empty api key",
			file:    "creds.ini",
			content: "[credentials]\napi_key =\ninterface_id = b\n",
			wantMsg: "missing required key: api_key",
		},
		{
			name:    "cue missing field",
			file:    "creds.cue",
			content: "credentials: {\n  api_key: \"a\"\n}\n",
			wantMsg: "missing required field: credentials.interface_id",
		},
		{
			name:    "cue wrong type",
			file:    "creds.cue",
			content: "credentials: {\n  api_key: \"a\"\n  interface_id: 12\n}\n",
			wantMsg: "invalid type for field: credentials.interface_id (expected string)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeFile(t, tc.file, tc.content)

			c, err := LoadCredentials(p)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCredentials)
			assert.Contains(t, err.Error(), tc.wantMsg)
			assert.Equal(t, Credentials{}, c)

			var ce *CredentialsError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, p, ce.Path)
		})
	}
}

func TestLoadCredentials_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.ini")

	_, err := LoadCredentials(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCredentials)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCredentials_CUE(t *testing.T) {
	p := writeFile(t, "creds.cue", "credentials: {\n  api_key: \"secret\"\n  interface_id: \"3\"\n}\n")

	c, err := LoadCredentials(p)
	require.NoError(t, err)
	assert.Equal(t, Credentials{APIKey: "secret", InterfaceID: "3"}, c)
}
