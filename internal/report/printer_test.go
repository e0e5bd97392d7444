package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/flarebyte/caselookup/internal/zaaksysteem"
)

var testCase = zaaksysteem.Case{
	Number: 42,
	UUID:   uuid.MustParse("0f8a4e6c-3d52-4c1a-9a51-6f3c2b7d9e10"),
}

var testAPIError = &zaaksysteem.APIError{StatusCode: 404, Type: "case/not_found", Message: "Case 42 not found"}

func TestPrinter_TextSuccess(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)
	require.NoError(t, p.Start(42))
	require.NoError(t, p.Success(testCase))

	want := strings.Join([]string{
		Separator,
		"Getting information about case 42 from API...",
		Separator,
		"The UUID of case 42: 0f8a4e6c-3d52-4c1a-9a51-6f3c2b7d9e10",
		Separator,
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_TextFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatText).Failure(42, testAPIError))

	out := buf.String()
	assert.Contains(t, out, "Failure executing request...\n")
	assert.Contains(t, out, "Error Message : Case 42 not found\n")
	assert.Contains(t, out, "Error Type    : case/not_found\n")
	assert.True(t, strings.HasSuffix(out, Separator+"\n"))
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	require.NoError(t, p.Start(42))
	require.NoError(t, p.Success(testCase))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, map[string]any{"case": float64(42), "uuid": testCase.UUID.String()}, got)
}

func TestPrinter_YAMLFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatYAML).Failure(42, testAPIError))

	var got failureDoc
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 404, got.Status)
	assert.Equal(t, "case/not_found", got.Error.Type)
	assert.Equal(t, "Case 42 not found", got.Error.Message)
}

func TestCredentialsHelp(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CredentialsHelp(&buf, "my_ini_file.ini"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Failed to retrieve API credentials from 'my_ini_file.ini'\n\n"))
	for _, s := range []string{"[credentials]", "api_key =", "interface_id ="} {
		assert.Contains(t, out, s)
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" YAML ")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
