package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/flarebyte/caselookup/internal/zaaksysteem"
)

// Separator frames every block of text output.
var Separator = strings.Repeat("-", 80)

// Printer renders the progress and outcome of one lookup. In json and yaml
// formats only the outcome document is written.
type Printer struct {
	w      io.Writer
	format Format
}

func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

type successDoc struct {
	Case int    `json:"case" yaml:"case"`
	UUID string `json:"uuid" yaml:"uuid"`
}

type failureDoc struct {
	Case   int      `json:"case" yaml:"case"`
	Status int      `json:"status" yaml:"status"`
	Error  errorDoc `json:"error" yaml:"error"`
}

type errorDoc struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

// Start announces the request.
func (p *Printer) Start(number int) error {
	if p.format != FormatText {
		return nil
	}
	return p.lines(
		Separator,
		fmt.Sprintf("Getting information about case %d from API...", number),
	)
}

// Success prints the resolved case UUID.
func (p *Printer) Success(c zaaksysteem.Case) error {
	switch p.format {
	case FormatJSON:
		return EncodeJSON(p.w, successDoc{Case: c.Number, UUID: c.UUID.String()})
	case FormatYAML:
		return EncodeYAML(p.w, successDoc{Case: c.Number, UUID: c.UUID.String()})
	}
	return p.lines(
		Separator,
		fmt.Sprintf("The UUID of case %d: %s", c.Number, c.UUID),
		Separator,
	)
}

// Failure prints the error the API reported for number.
func (p *Printer) Failure(number int, apiErr *zaaksysteem.APIError) error {
	doc := failureDoc{
		Case:   number,
		Status: apiErr.StatusCode,
		Error:  errorDoc{Type: apiErr.Type, Message: apiErr.Message},
	}
	switch p.format {
	case FormatJSON:
		return EncodeJSON(p.w, doc)
	case FormatYAML:
		return EncodeYAML(p.w, doc)
	}
	return p.lines(
		Separator,
		"Failure executing request...",
		Separator,
		"Error Message : "+apiErr.Message,
		"Error Type    : "+apiErr.Type,
		Separator,
	)
}

func (p *Printer) lines(lines ...string) error {
	_, err := io.WriteString(p.w, strings.Join(lines, "\n")+"\n")
	return err
}

// CredentialsHelp describes the expected credentials file after a failed load.
func CredentialsHelp(w io.Writer, path string) error {
	p := &Printer{w: w, format: FormatText}
	return p.lines(
		fmt.Sprintf("Failed to retrieve API credentials from '%s'", path),
		"",
		"The .ini file should have the following sections and options:",
		Separator,
		"[credentials]",
		"api_key = my_very_difficulty_api_key_string",
		"interface_id = my_interface_id_number",
		Separator,
	)
}
