package zaaksysteem

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/flarebyte/caselookup/internal/buildinfo"
)

const (
	// DefaultBaseURL is the course environment the tool was written against.
	DefaultBaseURL = "https://beheercursus.zaaksysteem.net"

	HeaderAPIKey      = "API-Key"
	HeaderInterfaceID = "API-Interface-ID"

	caseByNumberPath = "/api/v1/case/get_by_number/"
)

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client performs case lookups against the Zaaksysteem v1 API.
type Client struct {
	httpClient  Doer
	baseURL     string
	apiKey      string
	interfaceID string
	logger      logrus.FieldLogger
}

func NewClient(httpClient Doer, baseURL, apiKey, interfaceID string, logger logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     baseURL,
		apiKey:      apiKey,
		interfaceID: interfaceID,
		logger:      logger,
	}
}

// CaseURL returns the get_by_number endpoint for number under baseURL.
func CaseURL(baseURL string, number int) string {
	return strings.TrimRight(baseURL, "/") + caseByNumberPath + strconv.Itoa(number)
}

// GetCaseByNumber issues exactly one GET for number. It never retries.
func (c *Client) GetCaseByNumber(ctx context.Context, number int) (Case, error) {
	url := CaseURL(c.baseURL, number)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Case{}, fmt.Errorf("%w: build request: %w", ErrTransport, err)
	}
	req.Header.Set(HeaderAPIKey, c.apiKey)
	req.Header.Set(HeaderInterfaceID, c.interfaceID)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	log := c.logger.WithFields(logrus.Fields{"case": number, "url": url})
	log.Debug("sending case lookup")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Case{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Case{}, fmt.Errorf("%w: read response: %w", ErrTransport, err)
	}
	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(body),
		"duration": time.Since(start),
	}).Debug("case lookup response")

	return interpret(number, resp.StatusCode, body)
}

func interpret(number, status int, body []byte) (Case, error) {
	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if status != http.StatusOK {
		apiErr := &APIError{StatusCode: status}
		if decodeErr == nil && env.Result != nil && env.Result.Instance != nil {
			apiErr.Type = env.Result.Instance.Type
			apiErr.Message = env.Result.Instance.Message
		}
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(status)
		}
		return Case{}, apiErr
	}

	if decodeErr != nil {
		return Case{}, fmt.Errorf("%w: decode body: %w", ErrUnexpectedResponse, decodeErr)
	}
	if env.Result == nil || env.Result.Instance == nil || env.Result.Instance.ID == "" {
		return Case{}, fmt.Errorf("%w: missing result.instance.id", ErrUnexpectedResponse)
	}
	id, err := uuid.Parse(env.Result.Instance.ID)
	if err != nil {
		return Case{}, fmt.Errorf("%w: result.instance.id %q: %w", ErrUnexpectedResponse, env.Result.Instance.ID, err)
	}
	return Case{Number: number, UUID: id}, nil
}
