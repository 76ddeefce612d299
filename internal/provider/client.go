package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"kwscout/internal/config"
)

// Header names required by the keyword-metrics provider
const (
	headerAPIKey  = "X-RapidAPI-Key"
	headerAPIHost = "X-RapidAPI-Host"
)

const suggestPath = "/keysuggest/"

// Client queries the keyword-metrics API
type Client struct {
	// BaseURL overrides the https://{host} default. Tests point it at an
	// httptest server.
	BaseURL    string
	HTTPClient *http.Client

	creds config.Credentials
}

// NewClient creates a client for the given credentials
func NewClient(creds config.Credentials) *Client {
	return &Client{
		HTTPClient: http.DefaultClient,
		creds:      creds,
	}
}

// Suggest fetches keyword suggestions for the given search text.
// A non-2xx response is returned as a *StatusError carrying the provider's
// message field when the body has one.
func (c *Client) Suggest(ctx context.Context, keyword, country string) (*Payload, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://" + c.creds.APIHost
	}

	params := url.Values{
		"keyword": {keyword},
		"country": {country},
	}
	reqURL := base + suggestPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(headerAPIKey, c.creds.APIKey)
	req.Header.Set(headerAPIHost, c.creds.APIHost)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("keyword API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var payload Payload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing keyword API response: %w", err)
	}
	return &payload, nil
}

// statusError builds a StatusError from a non-success response, preferring
// the provider-supplied message field over the generic status text.
func statusError(resp *http.Response) *StatusError {
	se := &StatusError{Code: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return se
	}

	var em errorMessage
	if err := json.Unmarshal(body, &em); err == nil {
		se.Message = em.Message
	}
	return se
}

// StatusError is a non-success HTTP response from the provider
type StatusError struct {
	Code    int
	Message string // provider message field, may be empty
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Code)
}

type errorMessage struct {
	Message string `json:"message"`
}
