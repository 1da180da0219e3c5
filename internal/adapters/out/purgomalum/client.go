// Package purgomalum checks text for profanity through the PurgoMalum web service.
package purgomalum

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.purgomalum.com/service"

// Client calls the PurgoMalum containsprofanity endpoint.
// The service answers a bare "true" or "false" body.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client against the public PurgoMalum service.
func NewClient(timeout time.Duration) *Client {
	return NewClientWithBaseURL(defaultBaseURL, timeout)
}

// NewClientWithBaseURL creates a client against a custom endpoint, used in tests.
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// ContainsProfanity reports whether the text contains profanity.
func (c *Client) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := c.baseURL + "/containsprofanity?text=" + url.QueryEscape(text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("profanity check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("profanity service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}

	result, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, fmt.Errorf("profanity service returned an unexpected body: %w", err)
	}

	return result, nil
}
