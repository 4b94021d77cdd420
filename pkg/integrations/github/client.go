package github

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/integrations"
)

// DefaultBaseURL is the public GitHub API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Options configures a Client.
type Options struct {
	BaseURL    string        // API root (default: DefaultBaseURL)
	Token      string        // Optional bearer token
	UserAgent  string        // Overrides integrations.UserAgent when set
	Timeout    time.Duration // Per-request timeout (default: integrations.DefaultTimeout)
	HTTPClient *http.Client  // Overrides Timeout when set
}

// Client provides access to the GitHub API for remote bucket searches.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client.
func NewClient(opts Options) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}
	if opts.UserAgent != "" {
		headers["User-Agent"] = opts.UserAgent
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = integrations.NewHTTPClient(opts.Timeout)
	}

	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		Client:  integrations.NewClient(httpClient, headers),
		baseURL: baseURL,
	}
}

// RateLimitReached reports whether the core API quota is exhausted.
//
// The quota counts as available only when a 2xx reply carries
// rate.remaining as a positive integer. An error status, or a missing or
// malformed field, counts as exhausted. Transport failures and
// undecodable bodies are returned as errors.
func (c *Client) RateLimitReached(ctx context.Context) (bool, error) {
	resp, err := c.Fetch(ctx, c.baseURL+"/rate_limit")
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeNetwork, err, "check rate limit")
	}
	if !resp.OK() {
		return true, nil
	}

	var root any
	if err := decodeNumbers(resp.Body, &root); err != nil {
		return false, errors.Wrap(errors.ErrCodeInvalidResponse, err, "check rate limit")
	}
	remaining, ok := remainingQuota(root)
	return !ok || remaining == 0, nil
}

// TreeText returns the raw body of a repository tree listing.
// The listing is not decoded; callers search it as text. An error status
// is not a failure: its body lists no manifests.
func (c *Client) TreeText(ctx context.Context, uri string) (string, error) {
	resp, err := c.Fetch(ctx, uri)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeNetwork, err, "fetch tree %s", uri)
	}
	return string(resp.Body), nil
}

func decodeNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

// remainingQuota extracts rate.remaining as an unsigned integer.
func remainingQuota(root any) (uint64, bool) {
	obj, ok := root.(map[string]any)
	if !ok {
		return 0, false
	}
	rate, ok := obj["rate"].(map[string]any)
	if !ok {
		return 0, false
	}
	n, ok := rate["remaining"].(json.Number)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
