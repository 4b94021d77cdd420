package integrations

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/scoopfind/pkg/observability"
)

// Client provides shared HTTP functionality for remote API clients.
// It applies default headers and reports requests to the HTTP hooks.
// A Client is safe for concurrent use.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given HTTP client and default headers.
// Headers are applied to all requests made through this client; User-Agent
// defaults to [UserAgent] unless headers sets it. A nil httpClient selects
// [NewHTTPClient] with the default timeout.
func NewClient(httpClient *http.Client, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	h := map[string]string{"User-Agent": UserAgent}
	for k, v := range headers {
		h[k] = v
	}
	return &Client{http: httpClient, headers: h}
}

// Response is a fully read HTTP response.
type Response struct {
	Status int
	Body   []byte
}

// OK reports whether the status is 2xx.
func (r *Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Decode JSON-decodes the body into v.
func (r *Response) Decode(v any) error {
	return json.NewDecoder(bytes.NewReader(r.Body)).Decode(v)
}

// Fetch performs an HTTP GET request and reads the whole body.
//
// Any status code is returned as a Response; callers decide what an error
// status means for them. Only transport failures and unreadable bodies
// are errors, wrapping [ErrNetwork].
func (c *Client) Fetch(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, fmt.Errorf("%w: read %s: %w", ErrNetwork, url, err)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	return &Response{Status: resp.StatusCode, Body: data}, nil
}
