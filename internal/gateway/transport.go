package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v62/github"
)

// Response is a transport-neutral view of an HTTP response.
// Header keys are case-sensitive.
type Response struct {
	StatusCode int
	Header     map[string]string
	Body       []byte
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Transport issues GET requests on behalf of the collector.
// It is owned by the caller, which may wrap it with auth, retries or timeouts.
type Transport interface {
	Get(ctx context.Context, rawURL string, params map[string]string) (*Response, error)
}

// HTTPTransport is the Transport backed by a real HTTP client.
type HTTPTransport struct {
	httpClient *http.Client
	restClient *github.Client
}

// NewHTTPTransport creates an HTTPTransport on top of httpClient.
// A nil httpClient falls back to http.DefaultClient.
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{
		httpClient: httpClient,
		restClient: github.NewClient(httpClient),
	}
}

// DefaultBaseURL returns the REST API root used when no base URL is configured,
// without the trailing slash.
func DefaultBaseURL() string {
	return strings.TrimSuffix(github.NewClient(nil).BaseURL.String(), "/")
}

// Get performs a GET on rawURL with params merged into its query string.
// Params replace any value of the same key already present in rawURL.
func (t *HTTPTransport) Get(ctx context.Context, rawURL string, params map[string]string) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url %q: %w", rawURL, err)
	}
	if len(params) > 0 {
		q := u.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	req, err := t.restClient.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.httpClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	header := make(map[string]string, len(resp.Header))
	for k := range resp.Header {
		header[k] = strings.Join(resp.Header.Values(k), ", ")
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     header,
		Body:       body,
	}, nil
}
