package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

// Client fetches capability manifests over HTTP using tls-client
type Client struct {
	tlsClient tls_client.HttpClient
	userAgent string
}

// ClientOptions contains options for creating a Client
type ClientOptions struct {
	// Timeout is the hard deadline for the whole request, from start
	// to last body byte
	Timeout   time.Duration
	UserAgent string
	ProxyURL  string
}

// DefaultClientOptions returns default client options
func DefaultClientOptions() ClientOptions {
	return ClientOptions{
		Timeout:   10 * time.Second,
		UserAgent: "",
		ProxyURL:  "",
	}
}

// NewClient creates a new manifest fetch client
func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	// tls-client deadlines are second-granular; a sub-second timeout
	// would truncate to 0 and disable the deadline entirely
	timeoutSeconds := int(opts.Timeout.Seconds())
	if timeoutSeconds < 1 {
		timeoutSeconds = 1
	}

	tlsOpts := []tls_client.HttpClientOption{
		tls_client.WithTimeoutSeconds(timeoutSeconds),
		tls_client.WithClientProfile(profiles.Chrome_131),
	}

	if opts.ProxyURL != "" {
		tlsOpts = append(tlsOpts, tls_client.WithProxyUrl(opts.ProxyURL))
	}

	tlsClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), tlsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tls client: %w", err)
	}

	return &Client{
		tlsClient: tlsClient,
		userAgent: opts.UserAgent,
	}, nil
}

// Fetch retrieves the manifest resource for a normalized origin with a
// single attempt. The returned error classifies the failure:
//   - *domain.FetchError with StatusCode 0: transport failure (DNS,
//     connection, timeout, TLS)
//   - *domain.FetchError with StatusCode set: non-2xx response
//   - wraps domain.ErrInvalidJSON: 2xx response whose body is not JSON
//
// On success the response body is a syntactically valid JSON document,
// not yet validated against the manifest schema.
func (c *Client) Fetch(ctx context.Context, origin string) (*domain.Response, error) {
	target := origin + domain.WellKnownPath

	req, err := fhttp.NewRequest(fhttp.MethodGet, target, nil)
	if err != nil {
		return nil, domain.NewFetchError(target, 0, err)
	}
	req = req.WithContext(ctx)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.tlsClient.Do(req)
	if err != nil {
		return nil, domain.NewFetchError(target, 0, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewFetchError(target, 0, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewFetchError(target, resp.StatusCode,
			fmt.Errorf("HTTP %d", resp.StatusCode))
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: %w", target, domain.ErrInvalidJSON)
	}

	return &domain.Response{
		StatusCode:  resp.StatusCode,
		Body:        body,
		Headers:     http.Header(resp.Header),
		ContentType: resp.Header.Get("Content-Type"),
		URL:         target,
	}, nil
}

// Close releases client resources
func (c *Client) Close() error {
	// TLS client doesn't have a Close method, but we keep this for interface compliance
	return nil
}
