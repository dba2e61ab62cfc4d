// Package pug is a client for the PubChem PUG REST service.  It covers
// request construction for the service's identifier namespaces and
// operations, the listkey polling protocol for expensive searches, response
// decoding with not-found suppression, and file download.
//
// The higher-level compound, substance and assay packages build structured
// record views on top of this package.
package pug

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/pubchem-go/pkg/errors"
)

// Version is the library version reported in the default User-Agent.
const Version = "0.1.0"

// Default service endpoints and polling behavior.
const (
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	DefaultViewURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug_view/data/compound"

	// DefaultPollInterval is the fixed delay between listkey polls.
	DefaultPollInterval = 2 * time.Second
)

// Logger is the logging interface used by the Client.  The zap-backed
// implementation lives outside this package so the SDK itself carries no
// logging dependency.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Infof(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

// Client talks to the PUG REST service.  It is safe for concurrent use.
type Client struct {
	baseURL         string
	viewURL         string
	httpClient      *http.Client
	userAgent       string
	logger          Logger
	pollInterval    time.Duration
	pollMaxAttempts int
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL overrides the PUG REST base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithViewURL overrides the PUG View base URL used by SafetyData.
func WithViewURL(viewURL string) Option {
	return func(c *Client) {
		c.viewURL = strings.TrimSuffix(viewURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent sets a custom User-Agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithPollInterval sets the delay between listkey polls.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		if interval > 0 {
			c.pollInterval = interval
		}
	}
}

// WithPollMaxAttempts bounds the number of listkey polls.  Zero (the
// default) polls until the server resolves the job, matching the service's
// documented behavior; pass a positive value to fail with a timeout error
// instead of waiting indefinitely.
func WithPollMaxAttempts(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.pollMaxAttempts = n
		}
	}
}

// NewClient creates a PUG REST client.  The service requires no
// authentication, so all options are optional.
func NewClient(opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:      DefaultBaseURL,
		viewURL:      DefaultViewURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		userAgent:    fmt.Sprintf("pubchem-go/%s", Version),
		logger:       noopLogger{},
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}

	parsed, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, errors.InvalidParam("invalid base URL").WithCause(err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errors.InvalidParam("base URL scheme must be http or https")
	}
	return c, nil
}

// do executes one built request and returns the raw response body.  Error
// statuses are mapped to the typed HTTP error family, enriched with the
// first detail string of the service's fault envelope when one is present.
func (c *Client) do(ctx context.Context, spec *Spec) ([]byte, error) {
	var bodyReader io.Reader
	if spec.Body != "" {
		bodyReader = strings.NewReader(spec.Body)
	}

	req, err := http.NewRequestWithContext(ctx, spec.Method, spec.URL, bodyReader)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.New().String())
	if spec.Body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorf("request failed: %v", err)
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to read response body")
	}
	c.logger.Debugf("%s %s %d (%v)", spec.Method, spec.URL, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 400 {
		return nil, errors.FromStatus(resp.StatusCode, faultDetail(respBody))
	}
	return respBody, nil
}

// request builds and executes req without any polling.
func (c *Client) request(ctx context.Context, req Request) ([]byte, error) {
	spec, err := req.Build(c.baseURL)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, spec)
}

// Get executes req, transparently driving the listkey polling protocol for
// expensive queries.  Structure searches (any search type other than xref)
// and formula lookups are answered asynchronously by the service: the first
// response carries a Waiting envelope with a listkey ticket, which is
// re-polled on a fixed interval until the job resolves.  All other requests
// go out directly in the requested output format.
//
// The returned bytes are the final, non-pending response body.
func (c *Client) Get(ctx context.Context, req Request) ([]byte, error) {
	req.normalize()
	if (req.SearchType != "" && req.SearchType != SearchXref) || req.Namespace == NamespaceFormula {
		return c.pollUntilResolved(ctx, req)
	}
	return c.request(ctx, req)
}

// waitingEnvelope is the async job status the service returns while an
// expensive query is still running.
type waitingEnvelope struct {
	Waiting struct {
		ListKey string `json:"ListKey"`
	} `json:"Waiting"`
}

// pollUntilResolved drives the async protocol: an initial JSON status
// request, repeated listkey polls while the Waiting envelope persists, and
// a final refetch in the originally requested output format when that
// format is not JSON.
//
// With pollMaxAttempts left at zero the loop has no iteration cap: an
// unresponsive server blocks until the context is cancelled.  That matches
// the service contract, which promises eventual resolution of every issued
// listkey; callers who want a bound set WithPollMaxAttempts or a context
// deadline.
func (c *Client) pollUntilResolved(ctx context.Context, req Request) ([]byte, error) {
	first := req
	first.Operation = ""
	first.Output = OutputJSON
	body, err := c.request(ctx, first)
	if err != nil {
		return nil, err
	}

	var env waitingEnvelope
	if jsonErr := unmarshalJSON(body, &env); jsonErr != nil {
		return nil, jsonErr
	}
	if env.Waiting.ListKey == "" {
		return body, nil
	}

	ticket := env.Waiting.ListKey
	c.logger.Infof("query pending, polling listkey %s", ticket)
	poll := Request{
		Identifier: ticket,
		Namespace:  NamespaceListKey,
		Domain:     req.Domain,
		Operation:  req.Operation,
		Output:     OutputJSON,
		Options:    req.Options,
	}

	attempts := 0
	for env.Waiting.ListKey != "" {
		attempts++
		if c.pollMaxAttempts > 0 && attempts > c.pollMaxAttempts {
			return nil, errors.New(errors.ErrCodeServerTimeout,
				"listkey still pending after maximum poll attempts").
				WithDetail(fmt.Sprintf("listkey=%s attempts=%d", ticket, c.pollMaxAttempts))
		}
		select {
		case <-time.After(c.pollInterval):
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), errors.ErrCodeServerTimeout, "poll cancelled")
		}

		body, err = c.request(ctx, poll)
		if err != nil {
			return nil, err
		}
		env = waitingEnvelope{}
		if jsonErr := unmarshalJSON(body, &env); jsonErr != nil {
			return nil, jsonErr
		}
	}

	if req.Output != OutputJSON {
		final := poll
		final.Output = req.Output
		final.SearchType = req.SearchType
		return c.request(ctx, final)
	}
	return body, nil
}
