// Package backend reads orders and in-transit orders from the pharmacy REST
// backend. It is the only component that holds the backend credentials.
package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"pharmadmin/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultOrdersPath    = "/datapool/read_ecommerce_orders/fetch"
	DefaultInTransitPath = "/ecmws/read_customer_in_transit_orders/fetch"
	DefaultPageSize      = 50
	DefaultTimeout       = 15 * time.Second
	DefaultMaxRetries    = 3
)

// HTTPClient matches the subset of http.Client used by Client.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// Config holds the backend location and credentials.
type Config struct {
	BaseURL  string
	Username string
	Password string

	OrdersPath    string
	InTransitPath string
	PageSize      int

	// Timeout bounds each attempt, not the whole retried call.
	Timeout time.Duration

	MaxRetries           uint64
	RetryInitialInterval time.Duration
}

// Client fetches backend collections over HTTP with Basic authentication.
// Transport failures and 5xx answers are retried with exponential backoff;
// 4xx answers and malformed bodies are not.
type Client struct {
	base   *url.URL
	cfg    Config
	client HTTPClient
	logger *slog.Logger
}

// NewClient validates cfg, fills defaults and returns a Client. A nil
// httpClient means http.DefaultClient.
func NewClient(cfg Config, httpClient HTTPClient, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errs.NewValueIsRequiredError("backend base URL")
	}
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("backend base URL", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, errs.NewValueIsInvalidErrorWithCause("backend base URL",
			fmt.Errorf("scheme %q is not http or https", parsed.Scheme))
	}

	if cfg.OrdersPath == "" {
		cfg.OrdersPath = DefaultOrdersPath
	}
	if cfg.InTransitPath == "" {
		cfg.InTransitPath = DefaultInTransitPath
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 500 * time.Millisecond
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:   parsed,
		cfg:    cfg,
		client: httpClient,
		logger: logger.With("component", "backend_client"),
	}, nil
}

// fetchContent GETs endpoint and returns the elements of its content array.
func (c *Client) fetchContent(ctx context.Context, endpoint string, query url.Values) ([]json.RawMessage, error) {
	target := c.resolve(endpoint, query)
	label := "GET " + endpoint

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.cfg.RetryInitialInterval
	policy.MaxElapsedTime = 0

	attempt := 0
	var content []json.RawMessage
	operation := func() error {
		attempt++
		body, err := c.get(ctx, target, label)
		if err != nil {
			return err
		}
		content, err = decodeEnvelope(body)
		if err != nil {
			return backoff.Permanent(err)
		}
		return nil
	}
	notify := func(err error, wait time.Duration) {
		c.logger.WarnContext(ctx, "backend request failed, retrying",
			"endpoint", endpoint, "attempt", attempt, "wait", wait, "error", err)
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, c.cfg.MaxRetries), ctx),
		notify)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, errs.NewUpstreamUnavailableErrorWithCause(label, err)
		}
		return nil, err
	}
	return content, nil
}

// get performs one attempt. Errors it returns are retryable unless wrapped
// with backoff.Permanent.
func (c *Client) get(ctx context.Context, target, label string) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("backend: build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Username != "" || c.cfg.Password != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause(label, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, c.errorFromResponse(resp, label)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, backoff.Permanent(c.errorFromResponse(resp, label))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewUpstreamUnavailableErrorWithCause(label, err)
	}
	return body, nil
}

func (c *Client) resolve(endpoint string, query url.Values) string {
	ref := &url.URL{Path: strings.TrimPrefix(endpoint, "/"), RawQuery: query.Encode()}
	base := *c.base
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return base.ResolveReference(ref).String()
}

func (c *Client) errorFromResponse(resp *http.Response, label string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<12))
	err := errs.NewUpstreamUnavailableError(label, resp.StatusCode)
	if text := strings.TrimSpace(string(body)); text != "" {
		err.Cause = errors.New(text)
	}
	return err
}

// decodeEnvelope extracts the content array of a {"content": [...]} body.
func decodeEnvelope(body []byte) ([]json.RawMessage, error) {
	var envelope struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("response body", err)
	}

	trimmed := strings.TrimSpace(string(envelope.Content))
	if !strings.HasPrefix(trimmed, "[") {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("content", errors.New("content is not an array"))
	}

	var content []json.RawMessage
	if err := json.Unmarshal(envelope.Content, &content); err != nil {
		return nil, errs.NewPayloadIsMalformedErrorWithCause("content", err)
	}
	return content, nil
}

func (c *Client) pageQuery(withPage bool) url.Values {
	q := url.Values{}
	if withPage {
		q.Set("page", "0")
	}
	q.Set("size", strconv.Itoa(c.cfg.PageSize))
	return q
}
