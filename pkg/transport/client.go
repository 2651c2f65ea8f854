// Package transport is the authenticated HTTP channel to the seller API.
// It owns the token lifecycle (in-process tier, persistent tier, token
// exchange), injects credentials and tenant headers, and refreshes the
// token and retries once when the API answers 401.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/cdiscount-sdk/internal/metrics"
	"github.com/donaldgifford/cdiscount-sdk/pkg/config"
	"github.com/donaldgifford/cdiscount-sdk/pkg/sdkerrors"
	"github.com/donaldgifford/cdiscount-sdk/pkg/tokencache"
)

// MaxAuthRetries is the number of times a request is re-issued after a
// 401 response.
const MaxAuthRetries = 1

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

// Client sends authenticated requests to the seller API. It is safe for
// concurrent use.
type Client struct {
	cfg        *config.Config
	store      tokencache.Store
	httpClient *http.Client
	logger     *slog.Logger

	flight singleflight.Group
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, used for both the token
// exchange and API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for token and request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// New creates a Client over cfg. store is the persistent token tier and
// is typically shared with the owning facade.
func New(cfg *config.Config, store tokencache.Store, opts ...Option) *Client {
	c := &Client{
		cfg:    cfg,
		store:  store,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient(cfg)
	}
	return c
}

func newHTTPClient(cfg *config.Config) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Tracing() {
		rt = otelhttp.NewTransport(rt)
	}
	return &http.Client{
		Timeout:   cfg.Timeout(),
		Transport: rt,
	}
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// TokenStore returns the persistent token tier.
func (c *Client) TokenStore() tokencache.Store {
	return c.store
}

// SetSellerID changes the SellerId header sent with subsequent requests.
func (c *Client) SetSellerID(id string) {
	c.cfg.SetSellerID(id)
}

// RequestOptions describes one API call. Body is sent verbatim so a retry
// resends the identical payload.
type RequestOptions struct {
	Query       Params
	Header      map[string]string
	Body        []byte
	ContentType string
}

// Request sends an authenticated request to endpoint, which is either a
// path relative to the base URL or an absolute URL on the base URL's host,
// such as a pagination link. A 401 triggers one token refresh and one retry.
// Statuses of 400 and above are returned as *sdkerrors.APIError.
func (c *Client) Request(
	ctx context.Context,
	method, endpoint string,
	opts RequestOptions,
) (*Response, error) {
	target, err := c.resolveURL(endpoint, opts.Query)
	if err != nil {
		return nil, sdkerrors.NewAPIError("Request failed: "+err.Error(), 0, err)
	}

	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		token, err := c.Authenticate(ctx, false)
		if err != nil {
			return nil, err
		}

		resp, err := c.send(ctx, method, target, token, opts)
		if err != nil {
			c.logger.Debug("request failed",
				"request_id", requestID,
				"method", method,
				"url", target,
				"error", err,
			)
			return nil, sdkerrors.NewAPIError("Request failed: "+err.Error(), 0, err)
		}

		c.logger.Debug("request completed",
			"request_id", requestID,
			"method", method,
			"url", target,
			"status", resp.StatusCode,
			"attempt", attempt,
		)

		if resp.StatusCode == http.StatusUnauthorized && attempt < MaxAuthRetries {
			drain(resp)
			metrics.AuthRetriesTotal.Inc()
			c.logger.Debug("received 401, refreshing token and retrying", "request_id", requestID)

			if _, err := c.RefreshToken(ctx); err != nil {
				return nil, err
			}
			continue
		}

		return handleResponse(resp)
	}
}

func (c *Client) send(
	ctx context.Context,
	method, target, token string,
	opts RequestOptions,
) (*http.Response, error) {
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", contentTypeJSON)
	if seller := c.cfg.SellerID(); seller != "" {
		req.Header.Set("SellerId", seller)
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}
	// Caller headers win; Set canonicalizes names so the override is
	// case-insensitive.
	for k, v := range opts.Header {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APIRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(method, metrics.StatusClass(0)).Inc()
		return nil, err
	}
	metrics.APIRequestsTotal.WithLabelValues(method, metrics.StatusClass(resp.StatusCode)).Inc()

	return resp, nil
}

// handleResponse consumes and closes the body.
func handleResponse(resp *http.Response) (*Response, error) {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, sdkerrors.NewAPIError(
			"Request failed: reading response body: "+err.Error(), 0, err,
		)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, sdkerrors.NewAPIErrorFromResponse(resp.StatusCode, raw)
	}

	return newResponse(resp.StatusCode, resp.Header, raw), nil
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// resolveURL joins relative endpoints to the base URL. Absolute endpoints
// must point at the base URL's scheme and host so credentials never leave
// the API.
func (c *Client) resolveURL(endpoint string, query Params) (string, error) {
	raw := endpoint
	if isAbsolute(endpoint) {
		if err := c.checkSameOrigin(endpoint); err != nil {
			return "", err
		}
	} else {
		raw = c.cfg.BaseURL() + "/" + strings.TrimLeft(endpoint, "/")
	}

	if len(query) == 0 {
		return raw, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing url %q: %w", raw, err)
	}
	q := u.Query()
	for k, vs := range query.Values() {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) checkSameOrigin(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parsing url %q: %w", endpoint, err)
	}
	base, err := url.Parse(c.cfg.BaseURL())
	if err != nil {
		return fmt.Errorf("parsing base url: %w", err)
	}
	if !strings.EqualFold(u.Scheme, base.Scheme) || !strings.EqualFold(u.Host, base.Host) {
		return fmt.Errorf("refusing to send credentials to %s://%s: not the API host %s",
			u.Scheme, u.Host, base.Host)
	}
	return nil
}

func isAbsolute(endpoint string) bool {
	lower := strings.ToLower(endpoint)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func encodeJSON(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case json.RawMessage:
		return b, nil
	case []byte:
		return b, nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return data, nil
}

// Get sends a GET request.
func (c *Client) Get(
	ctx context.Context,
	endpoint string,
	query Params,
	header map[string]string,
) (*Response, error) {
	return c.Request(ctx, http.MethodGet, endpoint, RequestOptions{Query: query, Header: header})
}

// Post sends body as JSON. A nil body sends no payload.
func (c *Client) Post(
	ctx context.Context,
	endpoint string,
	body any,
	header map[string]string,
) (*Response, error) {
	return c.jsonRequest(ctx, http.MethodPost, endpoint, body, header)
}

// Put sends body as JSON.
func (c *Client) Put(
	ctx context.Context,
	endpoint string,
	body any,
	header map[string]string,
) (*Response, error) {
	return c.jsonRequest(ctx, http.MethodPut, endpoint, body, header)
}

// Patch sends body as JSON.
func (c *Client) Patch(
	ctx context.Context,
	endpoint string,
	body any,
	header map[string]string,
) (*Response, error) {
	return c.jsonRequest(ctx, http.MethodPatch, endpoint, body, header)
}

// Delete sends a DELETE request.
func (c *Client) Delete(
	ctx context.Context,
	endpoint string,
	header map[string]string,
) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, endpoint, RequestOptions{Header: header})
}

// PostForm sends form as application/x-www-form-urlencoded.
func (c *Client) PostForm(
	ctx context.Context,
	endpoint string,
	form url.Values,
	header map[string]string,
) (*Response, error) {
	return c.Request(ctx, http.MethodPost, endpoint, RequestOptions{
		Header:      header,
		Body:        []byte(form.Encode()),
		ContentType: contentTypeForm,
	})
}

// PostMultipart sends parts as multipart/form-data.
func (c *Client) PostMultipart(
	ctx context.Context,
	endpoint string,
	parts []Part,
	header map[string]string,
) (*Response, error) {
	body, contentType, err := encodeMultipart(parts)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, http.MethodPost, endpoint, RequestOptions{
		Header:      header,
		Body:        body,
		ContentType: contentType,
	})
}

func (c *Client) jsonRequest(
	ctx context.Context,
	method, endpoint string,
	body any,
	header map[string]string,
) (*Response, error) {
	data, err := encodeJSON(body)
	if err != nil {
		return nil, err
	}
	return c.Request(ctx, method, endpoint, RequestOptions{
		Header:      header,
		Body:        data,
		ContentType: contentTypeJSON,
	})
}
