package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/donaldgifford/cdiscount-sdk/internal/metrics"
	"github.com/donaldgifford/cdiscount-sdk/pkg/config"
	"github.com/donaldgifford/cdiscount-sdk/pkg/sdkerrors"
	"github.com/donaldgifford/cdiscount-sdk/pkg/tokencache"
)

// DefaultExpiresIn is assumed when the authorization server omits
// expires_in.
const DefaultExpiresIn = 7200 * time.Second

const (
	flightAcquire = "acquire"
	flightRefresh = "refresh"
)

// TokenInfo describes the state of both token tiers. Pointer fields are
// nil when there is no persistent entry.
type TokenInfo struct {
	HasMemoryToken             bool    `json:"has_memory_token"`
	MemoryTokenValid           bool    `json:"memory_token_valid"`
	HasFileToken               bool    `json:"has_file_token"`
	FileTokenExpiresAt         *int64  `json:"file_token_expires_at"`
	FileTokenExpiresAtReadable *string `json:"file_token_expires_at_readable"`
	FileTokenRemainingSeconds  *int64  `json:"file_token_remaining_seconds"`
	CacheFilePath              string  `json:"cache_file_path"`
}

// Authenticate returns a usable access token. It looks in the in-process
// tier, then the persistent tier, and only then exchanges client
// credentials with the authorization server. forceRefresh drops both
// cached copies and always performs an exchange. Concurrent callers share
// a single exchange; a caller whose ctx ends stops waiting without
// cancelling the exchange for the others.
func (c *Client) Authenticate(ctx context.Context, forceRefresh bool) (string, error) {
	if !forceRefresh {
		if token, ok := c.cfg.ValidAccessToken(); ok {
			metrics.TokenCacheHitsTotal.WithLabelValues(metrics.TierMemory).Inc()
			return token, nil
		}
	}

	key := flightAcquire
	if forceRefresh {
		key = flightRefresh
	}

	// The shared flight outlives any single caller; the HTTP client timeout
	// still bounds it.
	flightCtx := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (any, error) {
		return c.acquire(flightCtx, forceRefresh)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	case <-ctx.Done():
		return "", sdkerrors.NewAuthenticationError(
			"Authentication request failed: "+ctx.Err().Error(), 0, ctx.Err(),
		)
	}
}

// RefreshToken forces a new token exchange.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	return c.Authenticate(ctx, true)
}

// IsAuthenticated reports whether a valid token is cached in either tier.
// It never contacts the authorization server.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	if c.cfg.IsTokenValid() {
		return true
	}
	return c.store.HasValidToken(ctx, c.cfg.ClientID(), config.SafetyBuffer)
}

// ClearAllTokens drops the in-process token and this client's persistent
// entry.
func (c *Client) ClearAllTokens(ctx context.Context) error {
	c.cfg.ClearToken()
	if err := c.store.Delete(ctx, c.cfg.ClientID()); err != nil {
		return fmt.Errorf("clearing persistent token: %w", err)
	}
	return nil
}

// TokenInfo reports the state of both tiers without modifying either.
func (c *Client) TokenInfo(ctx context.Context) TokenInfo {
	clientID := c.cfg.ClientID()
	info := TokenInfo{
		HasMemoryToken:   c.cfg.AccessToken() != "",
		MemoryTokenValid: c.cfg.IsTokenValid(),
		CacheFilePath:    c.store.Path(),
	}

	expiresAt, ok := c.store.ExpiresAt(ctx, clientID)
	if !ok {
		return info
	}
	remaining, ok := c.store.RemainingLifetime(ctx, clientID)
	if !ok {
		return info
	}

	unix := expiresAt.Unix()
	readable := expiresAt.Format(tokencache.ReadableLayout)
	secs := int64(remaining / time.Second)

	info.HasFileToken = remaining > config.SafetyBuffer
	info.FileTokenExpiresAt = &unix
	info.FileTokenExpiresAtReadable = &readable
	info.FileTokenRemainingSeconds = &secs
	return info
}

func (c *Client) acquire(ctx context.Context, forceRefresh bool) (string, error) {
	clientID := c.cfg.ClientID()

	if forceRefresh {
		if err := c.store.Delete(ctx, clientID); err != nil {
			c.logger.Warn("removing persistent token", "error", err)
		}
		c.cfg.ClearToken()
		return c.exchange(ctx)
	}

	// Another flight may have filled the in-process tier while this
	// caller was waiting.
	if token, ok := c.cfg.ValidAccessToken(); ok {
		metrics.TokenCacheHitsTotal.WithLabelValues(metrics.TierMemory).Inc()
		return token, nil
	}

	if token, ok := c.store.ValidToken(ctx, clientID, config.SafetyBuffer); ok {
		remaining, _ := c.store.RemainingLifetime(ctx, clientID)
		c.cfg.SetAccessToken(token, remaining)
		metrics.TokenCacheHitsTotal.WithLabelValues(metrics.TierPersistent).Inc()
		c.logger.Debug("token loaded from persistent cache",
			"path", c.store.Path(),
			"expires_in", remaining.String(),
		)
		return token, nil
	}

	return c.exchange(ctx)
}

// exchange performs the client-credentials grant and stores the result in
// both tiers. A failure to persist is logged and otherwise ignored.
func (c *Client) exchange(ctx context.Context) (string, error) {
	c.logger.Debug("requesting new token", "endpoint", c.cfg.TokenEndpoint())

	start := time.Now()
	token, expiresIn, err := c.postToken(ctx)
	metrics.TokenExchangeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.TokenExchangesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return "", err
	}
	metrics.TokenExchangesTotal.WithLabelValues(metrics.ResultSuccess).Inc()

	c.cfg.SetAccessToken(token, expiresIn)
	if err := c.store.Save(ctx, c.cfg.ClientID(), token, expiresIn); err != nil {
		c.logger.Warn("persisting access token", "path", c.store.Path(), "error", err)
	}

	c.logger.Debug("new token obtained", "expires_in", expiresIn.String())
	return token, nil
}

func (c *Client) postToken(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{
		"client_id":     {c.cfg.ClientID()},
		"client_secret": {c.cfg.ClientSecret()},
		"grant_type":    {c.cfg.GrantType()},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.TokenEndpoint(),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", 0, sdkerrors.NewAuthenticationError(
			"Authentication request failed: "+err.Error(), 0, err,
		)
	}
	req.Header.Set("Content-Type", contentTypeForm)
	req.Header.Set("Accept", contentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, sdkerrors.NewAuthenticationError(
			"Authentication request failed: "+err.Error(), 0, err,
		)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, sdkerrors.NewAuthenticationError(
			"Authentication request failed: "+err.Error(), 0, err,
		)
	}

	var doc gjson.Result
	if gjson.ValidBytes(body) {
		doc = gjson.ParseBytes(body)
	}

	if resp.StatusCode != http.StatusOK {
		msg := doc.Get("error_description").String()
		if msg == "" {
			msg = doc.Get("error").String()
		}
		if msg == "" {
			msg = "Authentication failed"
		}
		authErr := sdkerrors.NewAuthenticationError(msg, resp.StatusCode, nil)
		authErr.Body = body
		return "", 0, authErr
	}

	token := doc.Get("access_token").String()
	if token == "" {
		return "", 0, sdkerrors.NewAuthenticationError("No access token in response", 0, nil)
	}

	expiresIn := DefaultExpiresIn
	if v := doc.Get("expires_in"); v.Exists() && v.Type != gjson.Null {
		expiresIn = time.Duration(v.Int()) * time.Second
	}

	return token, expiresIn, nil
}
