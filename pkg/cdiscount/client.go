// Package cdiscount is a client for the Octopia / Cdiscount marketplace
// seller API. A Client owns one configuration, one persistent token store
// and one transport, and exposes the API through eight operation groups.
package cdiscount

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donaldgifford/cdiscount-sdk/pkg/config"
	"github.com/donaldgifford/cdiscount-sdk/pkg/logger"
	"github.com/donaldgifford/cdiscount-sdk/pkg/sdkerrors"
	"github.com/donaldgifford/cdiscount-sdk/pkg/tokencache"
	"github.com/donaldgifford/cdiscount-sdk/pkg/transport"
)

// Client is the entry point to the seller API.
type Client struct {
	cfg       *config.Config
	store     tokencache.Store
	transport *transport.Client
	logger    *slog.Logger

	seller        *SellerAPI
	products      *ProductsAPI
	offers        *OffersAPI
	orders        *OrdersAPI
	orderInvoices *OrderInvoicesAPI
	discussions   *DiscussionsAPI
	fulfillment   *FulfillmentAPI
	finance       *FinanceAPI
}

type clientOptions struct {
	logger     *slog.Logger
	httpClient *http.Client
	store      tokencache.Store
}

// Option configures a Client.
type Option func(*clientOptions)

// WithLogger sets the logger shared by the transport and the token store.
// Without it, a logger is built from the log_level and log_format options
// when debug is enabled, and records are discarded otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = l
	}
}

// WithHTTPClient replaces the HTTP client used for both the token exchange
// and API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = hc
	}
}

// WithTokenStore replaces the persistent token tier selected by the
// configuration.
func WithTokenStore(s tokencache.Store) Option {
	return func(o *clientOptions) {
		o.store = s
	}
}

// New builds a Client from a validated configuration. The persistent token
// tier is a file cache unless the configuration selects redis, in which
// case the Redis server is contacted once to verify the connection.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Client, error) {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = defaultLogger(cfg)
	}

	if o.store == nil {
		store, err := newStore(ctx, cfg, o.logger)
		if err != nil {
			return nil, err
		}
		o.store = store
	}

	topts := []transport.Option{transport.WithLogger(o.logger)}
	if o.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(o.httpClient))
	}
	t := transport.New(cfg, o.store, topts...)

	return &Client{
		cfg:           cfg,
		store:         o.store,
		transport:     t,
		logger:        o.logger,
		seller:        NewSellerAPI(t),
		products:      NewProductsAPI(t),
		offers:        NewOffersAPI(t),
		orders:        NewOrdersAPI(t),
		orderInvoices: NewOrderInvoicesAPI(t),
		discussions:   NewDiscussionsAPI(t),
		fulfillment:   NewFulfillmentAPI(t),
		finance:       NewFinanceAPI(t),
	}, nil
}

// NewFromMap builds a Client from snake_case option keys.
func NewFromMap(ctx context.Context, m map[string]any, opts ...Option) (*Client, error) {
	cfg, err := config.FromMap(m)
	if err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// NewFromConfigFile builds a Client from a JSON or YAML configuration file.
// A non-empty cachePath overrides the file's token_cache_path.
func NewFromConfigFile(ctx context.Context, path, cachePath string, opts ...Option) (*Client, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if cachePath != "" {
		o := cfg.Options()
		o.TokenCachePath = cachePath
		if cfg, err = config.New(o); err != nil {
			return nil, err
		}
	}
	return New(ctx, cfg, opts...)
}

func defaultLogger(cfg *config.Config) *slog.Logger {
	if !cfg.Debug() {
		return logger.Discard()
	}
	o := cfg.Options()
	return logger.New(o.LogLevel, o.LogFormat)
}

func newStore(ctx context.Context, cfg *config.Config, l *slog.Logger) (tokencache.Store, error) {
	o := cfg.Options()
	switch o.TokenCacheBackend {
	case config.CacheBackendRedis:
		store, err := tokencache.NewRedisCacheFromURL(
			ctx,
			o.RedisURL,
			o.RedisKeyPrefix,
			tokencache.WithRedisLogger(l),
		)
		if err != nil {
			return nil, sdkerrors.NewConfigurationError(
				fmt.Sprintf("connecting to token cache at %s", o.RedisURL), err,
			)
		}
		return store, nil
	default:
		return tokencache.NewFileCache(o.TokenCachePath, tokencache.WithLogger(l)), nil
	}
}

// Seller returns the seller profile operations.
func (c *Client) Seller() *SellerAPI { return c.seller }
// Products returns the catalog operations.
func (c *Client) Products() *ProductsAPI { return c.products }
// Offers returns the offer and offer package operations.
func (c *Client) Offers() *OffersAPI { return c.offers }
// Orders returns the order, cancellation and commercial gesture operations.
func (c *Client) Orders() *OrdersAPI { return c.orders }
// OrderInvoices returns the order invoice upload operations.
func (c *Client) OrderInvoices() *OrderInvoicesAPI { return c.orderInvoices }
// Discussions returns the customer discussion operations.
func (c *Client) Discussions() *DiscussionsAPI { return c.discussions }
// Fulfillment returns the fulfillment operations.
func (c *Client) Fulfillment() *FulfillmentAPI { return c.fulfillment }
// Finance returns the invoice, payment and report operations.
func (c *Client) Finance() *FinanceAPI { return c.finance }

// Transport exposes the underlying HTTP pipeline for endpoints without a
// dedicated operation.
func (c *Client) Transport() *transport.Client { return c.transport }

// Config returns the client configuration.
func (c *Client) Config() *config.Config { return c.cfg }

// TokenStore returns the persistent token tier.
func (c *Client) TokenStore() tokencache.Store { return c.store }

// Paginator returns a Paginator that fetches pages through this client.
func (c *Client) Paginator(opts ...PaginatorOption) *Paginator {
	opts = append([]PaginatorOption{WithPaginatorLogger(c.logger)}, opts...)
	return NewPaginator(c.transport, opts...)
}

// SetSellerID changes the SellerId header sent on subsequent calls.
func (c *Client) SetSellerID(id string) {
	c.transport.SetSellerID(id)
}

// Authenticate obtains a token ahead of the first call. forceRefresh skips
// both cache tiers.
func (c *Client) Authenticate(ctx context.Context, forceRefresh bool) (string, error) {
	return c.transport.Authenticate(ctx, forceRefresh)
}

// RefreshToken discards cached tokens and exchanges credentials again.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	return c.transport.RefreshToken(ctx)
}

// ClearToken drops this client's token from both tiers.
func (c *Client) ClearToken(ctx context.Context) error {
	return c.transport.ClearAllTokens(ctx)
}

// IsAuthenticated reports whether either token tier holds a valid token.
func (c *Client) IsAuthenticated(ctx context.Context) bool {
	return c.transport.IsAuthenticated(ctx)
}

// TokenInfo reports the state of both token tiers.
func (c *Client) TokenInfo(ctx context.Context) transport.TokenInfo {
	return c.transport.TokenInfo(ctx)
}

// Close releases the token store's connection when it holds one.
func (c *Client) Close() error {
	if closer, ok := c.store.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
