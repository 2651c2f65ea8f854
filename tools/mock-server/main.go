// Package main implements a mock Octopia seller API for local development.
// It serves canned seller and order data from a JSON fixture and issues
// tokens from a fake client-credentials endpoint, so the SDK and CLI can be
// exercised without real credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

const (
	tokenPath       = "/auth/realms/maas/protocol/openid-connect/token" //nolint:gosec // not a credential
	ordersPath      = "/seller/v2/orders"
	defaultPageSize = 5
	maxPageSize     = 100
	tokenLifetime   = 300
)

type fixture struct {
	Seller json.RawMessage   `json:"seller"`
	Orders []json.RawMessage `json:"orders"`
}

type orderSummary struct {
	Status string `json:"status"`
}

type ordersPage struct {
	Items          []json.RawMessage `json:"items"`
	TotalItemCount int               `json:"total_item_count"`
	ItemsPerPage   int               `json:"itemsPerPage"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/fixture.json", "path to seller and order fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "orders", len(fx.Orders))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock Octopia server", "addr", addr,
		"base_url", fmt.Sprintf("http://localhost:%d/seller/v2", *port),
		"base_url_token", fmt.Sprintf("http://localhost:%d", *port))

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fx)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fx *fixture) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+tokenPath, tokenHandler(logger))
	mux.Handle("GET /seller/v2/sellers", requireBearer(sellerHandler(fx)))
	mux.Handle("GET "+ordersPath, requireBearer(ordersHandler(logger, fx)))
	return mux
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery,
			"seller_id", r.Header.Get("SellerId"))
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	var issued atomic.Int64

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_request",
				"error_description": err.Error(),
			})
			return
		}

		if r.PostForm.Get("grant_type") != "client_credentials" {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "only client_credentials is supported",
			})
			return
		}

		// Any non-empty pair is accepted.
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing client credentials")
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":             "invalid_client",
				"error_description": "Invalid client or Invalid client credentials",
			})
			return
		}

		n := issued.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":       fmt.Sprintf("mock-token-%s-%d", r.PostForm.Get("client_id"), n),
			"expires_in":         tokenLifetime,
			"refresh_expires_in": 0,
			"token_type":         "Bearer",
			"scope":              "profile email",
		})
		logger.Info("issued mock token", "client_id", r.PostForm.Get("client_id"), "count", n)
	}
}

func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error":   "unauthorized",
				"message": "missing or invalid bearer token",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sellerHandler(fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, fx.Seller)
	}
}

func ordersHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	statuses := make([]string, len(fx.Orders))
	for i, raw := range fx.Orders {
		var s orderSummary
		//nolint:errcheck,gosec // fixture data is trusted; status extraction is best-effort
		json.Unmarshal(raw, &s)
		statuses[i] = s.Status
	}

	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		wanted := q["status"]

		pageSize := defaultPageSize
		if v, err := strconv.Atoi(q.Get("pageSize")); err == nil && v > 0 {
			pageSize = min(v, maxPageSize)
		}
		offset := 0
		if cursor := q.Get("cursor"); cursor != "" {
			v, err := strconv.Atoi(cursor)
			if err != nil || v < 0 {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error":   "bad_request",
					"message": "invalid cursor",
				})
				return
			}
			offset = v
		}

		matched := []json.RawMessage{}
		for i, raw := range fx.Orders {
			if matchesStatus(statuses[i], wanted) {
				matched = append(matched, raw)
			}
		}
		total := len(matched)

		page := []json.RawMessage{}
		if offset < total {
			page = matched[offset:min(offset+pageSize, total)]
		}

		if offset+pageSize < total {
			next := url.Values{}
			next.Set("cursor", strconv.Itoa(offset+pageSize))
			next.Set("pageSize", strconv.Itoa(pageSize))
			for _, s := range wanted {
				next.Add("status", s)
			}
			w.Header().Set("Link", fmt.Sprintf(`<%s%s?%s>; rel="next"`, baseURL(r), ordersPath, next.Encode()))
		}

		writeJSON(w, http.StatusOK, ordersPage{Items: page, TotalItemCount: total, ItemsPerPage: pageSize})
		logger.Info("orders", "status", wanted, "matched", total, "returned", len(page), "offset", offset)
	}
}

func matchesStatus(status string, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, s := range wanted {
		if strings.EqualFold(s, status) {
			return true
		}
	}
	return false
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
