package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/cdiscount-sdk/pkg/config"
	"github.com/donaldgifford/cdiscount-sdk/pkg/tokencache"
)

const (
	testClientID     = "test-client"
	testClientSecret = "test-secret"
	apiPrefix        = "/seller/v2"
)

func tokenJSON(token string, expiresIn int) string {
	b, _ := json.Marshal(map[string]any{
		"access_token": token,
		"expires_in":   expiresIn,
		"token_type":   "Bearer",
	})
	return string(b)
}

// newTestServer routes the token path to tokenHandler and everything under
// the API prefix to apiHandler. Unexpected paths fail the test.
func newTestServer(t *testing.T, tokenHandler, apiHandler http.HandlerFunc) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == config.TokenPath:
			tokenHandler(w, r)
		case strings.HasPrefix(r.URL.Path, apiPrefix+"/"):
			apiHandler(w, r)
		default:
			t.Errorf("unexpected request path %q", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type testClient struct {
	*Client
	cfg   *config.Config
	store *tokencache.FileCache
}

func newTestClient(t *testing.T, tokenURL, baseURL string) *testClient {
	t.Helper()

	cfg, err := config.New(config.Options{
		ClientID:       testClientID,
		ClientSecret:   testClientSecret,
		BaseURLToken:   tokenURL,
		BaseURL:        baseURL,
		SellerID:       "seller-1",
		Timeout:        5,
		TokenCachePath: filepath.Join(t.TempDir(), "tokens.json"),
	})
	require.NoError(t, err)

	store := tokencache.NewFileCache(cfg.TokenCachePath())
	return &testClient{
		Client: New(cfg, store),
		cfg:    cfg,
		store:  store,
	}
}

func newServerClient(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()
	return newTestClient(t, srv.URL, srv.URL+apiPrefix)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func unusedHandler(t *testing.T, what string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, _ *http.Request) {
		t.Errorf("%s should not be called", what)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// closedServerURL returns the URL of a server that is no longer listening.
func closedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}
