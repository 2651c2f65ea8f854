package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	fx, err := loadFixture(filepath.Join("testdata", "fixture.json"))
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	return fx
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Orders) == 0 {
		t.Fatal("expected orders in fixture")
	}
	if len(fx.Seller) == 0 {
		t.Fatal("expected seller in fixture")
	}
}

func tokenRequest(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, tokenPath, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestTokenHandler_Success(t *testing.T) {
	handler := tokenHandler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"app"},
		"client_secret": {"secret"},
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["access_token"] != "mock-token-app-1" {
		t.Errorf("access_token=%v, want mock-token-app-1", resp["access_token"])
	}
	if resp["expires_in"] != float64(tokenLifetime) {
		t.Errorf("expires_in=%v, want %d", resp["expires_in"], tokenLifetime)
	}
}

func TestTokenHandler_CountsIssuedTokens(t *testing.T) {
	handler := tokenHandler(testLogger())
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {"app"},
		"client_secret": {"secret"},
	}

	handler(httptest.NewRecorder(), tokenRequest(form))
	w := httptest.NewRecorder()
	handler(w, tokenRequest(form))

	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["access_token"] != "mock-token-app-2" {
		t.Errorf("access_token=%v, want mock-token-app-2", resp["access_token"])
	}
}

func TestTokenHandler_MissingCredentials(t *testing.T) {
	handler := tokenHandler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{"grant_type": {"client_credentials"}, "client_id": {"app"}}))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusUnauthorized)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["error"] != "invalid_client" {
		t.Errorf("error=%s, want invalid_client", resp["error"])
	}
}

func TestTokenHandler_UnsupportedGrant(t *testing.T) {
	handler := tokenHandler(testLogger())
	w := httptest.NewRecorder()

	handler(w, tokenRequest(url.Values{"grant_type": {"password"}, "client_id": {"app"}, "client_secret": {"x"}}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestMux_RequiresBearer(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t))

	for _, path := range []string{"/seller/v2/sellers", ordersPath} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: status=%d, want %d", path, w.Code, http.StatusUnauthorized)
		}
	}
}

func authedGet(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	req.Header.Set("Authorization", "Bearer mock-token")
	return req
}

func TestSellerHandler(t *testing.T) {
	mux := newMux(testLogger(), loadTestFixture(t))
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, authedGet("/seller/v2/sellers"))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var resp map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["id"] != "123456" {
		t.Errorf("id=%v, want 123456", resp["id"])
	}
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) ordersPage {
	t.Helper()
	var resp ordersPage
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp
}

func TestOrdersHandler_FirstPage(t *testing.T) {
	fx := loadTestFixture(t)
	handler := ordersHandler(testLogger(), fx)
	w := httptest.NewRecorder()

	handler(w, authedGet(ordersPath+"?pageSize=4"))

	resp := decodePage(t, w)
	if resp.TotalItemCount != len(fx.Orders) {
		t.Errorf("total=%d, want %d", resp.TotalItemCount, len(fx.Orders))
	}
	if len(resp.Items) != 4 {
		t.Errorf("items=%d, want 4", len(resp.Items))
	}
	link := w.Header().Get("Link")
	want := `<http://example.com/seller/v2/orders?cursor=4&pageSize=4>; rel="next"`
	if link != want {
		t.Errorf("Link=%q, want %q", link, want)
	}
}

func TestOrdersHandler_LastPage(t *testing.T) {
	fx := loadTestFixture(t)
	handler := ordersHandler(testLogger(), fx)
	w := httptest.NewRecorder()

	handler(w, authedGet(ordersPath+"?pageSize=5&cursor=10"))

	resp := decodePage(t, w)
	if len(resp.Items) != len(fx.Orders)-10 {
		t.Errorf("items=%d, want %d", len(resp.Items), len(fx.Orders)-10)
	}
	if link := w.Header().Get("Link"); link != "" {
		t.Errorf("expected no Link header on last page, got %q", link)
	}
}

func TestOrdersHandler_StatusFilter(t *testing.T) {
	handler := ordersHandler(testLogger(), loadTestFixture(t))
	w := httptest.NewRecorder()

	handler(w, authedGet(ordersPath+"?status=shipped&pageSize=2"))

	resp := decodePage(t, w)
	if resp.TotalItemCount != 3 {
		t.Errorf("total=%d, want 3", resp.TotalItemCount)
	}
	if !strings.Contains(w.Header().Get("Link"), "status=shipped") {
		t.Errorf("expected next link to carry the status filter, got %q", w.Header().Get("Link"))
	}
}

func TestOrdersHandler_NoResults(t *testing.T) {
	handler := ordersHandler(testLogger(), loadTestFixture(t))
	w := httptest.NewRecorder()

	handler(w, authedGet(ordersPath+"?status=Refunded"))

	resp := decodePage(t, w)
	if resp.TotalItemCount != 0 {
		t.Errorf("total=%d, want 0", resp.TotalItemCount)
	}
	if resp.Items == nil {
		t.Error("expected empty array, got nil")
	}
}

func TestOrdersHandler_InvalidCursor(t *testing.T) {
	handler := ordersHandler(testLogger(), loadTestFixture(t))
	w := httptest.NewRecorder()

	handler(w, authedGet(ordersPath+"?cursor=abc"))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
