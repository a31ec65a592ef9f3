package avasam

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
	"github.com/Quiggy85/itstheseason/internal/infrastructure/cache"
	"github.com/Quiggy85/itstheseason/internal/infrastructure/config"
)

func newTestClient(t *testing.T, baseURL, authURL string) *Client {
	t.Helper()
	cfg := config.SupplierConfig{
		BaseURL:        baseURL,
		AuthURL:        authURL,
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
		TimeoutSeconds: 5,
		PageLimit:      500,
	}
	return NewClient(cfg, cache.NewMemoryTokenCache(), zap.NewNop())
}

func authHandler(t *testing.T, authCalls *atomic.Int64) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		authCalls.Add(1)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ck", body["consumer_key"])
		assert.Equal(t, "cs", body["secret_key"])

		json.NewEncoder(w).Encode(map[string]string{
			"access_token": "tok-1",
			"expires_at":   time.Now().Add(time.Hour).Format(time.RFC3339),
		})
	}
}

func TestListProductsBySKUsFiltersLocally(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	mux.HandleFunc("/api/Products/GetSellerProductList", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tok-1", body["Authkey"])
		assert.Equal(t, float64(0), body["Page"])

		json.NewEncoder(w).Encode([]map[string]any{
			{"SKU": "AVA-PUMPKIN", "Title": "Pumpkin Lantern", "Price": 10.0},
			{"SKU": "AVA-OTHER", "Title": "Unrelated"},
			{"SKU": "AVA-PARENT", "Title": "Parent", "Variations": []map[string]any{{"SKU": "AVA-CHILD"}}},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	products, err := client.ListProductsBySKUs(context.Background(), []string{"AVA-PUMPKIN", "AVA-CHILD"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "AVA-PUMPKIN", products[0].SKU)
	assert.Equal(t, "AVA-PARENT", products[1].SKU) // matched through a variation SKU
}

func TestListProductsBySKUsEmptyInput(t *testing.T) {
	client := newTestClient(t, "http://unreachable.invalid", "http://unreachable.invalid")

	products, err := client.ListProductsBySKUs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsBySKUsUpstreamFailureDegrades(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	mux.HandleFunc("/api/Products/GetSellerProductList", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	products, err := client.ListProductsBySKUs(context.Background(), []string{"AVA-PUMPKIN"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListProductsBySKUsNonArrayResponseDegrades(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	mux.HandleFunc("/api/Products/GetSellerProductList", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "unexpected"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	products, err := client.ListProductsBySKUs(context.Background(), []string{"AVA-PUMPKIN"})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAuthenticateReusesCachedToken(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	mux.HandleFunc("/api/Products/GetSellerProductList", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	_, err := client.ListProductsBySKUs(context.Background(), []string{"A"})
	require.NoError(t, err)
	_, err = client.ListProductsBySKUs(context.Background(), []string{"A"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), authCalls.Load())
}

func TestAuthenticateMissingCredentials(t *testing.T) {
	cfg := config.SupplierConfig{
		BaseURL:        "http://unreachable.invalid",
		AuthURL:        "http://unreachable.invalid",
		TimeoutSeconds: 5,
		PageLimit:      500,
	}
	client := NewClient(cfg, cache.NewMemoryTokenCache(), zap.NewNop())

	_, err := client.ListProductsBySKUs(context.Background(), []string{"A"})
	assert.ErrorIs(t, err, supplier.ErrMissingCredentials)
}

func TestAuthenticateRejectedCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	_, err := client.ListProductsBySKUs(context.Background(), []string{"A"})
	assert.ErrorIs(t, err, supplier.ErrAuthRejected)
}

func TestFixedTokenBypassesAuth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("auth endpoint must not be called when a fixed token is configured")
	})
	mux.HandleFunc("/api/Products/GetSellerProductList", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "fixed-tok", body["Authkey"])
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := config.SupplierConfig{
		BaseURL:        srv.URL + "/api",
		AuthURL:        srv.URL + "/auth",
		FixedToken:     "fixed-tok",
		TimeoutSeconds: 5,
		PageLimit:      500,
	}
	client := NewClient(cfg, cache.NewMemoryTokenCache(), zap.NewNop())

	_, err := client.ListProductsBySKUs(context.Background(), []string{"A"})
	require.NoError(t, err)
}

func TestGetShippingOptionsBySKU(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	mux.HandleFunc("/api/Products/GetWareHouseDetails/AVA-PUMPKIN", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tok-1", r.Header.Get("Authkey"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"ServiceId": 1, "ServiceName": "Economy", "ShippingCost": 2.49, "Currency": "GBP"},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	options, err := client.GetShippingOptionsBySKU(context.Background(), "AVA-PUMPKIN")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Economy", *options[0].ServiceName)
}

func TestGetShippingOptionsBySKUNotFound(t *testing.T) {
	var authCalls atomic.Int64

	mux := http.NewServeMux()
	mux.HandleFunc("/auth/request-token", authHandler(t, &authCalls))
	srv := httptest.NewServer(mux) // no warehouse route registered, 404
	defer srv.Close()

	client := newTestClient(t, srv.URL+"/api", srv.URL+"/auth")

	options, err := client.GetShippingOptionsBySKU(context.Background(), "AVA-MISSING")
	require.NoError(t, err)
	assert.Empty(t, options)
}
