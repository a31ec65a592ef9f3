package avasam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
	"github.com/Quiggy85/itstheseason/internal/infrastructure/config"
)

// maxResponseSize limits the response body size to prevent memory exhaustion
const maxResponseSize = 10 * 1024 * 1024 // 10MB max response

// Client implements supplier.Client against the Avasam API
type Client struct {
	cfg        config.SupplierConfig
	httpClient *http.Client
	tokenCache supplier.TokenCache
	logger     *zap.Logger
}

// NewClient creates a new Avasam client
func NewClient(cfg config.SupplierConfig, tokenCache supplier.TokenCache, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout(),
		},
		tokenCache: tokenCache,
		logger:     logger.Named("avasam"),
	}
}

// authTokenResponse is the payload of the request-token endpoint
type authTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// authenticate returns a usable auth key, reusing the cached token while it
// has comfortably more than the reuse margin left before expiry
func (c *Client) authenticate(ctx context.Context) (string, error) {
	if c.cfg.FixedToken != "" {
		return c.cfg.FixedToken, nil
	}

	now := time.Now()
	if cached, err := c.tokenCache.Get(ctx); err != nil {
		c.logger.Warn("Token cache read failed, re-authenticating", zap.Error(err))
	} else if cached.Usable(now) {
		return cached.AccessToken, nil
	}

	if c.cfg.ConsumerKey == "" || c.cfg.ConsumerSecret == "" {
		return "", supplier.ErrMissingCredentials
	}

	reqBody, err := json.Marshal(map[string]string{
		"consumer_key": c.cfg.ConsumerKey,
		"secret_key":   c.cfg.ConsumerSecret,
	})
	if err != nil {
		return "", fmt.Errorf("avasam: failed to marshal auth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.AuthURL+"/request-token", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("avasam: failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("avasam: auth request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("avasam: failed to read auth response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: HTTP %d", supplier.ErrAuthRejected, resp.StatusCode)
	}

	var tokenResp authTokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("avasam: failed to parse auth response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: response did not contain access_token", supplier.ErrAuthRejected)
	}

	expiresAt := now.Add(supplier.FallbackTokenTTL)
	if tokenResp.ExpiresAt != "" {
		if parsed, err := time.Parse(time.RFC3339, tokenResp.ExpiresAt); err == nil {
			expiresAt = parsed
		}
	}

	token := &supplier.Token{
		AccessToken: tokenResp.AccessToken,
		ExpiresAt:   expiresAt,
	}
	if err := c.tokenCache.Set(ctx, token); err != nil {
		// A cache write failure only costs an extra exchange next time
		c.logger.Warn("Token cache write failed", zap.Error(err))
	}

	return token.AccessToken, nil
}

// ListProductsBySKUs returns the supplier products matching the given SKUs.
// The supplier API has no server-side SKU filter, so a bounded page of the
// seller's inventory is fetched and filtered locally. A product matches when
// its own SKU or any variation SKU is in the requested set.
func (c *Client) ListProductsBySKUs(ctx context.Context, skus []string) ([]supplier.Product, error) {
	if len(skus) == 0 {
		return []supplier.Product{}, nil
	}

	authKey, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	limit := c.cfg.PageLimit
	if limit < len(skus) {
		limit = len(skus)
	}

	reqBody, err := json.Marshal(map[string]any{
		"Authkey": authKey,
		"Page":    0,
		"Limit":   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("avasam: failed to marshal product list request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/Products/GetSellerProductList", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("avasam: failed to create product list request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Product list request failed", zap.Error(err))
		return []supplier.Product{}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Warn("Failed to read product list response", zap.Error(err))
		return []supplier.Product{}, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Product list request returned non-success status",
			zap.Int("status", resp.StatusCode))
		return []supplier.Product{}, nil
	}

	var products []supplier.Product
	if err := json.Unmarshal(body, &products); err != nil {
		c.logger.Warn("Unexpected product list response shape", zap.Error(err))
		return []supplier.Product{}, nil
	}

	skuSet := make(map[string]struct{}, len(skus))
	for _, sku := range skus {
		skuSet[sku] = struct{}{}
	}

	matched := make([]supplier.Product, 0, len(skus))
	for _, p := range products {
		if productMatchesSKUs(&p, skuSet) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// GetShippingOptionsBySKU returns the normalized shipping options for one SKU.
// A 404 means the supplier has no shipping data for the SKU.
func (c *Client) GetShippingOptionsBySKU(ctx context.Context, sku string) ([]supplier.ShippingOption, error) {
	authKey, err := c.authenticate(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/Products/GetWareHouseDetails/%s", c.cfg.BaseURL, url.PathEscape(sku))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("avasam: failed to create warehouse detail request: %w", err)
	}
	req.Header.Set("Authkey", authKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Warehouse detail request failed",
			zap.String("sku", sku), zap.Error(err))
		return []supplier.ShippingOption{}, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		c.logger.Warn("Failed to read warehouse detail response",
			zap.String("sku", sku), zap.Error(err))
		return []supplier.ShippingOption{}, nil
	}

	if resp.StatusCode == http.StatusNotFound {
		// No shipping data available for this SKU
		return []supplier.ShippingOption{}, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Warehouse detail request returned non-success status",
			zap.String("sku", sku), zap.Int("status", resp.StatusCode))
		return []supplier.ShippingOption{}, nil
	}

	options := NormalizeShippingOptions(body)
	if options == nil {
		c.logger.Warn("Unrecognized warehouse detail response shape", zap.String("sku", sku))
		return []supplier.ShippingOption{}, nil
	}
	return options, nil
}

// productMatchesSKUs reports whether the product or any of its variations
// carries one of the requested SKUs
func productMatchesSKUs(p *supplier.Product, skuSet map[string]struct{}) bool {
	if _, ok := skuSet[p.SKU]; ok {
		return true
	}
	for _, v := range p.Variations {
		if _, ok := skuSet[v.SKU]; ok {
			return true
		}
	}
	return false
}

// Ensure Client implements supplier.Client
var _ supplier.Client = (*Client)(nil)
