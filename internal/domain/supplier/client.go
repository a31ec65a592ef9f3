package supplier

import (
	"context"
	"errors"
)

// Client wraps the supplier's HTTP API. Implementations authenticate on
// demand; callers never see tokens.
type Client interface {
	// ListProductsBySKUs returns the supplier products matching the given
	// SKUs. An empty SKU list returns an empty slice without a network call.
	// Upstream HTTP failures degrade to an empty slice, not an error, so a
	// misbehaving supplier cannot take the whole page down.
	ListProductsBySKUs(ctx context.Context, skus []string) ([]Product, error)

	// GetShippingOptionsBySKU returns the normalized shipping options for one
	// SKU. A 404 means the supplier has no shipping data for the SKU and
	// yields an empty slice; other upstream failures also degrade to empty.
	GetShippingOptionsBySKU(ctx context.Context, sku string) ([]ShippingOption, error)
}

// Authentication errors. Missing credentials are a configuration problem and
// the only class of supplier failure allowed to be fatal to a call.
var (
	ErrMissingCredentials = errors.New("supplier consumer credentials are not configured")
	ErrAuthRejected       = errors.New("supplier rejected the credential exchange")
)
