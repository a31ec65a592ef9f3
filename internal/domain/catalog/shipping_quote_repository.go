package catalog

import "context"

// ShippingQuoteRepository defines the interface for shipping quote persistence
type ShippingQuoteRepository interface {
	// FindBySKUs returns all stored quotes for the given SKUs
	FindBySKUs(ctx context.Context, skus []string) ([]ShippingQuote, error)

	// UpsertBatch writes quotes keyed on avasam_sku: existing rows are
	// overwritten in place, new rows inserted. Last write wins.
	UpsertBatch(ctx context.Context, quotes []ShippingQuote) error
}
