package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySeason returns all products linked to a season via the
	// product_seasons join, in the join query's order
	FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]Product, error)
}
