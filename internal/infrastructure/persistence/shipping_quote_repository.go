package persistence

import (
	"context"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShippingQuoteRepository implements ShippingQuoteRepository using GORM
type GormShippingQuoteRepository struct {
	db *gorm.DB
}

// NewGormShippingQuoteRepository creates a new GormShippingQuoteRepository
func NewGormShippingQuoteRepository(db *gorm.DB) *GormShippingQuoteRepository {
	return &GormShippingQuoteRepository{db: db}
}

// FindBySKUs returns all stored quotes for the given SKUs
func (r *GormShippingQuoteRepository) FindBySKUs(ctx context.Context, skus []string) ([]catalog.ShippingQuote, error) {
	if len(skus) == 0 {
		return []catalog.ShippingQuote{}, nil
	}

	var quotes []catalog.ShippingQuote
	if err := r.db.WithContext(ctx).
		Where("avasam_sku IN ?", skus).
		Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// UpsertBatch writes quotes keyed on avasam_sku. An existing row for the same
// SKU is overwritten column by column, so a refresh replaces the previous
// snapshot entirely. Last write wins.
func (r *GormShippingQuoteRepository) UpsertBatch(ctx context.Context, quotes []catalog.ShippingQuote) error {
	if len(quotes) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "avasam_sku"}},
			UpdateAll: true,
		}).
		Create(&quotes).Error
}

// Ensure GormShippingQuoteRepository implements ShippingQuoteRepository
var _ catalog.ShippingQuoteRepository = (*GormShippingQuoteRepository)(nil)
