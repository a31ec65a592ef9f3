package catalog

import (
	"time"

	"github.com/google/uuid"
)

// MinShippingRefreshWindow is the floor for the quote refresh window.
// Anything shorter would hammer the supplier's warehouse endpoint.
const MinShippingRefreshWindow = time.Hour

// DefaultShippingRefreshWindow is how long a cached quote stays fresh
// unless configured otherwise.
const DefaultShippingRefreshWindow = 6 * time.Hour

// ShippingQuote is the cached best shipping option for a single SKU.
// Exactly one row exists per SKU (upsert keyed on avasam_sku); rows are
// overwritten in place on refresh and never deleted by this service.
type ShippingQuote struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID          *uuid.UUID `gorm:"type:uuid"`
	AvasamSKU          string     `gorm:"column:avasam_sku;type:varchar(100);not null;uniqueIndex"`
	ServiceID          *int64     `gorm:"column:service_id"`
	ServiceName        *string    `gorm:"type:varchar(200)"`
	WarehouseID        *int64     `gorm:"column:warehouse_id"`
	WarehouseName      *string    `gorm:"type:varchar(200)"`
	ShippingCost       *float64   `gorm:"type:decimal(18,4)"`
	ShippingCostIncVat *float64   `gorm:"column:shipping_cost_inc_vat;type:decimal(18,4)"`
	Currency           *string    `gorm:"type:varchar(3)"`
	DispatchDays       *int64     `gorm:"column:dispatch_days"`
	DeliveryMinDays    *int64     `gorm:"column:delivery_min_days"`
	DeliveryMaxDays    *int64     `gorm:"column:delivery_max_days"`
	Raw                *string    `gorm:"type:jsonb"`
	LastSyncedAt       *time.Time `gorm:"column:last_synced_at"`
}

// TableName returns the table name for GORM
func (ShippingQuote) TableName() string {
	return "product_shipping"
}

// IsStale reports whether the quote needs a refresh from the supplier.
// A quote with no sync timestamp is always stale.
func (q *ShippingQuote) IsStale(window time.Duration, now time.Time) bool {
	if q == nil {
		return true
	}
	if q.LastSyncedAt == nil || q.LastSyncedAt.IsZero() {
		return true
	}
	return now.Sub(*q.LastSyncedAt) > window
}
