package storefront

import (
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// SeasonResponse is the season as exposed to storefront consumers
type SeasonResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	IsActive     bool      `json:"is_active"`
	PrimaryColor *string   `json:"primary_color"`
	AccentColor  *string   `json:"accent_color"`
}

// ShippingInfo is the cached shipping summary attached to an enriched
// product. The raw supplier payload stays server-side.
type ShippingInfo struct {
	ServiceID          *int64     `json:"service_id"`
	ServiceName        *string    `json:"service_name"`
	WarehouseID        *int64     `json:"warehouse_id"`
	WarehouseName      *string    `json:"warehouse_name"`
	ShippingCost       *float64   `json:"shipping_cost"`
	ShippingCostIncVat *float64   `json:"shipping_cost_inc_vat"`
	Currency           *string    `json:"currency"`
	DispatchDays       *int64     `json:"dispatch_days"`
	DeliveryMinDays    *int64     `json:"delivery_min_days"`
	DeliveryMaxDays    *int64     `json:"delivery_max_days"`
	LastSyncedAt       *time.Time `json:"last_synced_at"`
}

// SeasonalProduct is a local product merged with live supplier data and the
// cached shipping quote. Recomputed on every request, never persisted.
type SeasonalProduct struct {
	ID              string            `json:"id"`
	AvasamSKU       string            `json:"avasam_sku"`
	Name            string            `json:"name"`
	Description     *string           `json:"description"`
	ImageURL        *string           `json:"image_url"`
	RetailPrice     *float64          `json:"retail_price"`
	Currency        *string           `json:"currency"`
	PriceWithMarkup *float64          `json:"price_with_markup"`
	Avasam          *supplier.Product `json:"avasam"`
	Shipping        *ShippingInfo     `json:"shipping"`
}

// SeasonProducts is the storefront listing payload
type SeasonProducts struct {
	Season   *SeasonResponse   `json:"season"`
	Products []SeasonalProduct `json:"products"`
}

// ProductDetail is a single enriched product with its display price resolved
// across variants
type ProductDetail struct {
	SeasonalProduct
	DisplayPrice *DisplayPrice `json:"display_price"`
}

// NewSeasonResponse maps a season entity to its response shape
func NewSeasonResponse(s *catalog.Season) *SeasonResponse {
	if s == nil {
		return nil
	}
	return &SeasonResponse{
		ID:           s.ID.String(),
		Slug:         s.Slug,
		Name:         s.Name,
		StartDate:    s.StartDate,
		EndDate:      s.EndDate,
		IsActive:     s.IsActive,
		PrimaryColor: s.PrimaryColor,
		AccentColor:  s.AccentColor,
	}
}

// newShippingInfo maps a stored quote to its response shape
func newShippingInfo(q *catalog.ShippingQuote) *ShippingInfo {
	if q == nil {
		return nil
	}
	return &ShippingInfo{
		ServiceID:          q.ServiceID,
		ServiceName:        q.ServiceName,
		WarehouseID:        q.WarehouseID,
		WarehouseName:      q.WarehouseName,
		ShippingCost:       q.ShippingCost,
		ShippingCostIncVat: q.ShippingCostIncVat,
		Currency:           q.Currency,
		DispatchDays:       q.DispatchDays,
		DeliveryMinDays:    q.DeliveryMinDays,
		DeliveryMaxDays:    q.DeliveryMaxDays,
		LastSyncedAt:       q.LastSyncedAt,
	}
}
