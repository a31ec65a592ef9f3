package catalog

import (
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
	"github.com/google/uuid"
)

// Product is the locally curated record for a dropshipped item. The Avasam
// SKU joins it to the supplier's live catalogue; name, description and image
// act as overrides on top of whatever the supplier returns. RetailPrice is
// the fallback used when the supplier has no price for the SKU.
// Products are owned by an external catalogue-management process and are
// read-only here.
type Product struct {
	shared.BaseEntity
	AvasamSKU   string   `gorm:"column:avasam_sku;type:varchar(100);not null;index"`
	Name        string   `gorm:"type:varchar(200);not null"`
	Description *string  `gorm:"type:text"`
	ImageURL    *string  `gorm:"type:text"`
	RetailPrice *float64 `gorm:"type:decimal(18,4)"`
	Currency    *string  `gorm:"type:varchar(3)"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductSeason is the many-to-many join between products and seasons
type ProductSeason struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SeasonID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName returns the table name for GORM
func (ProductSeason) TableName() string {
	return "product_seasons"
}
