package supplier

import "encoding/json"

// Product is an item in Avasam's live catalogue, fetched per request and
// never persisted. Field names and JSON tags mirror Avasam's payload.
type Product struct {
	SKU                string             `json:"SKU"`
	Title              string             `json:"Title"`
	Description        *string            `json:"Description,omitempty"`
	Price              *float64           `json:"Price,omitempty"`
	PriceIncVat        *float64           `json:"PriceIncVat,omitempty"`
	RetailPrice        *float64           `json:"RetailPrice,omitempty"`
	VATPercentage      *float64           `json:"VATPercentage,omitempty"`
	Vat                *float64           `json:"Vat,omitempty"`
	Image              *string            `json:"Image,omitempty"`
	ProductImage       []string           `json:"ProductImage,omitempty"`
	Category           *string            `json:"Category,omitempty"`
	ProductWeight      *float64           `json:"ProductWeight,omitempty"`
	ProductWidth       *float64           `json:"ProductWidth,omitempty"`
	ProductDepth       *float64           `json:"ProductDepth,omitempty"`
	ProductHeight      *float64           `json:"ProductHeight,omitempty"`
	ExtendedProperties []ExtendedProperty `json:"ExtendedProperties,omitempty"`
	Variations         []Variant          `json:"Variations,omitempty"`
}

// ExtendedProperty is a free-form name/value pair on a supplier product
type ExtendedProperty struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// Variant is a SKU-level sub-item of a supplier product, e.g. a colour or
// style option, with its own price and images
type Variant struct {
	SKU        string                     `json:"SKU"`
	Price      *float64                   `json:"Price,omitempty"`
	Images     []string                   `json:"Images,omitempty"`
	MainImage  *string                    `json:"MainImage,omitempty"`
	Attributes map[string]json.RawMessage `json:"Attributes,omitempty"`
}

// ShippingOption is one normalized warehouse/service combination for a SKU.
// Avasam's warehouse-detail payload is heterogeneous; every field here is
// optional because any of them may be missing from the source. Raw retains
// the merged source object for diagnostics.
type ShippingOption struct {
	WarehouseID        *int64
	WarehouseName      *string
	ServiceID          *int64
	ServiceName        *string
	ShippingCost       *float64
	ShippingCostIncVat *float64
	Currency           *string
	DispatchDays       *int64
	DeliveryMinDays    *int64
	DeliveryMaxDays    *int64
	Raw                map[string]any
}
