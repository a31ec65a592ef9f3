package storefront

import (
	"github.com/shopspring/decimal"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// DefaultMarkupPercent is applied when no markup is configured
const DefaultMarkupPercent = 20.0

// defaultVATPercent is assumed for variant pricing when the supplier product
// states no VAT rate
const defaultVATPercent = 20.0

// DisplayPrice is either a single price or a min-max range across variants
type DisplayPrice struct {
	Kind  string   `json:"kind"` // single, range
	Value *float64 `json:"value,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// PriceWithMarkup derives the marked-up sell price for a product. The base
// price prefers the supplier's VAT-inclusive price, then the net price
// grossed up by the stated VAT rate, then the bare net price, then the local
// retail price. A missing base price yields nil, never zero.
func PriceWithMarkup(avasam *supplier.Product, retailPrice *float64, markupPercent float64) *float64 {
	var base *float64

	if avasam != nil {
		vatPct := avasam.VATPercentage
		if vatPct == nil {
			vatPct = avasam.Vat
		}

		switch {
		case avasam.PriceIncVat != nil:
			base = avasam.PriceIncVat
		case vatPct != nil && avasam.Price != nil:
			grossed := decimal.NewFromFloat(*avasam.Price).
				Mul(vatMultiplier(*vatPct)).
				InexactFloat64()
			base = &grossed
		case avasam.Price != nil:
			base = avasam.Price
		}
	}

	if base == nil {
		base = retailPrice
	}
	if base == nil {
		return nil
	}

	price := decimal.NewFromFloat(*base).
		Mul(markupMultiplier(markupPercent)).
		Round(2).
		InexactFloat64()
	return &price
}

// VariantPriceWithMarkup derives the marked-up sell price for one variant.
// The variant's own net price wins over the parent's; VAT falls back to the
// parent's stated rate, then to the standard UK rate.
func VariantPriceWithMarkup(parent *supplier.Product, variant *supplier.Variant, markupPercent float64) *float64 {
	if parent == nil || variant == nil {
		return nil
	}

	netPrice := variant.Price
	if netPrice == nil {
		netPrice = parent.Price
	}
	if netPrice == nil {
		return nil
	}

	vatPct := defaultVATPercent
	if parent.VATPercentage != nil {
		vatPct = *parent.VATPercentage
	} else if parent.Vat != nil {
		vatPct = *parent.Vat
	}

	price := decimal.NewFromFloat(*netPrice).
		Mul(vatMultiplier(vatPct)).
		Mul(markupMultiplier(markupPercent)).
		Round(2).
		InexactFloat64()
	return &price
}

// ComputeDisplayPrice resolves the price shown when no single variant is
// selected: one value when all variants price identically at cent precision,
// a min-max range otherwise, the product-level marked-up price when there are
// no priced variants, and nil when nothing prices at all.
func ComputeDisplayPrice(avasam *supplier.Product, priceWithMarkup *float64, markupPercent float64) *DisplayPrice {
	var variantPrices []float64
	if avasam != nil {
		for i := range avasam.Variations {
			if p := VariantPriceWithMarkup(avasam, &avasam.Variations[i], markupPercent); p != nil {
				variantPrices = append(variantPrices, *p)
			}
		}
	}

	if len(variantPrices) > 0 {
		min, max := variantPrices[0], variantPrices[0]
		for _, p := range variantPrices[1:] {
			if p < min {
				min = p
			}
			if p > max {
				max = p
			}
		}
		if cents(min) == cents(max) {
			return &DisplayPrice{Kind: "single", Value: &min}
		}
		return &DisplayPrice{Kind: "range", Min: &min, Max: &max}
	}

	if priceWithMarkup != nil {
		return &DisplayPrice{Kind: "single", Value: priceWithMarkup}
	}
	return nil
}

func cents(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func vatMultiplier(vatPercent float64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.NewFromFloat(vatPercent).Div(decimal.NewFromInt(100)))
}

func markupMultiplier(markupPercent float64) decimal.Decimal {
	return decimal.NewFromInt(1).Add(decimal.NewFromFloat(markupPercent).Div(decimal.NewFromInt(100)))
}
