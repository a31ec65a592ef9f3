package storefront

import (
	"math"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// BestShippingOption picks the single best option for a SKU: cheapest by
// VAT-inclusive cost (falling back to plain cost), then soonest delivery
// window (max days falling back to min), then soonest dispatch. Missing
// values always lose. Returns nil for an empty list.
func BestShippingOption(options []supplier.ShippingOption) *supplier.ShippingOption {
	if len(options) == 0 {
		return nil
	}

	best := &options[0]
	for i := 1; i < len(options); i++ {
		if shippingOptionLess(&options[i], best) {
			best = &options[i]
		}
	}
	return best
}

// shippingOptionLess reports whether a ranks strictly better than b
func shippingOptionLess(a, b *supplier.ShippingOption) bool {
	aCost := firstFloat(a.ShippingCostIncVat, a.ShippingCost)
	bCost := firstFloat(b.ShippingCostIncVat, b.ShippingCost)
	if aCost != bCost {
		return aCost < bCost
	}

	aDelivery := firstInt(a.DeliveryMaxDays, a.DeliveryMinDays)
	bDelivery := firstInt(b.DeliveryMaxDays, b.DeliveryMinDays)
	if aDelivery != bDelivery {
		return aDelivery < bDelivery
	}

	return firstInt(a.DispatchDays, nil) < firstInt(b.DispatchDays, nil)
}

func firstFloat(values ...*float64) float64 {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return math.Inf(1)
}

func firstInt(values ...*int64) float64 {
	for _, v := range values {
		if v != nil {
			return float64(*v)
		}
	}
	return math.Inf(1)
}
