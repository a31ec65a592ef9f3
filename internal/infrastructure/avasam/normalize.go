package avasam

import (
	"encoding/json"
	"strconv"

	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// Avasam's warehouse detail payload is not stable: the same logical field has
// shipped under several names, options are sometimes flat and sometimes
// nested as services under warehouse entries, and the whole list may sit
// under a wrapper key. Each normalized field is resolved from an explicit
// alias table, first match wins, missing stays nil.
var (
	listAliases = []string{
		"Warehouses", "WareHouses", "warehouses",
		"Services", "services",
		"Data", "data", "Result", "result",
	}
	serviceListAliases = []string{
		"Services", "services",
		"ShippingServices", "shippingServices",
		"ShippingOptions", "shippingOptions",
	}

	warehouseIDAliases   = []string{"WarehouseId", "WareHouseId", "warehouseId", "warehouse_id", "WarehouseID"}
	warehouseNameAliases = []string{"WarehouseName", "WareHouseName", "warehouseName", "warehouse_name"}
	serviceIDAliases     = []string{"ServiceId", "serviceId", "service_id", "PostalServiceId", "ShippingServiceId"}
	serviceNameAliases   = []string{"ServiceName", "serviceName", "service_name", "PostalServiceName", "ShippingServiceName", "Service"}
	costAliases          = []string{"ShippingCost", "shippingCost", "shipping_cost", "Cost", "cost", "Price", "price"}
	costIncVatAliases    = []string{"ShippingCostIncVat", "shippingCostIncVat", "shipping_cost_inc_vat", "CostIncVat", "PriceIncVat"}
	currencyAliases      = []string{"Currency", "currency", "CurrencyCode", "currencyCode"}
	dispatchAliases      = []string{"DispatchDays", "dispatchDays", "dispatch_days", "DispatchTime"}
	deliveryMinAliases   = []string{"DeliveryMinDays", "deliveryMinDays", "delivery_min_days", "MinDeliveryDays", "DeliveryMin"}
	deliveryMaxAliases   = []string{"DeliveryMaxDays", "deliveryMaxDays", "delivery_max_days", "MaxDeliveryDays", "DeliveryMax"}
)

// NormalizeShippingOptions flattens an Avasam warehouse detail payload into
// shipping options. Returns nil when the payload shape is unrecognizable,
// and an empty slice when the shape is valid but holds no options.
func NormalizeShippingOptions(payload []byte) []supplier.ShippingOption {
	var root any
	if err := json.Unmarshal(payload, &root); err != nil {
		return nil
	}

	entries := extractEntryList(root)
	if entries == nil {
		return nil
	}

	options := make([]supplier.ShippingOption, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		services := extractServiceList(m)
		if len(services) == 0 {
			// Flat entry: warehouse and service fields on one object
			options = append(options, normalizeOption(m))
			continue
		}

		// Nested shape: service fields override warehouse-level ones
		for _, svc := range services {
			svcMap, ok := svc.(map[string]any)
			if !ok {
				continue
			}
			merged := make(map[string]any, len(m)+len(svcMap))
			for k, v := range m {
				if isServiceListKey(k) {
					continue
				}
				merged[k] = v
			}
			for k, v := range svcMap {
				merged[k] = v
			}
			options = append(options, normalizeOption(merged))
		}
	}

	return options
}

// extractEntryList finds the option/warehouse list in the payload: either the
// payload itself is an array, or the list sits under a known wrapper key
func extractEntryList(root any) []any {
	if list, ok := root.([]any); ok {
		return list
	}

	m, ok := root.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range listAliases {
		if list, ok := m[key].([]any); ok {
			return list
		}
	}
	return nil
}

// extractServiceList finds nested shipping services within a warehouse entry
func extractServiceList(entry map[string]any) []any {
	for _, key := range serviceListAliases {
		if list, ok := entry[key].([]any); ok {
			return list
		}
	}
	return nil
}

func isServiceListKey(key string) bool {
	for _, alias := range serviceListAliases {
		if key == alias {
			return true
		}
	}
	return false
}

// normalizeOption maps one merged source object to a shipping option
func normalizeOption(m map[string]any) supplier.ShippingOption {
	return supplier.ShippingOption{
		WarehouseID:        pickInt64(m, warehouseIDAliases),
		WarehouseName:      pickString(m, warehouseNameAliases),
		ServiceID:          pickInt64(m, serviceIDAliases),
		ServiceName:        pickString(m, serviceNameAliases),
		ShippingCost:       pickFloat64(m, costAliases),
		ShippingCostIncVat: pickFloat64(m, costIncVatAliases),
		Currency:           pickString(m, currencyAliases),
		DispatchDays:       pickInt64(m, dispatchAliases),
		DeliveryMinDays:    pickInt64(m, deliveryMinAliases),
		DeliveryMaxDays:    pickInt64(m, deliveryMaxAliases),
		Raw:                m,
	}
}

// pickFloat64 returns the first alias present with a numeric value. Numbers
// that arrive as JSON strings are parsed.
func pickFloat64(m map[string]any, aliases []string) *float64 {
	for _, alias := range aliases {
		v, ok := m[alias]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			f := t
			return &f
		case string:
			if f, err := strconv.ParseFloat(t, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// pickInt64 returns the first alias present with an integral value
func pickInt64(m map[string]any, aliases []string) *int64 {
	for _, alias := range aliases {
		v, ok := m[alias]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			i := int64(t)
			return &i
		case string:
			if i, err := strconv.ParseInt(t, 10, 64); err == nil {
				return &i
			}
		}
	}
	return nil
}

// pickString returns the first alias present with a non-empty string value
func pickString(m map[string]any, aliases []string) *string {
	for _, alias := range aliases {
		v, ok := m[alias]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			str := s
			return &str
		}
	}
	return nil
}
