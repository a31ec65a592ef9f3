package storefront

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
	"github.com/Quiggy85/itstheseason/internal/domain/supplier"
)

// ProductService builds the enriched seasonal product list: local product
// stubs joined with live supplier data and TTL-cached shipping quotes.
type ProductService struct {
	seasons        *SeasonService
	productRepo    catalog.ProductRepository
	shippingRepo   catalog.ShippingQuoteRepository
	supplierClient supplier.Client
	markupPercent  float64
	refreshWindow  time.Duration
	logger         *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	seasons *SeasonService,
	productRepo catalog.ProductRepository,
	shippingRepo catalog.ShippingQuoteRepository,
	supplierClient supplier.Client,
	markupPercent float64,
	refreshWindow time.Duration,
	logger *zap.Logger,
) *ProductService {
	if markupPercent < 0 {
		markupPercent = DefaultMarkupPercent
	}
	if refreshWindow < catalog.MinShippingRefreshWindow {
		refreshWindow = catalog.DefaultShippingRefreshWindow
	}
	return &ProductService{
		seasons:        seasons,
		productRepo:    productRepo,
		shippingRepo:   shippingRepo,
		supplierClient: supplierClient,
		markupPercent:  markupPercent,
		refreshWindow:  refreshWindow,
		logger:         logger.Named("storefront"),
	}
}

// GetProductsForCurrentSeason returns the enriched product list for the
// active season. Partial upstream failures degrade to whatever data is
// known; only supplier authentication problems are fatal.
func (s *ProductService) GetProductsForCurrentSeason(ctx context.Context) (*SeasonProducts, error) {
	season := s.seasons.GetCurrentSeason(ctx)
	if season == nil {
		return &SeasonProducts{Season: nil, Products: []SeasonalProduct{}}, nil
	}

	result := &SeasonProducts{
		Season:   NewSeasonResponse(season),
		Products: []SeasonalProduct{},
	}

	products, err := s.productRepo.FindBySeason(ctx, season.ID)
	if err != nil {
		s.logger.Error("Failed to load products for season",
			zap.String("season", season.Slug), zap.Error(err))
		return result, nil
	}
	if len(products) == 0 {
		return result, nil
	}

	skus := make([]string, 0, len(products))
	productIDBySKU := make(map[string]uuid.UUID, len(products))
	for _, p := range products {
		if p.AvasamSKU == "" {
			continue
		}
		skus = append(skus, p.AvasamSKU)
		productIDBySKU[p.AvasamSKU] = p.ID
	}

	quoteBySKU := s.loadShippingQuotes(ctx, skus)

	staleSKUs := make([]string, 0, len(skus))
	now := time.Now()
	for _, sku := range skus {
		quote, ok := quoteBySKU[sku]
		if !ok || quote.IsStale(s.refreshWindow, now) {
			staleSKUs = append(staleSKUs, sku)
		}
	}

	s.refreshShippingQuotes(ctx, staleSKUs, productIDBySKU, quoteBySKU)

	supplierProducts, err := s.supplierClient.ListProductsBySKUs(ctx, skus)
	if err != nil {
		// Only authentication/configuration problems surface here
		return nil, err
	}
	avasamBySKU := make(map[string]*supplier.Product, len(supplierProducts))
	for i := range supplierProducts {
		avasamBySKU[supplierProducts[i].SKU] = &supplierProducts[i]
	}

	for _, p := range products {
		avasam := avasamBySKU[p.AvasamSKU]

		var shipping *ShippingInfo
		if quote, ok := quoteBySKU[p.AvasamSKU]; ok {
			shipping = newShippingInfo(&quote)
		}

		result.Products = append(result.Products, SeasonalProduct{
			ID:              p.ID.String(),
			AvasamSKU:       p.AvasamSKU,
			Name:            p.Name,
			Description:     p.Description,
			ImageURL:        p.ImageURL,
			RetailPrice:     p.RetailPrice,
			Currency:        p.Currency,
			PriceWithMarkup: PriceWithMarkup(avasam, p.RetailPrice, s.markupPercent),
			Avasam:          avasam,
			Shipping:        shipping,
		})
	}

	return result, nil
}

// GetProductByID resolves one product from the freshly enriched list and
// attaches its variant-aware display price. Returns shared.ErrNotFound when
// the id is not part of the current season's list.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*ProductDetail, error) {
	listing, err := s.GetProductsForCurrentSeason(ctx)
	if err != nil {
		return nil, err
	}

	for i := range listing.Products {
		p := listing.Products[i]
		if p.ID != id {
			continue
		}
		return &ProductDetail{
			SeasonalProduct: p,
			DisplayPrice:    ComputeDisplayPrice(p.Avasam, p.PriceWithMarkup, s.markupPercent),
		}, nil
	}

	return nil, shared.ErrNotFound
}

// loadShippingQuotes reads the cached quotes for the given SKUs, degrading
// to none on a store failure
func (s *ProductService) loadShippingQuotes(ctx context.Context, skus []string) map[string]catalog.ShippingQuote {
	quoteBySKU := make(map[string]catalog.ShippingQuote, len(skus))

	quotes, err := s.shippingRepo.FindBySKUs(ctx, skus)
	if err != nil {
		s.logger.Error("Failed to load shipping quotes", zap.Error(err))
		return quoteBySKU
	}
	for _, q := range quotes {
		if q.AvasamSKU != "" {
			quoteBySKU[q.AvasamSKU] = q
		}
	}
	return quoteBySKU
}

// refreshShippingQuotes fetches fresh shipping options for each stale SKU
// concurrently, keeps the best option per SKU, and upserts the batch. A SKU
// whose fetch fails keeps its previous quote until a later cycle succeeds.
// Concurrent requests may refresh the same SKU redundantly; the upsert is
// keyed on SKU so last write wins.
func (s *ProductService) refreshShippingQuotes(
	ctx context.Context,
	staleSKUs []string,
	productIDBySKU map[string]uuid.UUID,
	quoteBySKU map[string]catalog.ShippingQuote,
) {
	if len(staleSKUs) == 0 {
		return
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		updates []catalog.ShippingQuote
	)

	for _, sku := range staleSKUs {
		wg.Add(1)
		go func(sku string) {
			defer wg.Done()

			options, err := s.supplierClient.GetShippingOptionsBySKU(ctx, sku)
			if err != nil {
				s.logger.Error("Failed to fetch shipping options",
					zap.String("sku", sku), zap.Error(err))
				return
			}

			best := BestShippingOption(options)
			if best == nil {
				return
			}

			quote := s.buildQuote(sku, productIDBySKU[sku], best)

			mu.Lock()
			updates = append(updates, quote)
			mu.Unlock()
		}(sku)
	}
	wg.Wait()

	if len(updates) == 0 {
		return
	}

	if err := s.shippingRepo.UpsertBatch(ctx, updates); err != nil {
		s.logger.Error("Failed to upsert shipping quotes", zap.Error(err))
		return
	}
	for _, q := range updates {
		quoteBySKU[q.AvasamSKU] = q
	}
}

// buildQuote converts the chosen shipping option into a persistable quote
func (s *ProductService) buildQuote(sku string, productID uuid.UUID, best *supplier.ShippingOption) catalog.ShippingQuote {
	now := time.Now()

	quote := catalog.ShippingQuote{
		ID:                 uuid.New(),
		AvasamSKU:          sku,
		ServiceID:          best.ServiceID,
		ServiceName:        best.ServiceName,
		WarehouseID:        best.WarehouseID,
		WarehouseName:      best.WarehouseName,
		ShippingCost:       best.ShippingCost,
		ShippingCostIncVat: best.ShippingCostIncVat,
		Currency:           best.Currency,
		DispatchDays:       best.DispatchDays,
		DeliveryMinDays:    best.DeliveryMinDays,
		DeliveryMaxDays:    best.DeliveryMaxDays,
		LastSyncedAt:       &now,
	}
	if productID != uuid.Nil {
		id := productID
		quote.ProductID = &id
	}
	if best.Raw != nil {
		if raw, err := json.Marshal(best.Raw); err == nil {
			rawStr := string(raw)
			quote.Raw = &rawStr
		}
	}
	return quote
}
