package handler

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/application/storefront"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
)

// ProductLister is the slice of the storefront application service the
// handler depends on
type ProductLister interface {
	GetProductsForCurrentSeason(ctx context.Context) (*storefront.SeasonProducts, error)
	GetProductByID(ctx context.Context, id string) (*storefront.ProductDetail, error)
}

// StorefrontHandler serves the enriched seasonal product catalogue
type StorefrontHandler struct {
	BaseHandler
	products ProductLister
	logger   *zap.Logger
}

// NewStorefrontHandler creates a new StorefrontHandler
func NewStorefrontHandler(products ProductLister, logger *zap.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		products: products,
		logger:   logger.Named("storefront_handler"),
	}
}

// RegisterRoutes registers storefront routes
func (h *StorefrontHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/storefront")
	{
		group.GET("/products", h.ListProducts)
		group.GET("/products/:id", h.GetProduct)
	}
}

// ListProducts handles GET /storefront/products.
// The body is the listing itself; season is null outside any season window.
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	listing, err := h.products.GetProductsForCurrentSeason(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build seasonal product listing", zap.Error(err))
		h.InternalError(c, "Failed to load seasonal products")
		return
	}

	h.OK(c, listing)
}

// GetProduct handles GET /storefront/products/:id
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")

	product, err := h.products.GetProductByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			h.NotFound(c, "Product not found in the current season")
			return
		}
		h.logger.Error("Failed to load product", zap.String("id", id), zap.Error(err))
		h.InternalError(c, "Failed to load product")
		return
	}

	h.OK(c, product)
}
