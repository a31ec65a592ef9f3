package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/application/storefront"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
	"github.com/Quiggy85/itstheseason/internal/interfaces/http/dto"
)

type MockProductLister struct {
	mock.Mock
}

func (m *MockProductLister) GetProductsForCurrentSeason(ctx context.Context) (*storefront.SeasonProducts, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.SeasonProducts), args.Error(1)
}

func (m *MockProductLister) GetProductByID(ctx context.Context, id string) (*storefront.ProductDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storefront.ProductDetail), args.Error(1)
}

func newStorefrontTestContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	c.Request = req
	return c, w
}

func TestStorefrontHandler_ListProducts(t *testing.T) {
	lister := new(MockProductLister)
	lister.On("GetProductsForCurrentSeason", mock.Anything).Return(&storefront.SeasonProducts{
		Season: &storefront.SeasonResponse{Slug: "halloween", Name: "Halloween"},
		Products: []storefront.SeasonalProduct{
			{ID: "p1", AvasamSKU: "PUMPKIN-01", Name: "Pumpkin Lantern"},
		},
	}, nil)

	h := NewStorefrontHandler(lister, zap.NewNop())
	c, w := newStorefrontTestContext(t, "/storefront/products")

	h.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "season")
	assert.Contains(t, body, "products")

	var season storefront.SeasonResponse
	require.NoError(t, json.Unmarshal(body["season"], &season))
	assert.Equal(t, "halloween", season.Slug)

	lister.AssertExpectations(t)
}

func TestStorefrontHandler_ListProductsNoSeason(t *testing.T) {
	lister := new(MockProductLister)
	lister.On("GetProductsForCurrentSeason", mock.Anything).Return(&storefront.SeasonProducts{
		Season:   nil,
		Products: []storefront.SeasonalProduct{},
	}, nil)

	h := NewStorefrontHandler(lister, zap.NewNop())
	c, w := newStorefrontTestContext(t, "/storefront/products")

	h.ListProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body["season"]))
	assert.Equal(t, "[]", string(body["products"]))
}

func TestStorefrontHandler_ListProductsFailure(t *testing.T) {
	lister := new(MockProductLister)
	lister.On("GetProductsForCurrentSeason", mock.Anything).
		Return(nil, errors.New("supplier authentication rejected"))

	h := NewStorefrontHandler(lister, zap.NewNop())
	c, w := newStorefrontTestContext(t, "/storefront/products")

	h.ListProducts(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
}

func TestStorefrontHandler_GetProduct(t *testing.T) {
	min, max := 7.20, 14.40
	lister := new(MockProductLister)
	lister.On("GetProductByID", mock.Anything, "p1").Return(&storefront.ProductDetail{
		SeasonalProduct: storefront.SeasonalProduct{ID: "p1", AvasamSKU: "PUMPKIN-01", Name: "Pumpkin Lantern"},
		DisplayPrice:    &storefront.DisplayPrice{Kind: "range", Min: &min, Max: &max},
	}, nil)

	h := NewStorefrontHandler(lister, zap.NewNop())
	c, w := newStorefrontTestContext(t, "/storefront/products/p1")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	h.GetProduct(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var detail storefront.ProductDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "p1", detail.ID)
	require.NotNil(t, detail.DisplayPrice)
	assert.Equal(t, "range", detail.DisplayPrice.Kind)

	lister.AssertExpectations(t)
}

func TestStorefrontHandler_GetProductNotFound(t *testing.T) {
	lister := new(MockProductLister)
	lister.On("GetProductByID", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

	h := NewStorefrontHandler(lister, zap.NewNop())
	c, w := newStorefrontTestContext(t, "/storefront/products/missing")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.GetProduct(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
}
