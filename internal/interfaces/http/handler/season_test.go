package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
)

type MockSeasonProvider struct {
	mock.Mock
}

func (m *MockSeasonProvider) GetCurrentSeason(ctx context.Context) *catalog.Season {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*catalog.Season)
}

func TestSeasonHandler_GetCurrent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := new(MockSeasonProvider)
	provider.On("GetCurrentSeason", mock.Anything).Return(&catalog.Season{
		BaseEntity: shared.BaseEntity{ID: uuid.New()},
		Slug:       "christmas",
		Name:       "Christmas",
		StartDate:  time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 12, 26, 23, 59, 59, 0, time.UTC),
		IsActive:   true,
	})

	h := NewSeasonHandler(provider)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/seasons/current", nil)

	h.GetCurrent(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var season map[string]interface{}
	require.NoError(t, json.Unmarshal(body["season"], &season))
	assert.Equal(t, "christmas", season["slug"])
	assert.Equal(t, true, season["is_active"])
}

func TestSeasonHandler_GetCurrentNone(t *testing.T) {
	gin.SetMode(gin.TestMode)

	provider := new(MockSeasonProvider)
	provider.On("GetCurrentSeason", mock.Anything).Return(nil)

	h := NewSeasonHandler(provider)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/seasons/current", nil)

	h.GetCurrent(c)

	// No active season is not an error
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "null", string(body["season"]))
}
