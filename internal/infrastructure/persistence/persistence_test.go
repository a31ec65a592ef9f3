package persistence

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named in-memory database so every pooled connection sees the same
	// tables, isolated per test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&catalog.Season{},
		&catalog.Product{},
		&catalog.ProductSeason{},
		&catalog.ShippingQuote{},
	))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func newSeason(slug string, start, end time.Time, active bool) *catalog.Season {
	return &catalog.Season{
		BaseEntity: shared.NewBaseEntity(),
		Slug:       slug,
		Name:       slug,
		StartDate:  start,
		EndDate:    end,
		IsActive:   active,
	}
}

func TestSeasonRepositoryFindCurrent(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSeasonRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	halloween := newSeason("halloween", now.AddDate(0, 0, -14), now.AddDate(0, 0, 16), true)
	expired := newSeason("summer", now.AddDate(0, -4, 0), now.AddDate(0, -1, 0), true)
	inactive := newSeason("christmas", now.AddDate(0, 0, -1), now.AddDate(0, 2, 0), false)
	require.NoError(t, db.Create(halloween).Error)
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(inactive).Error)

	current, err := repo.FindCurrent(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "halloween", current.Slug)
}

func TestSeasonRepositoryFindCurrentPrefersLatestStart(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSeasonRepository(db)
	ctx := context.Background()

	now := time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)

	autumn := newSeason("autumn", now.AddDate(0, -3, 0), now.AddDate(0, 0, 20), true)
	christmas := newSeason("christmas", now.AddDate(0, 0, -20), now.AddDate(0, 0, 10), true)
	require.NoError(t, db.Create(autumn).Error)
	require.NoError(t, db.Create(christmas).Error)

	current, err := repo.FindCurrent(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, "christmas", current.Slug)

	count, err := repo.CountCurrent(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSeasonRepositoryFindCurrentNone(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormSeasonRepository(db)

	_, err := repo.FindCurrent(context.Background(), time.Now())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestProductRepositoryFindBySeason(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)
	ctx := context.Background()

	season := newSeason("halloween", time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 1, 0), true)
	other := newSeason("christmas", time.Now().AddDate(0, 1, 0), time.Now().AddDate(0, 3, 0), true)
	require.NoError(t, db.Create(season).Error)
	require.NoError(t, db.Create(other).Error)

	pumpkin := &catalog.Product{BaseEntity: shared.NewBaseEntity(), AvasamSKU: "AVA-PUMPKIN", Name: "Pumpkin Lantern"}
	bauble := &catalog.Product{BaseEntity: shared.NewBaseEntity(), AvasamSKU: "AVA-BAUBLE", Name: "Glass Bauble"}
	require.NoError(t, db.Create(pumpkin).Error)
	require.NoError(t, db.Create(bauble).Error)

	require.NoError(t, db.Create(&catalog.ProductSeason{ProductID: pumpkin.ID, SeasonID: season.ID}).Error)
	require.NoError(t, db.Create(&catalog.ProductSeason{ProductID: bauble.ID, SeasonID: other.ID}).Error)

	products, err := repo.FindBySeason(ctx, season.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "AVA-PUMPKIN", products[0].AvasamSKU)
}

func TestProductRepositoryFindByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormProductRepository(db)

	missing := &catalog.Product{BaseEntity: shared.NewBaseEntity()}
	_, err := repo.FindByID(context.Background(), missing.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestShippingQuoteRepositoryUpsertBatch(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormShippingQuoteRepository(db)
	ctx := context.Background()

	cost := 3.99
	synced := time.Now().Add(-2 * time.Hour)
	quote := catalog.ShippingQuote{
		ID:           uuid.New(),
		AvasamSKU:    "AVA-PUMPKIN",
		ShippingCost: &cost,
		LastSyncedAt: &synced,
	}
	require.NoError(t, repo.UpsertBatch(ctx, []catalog.ShippingQuote{quote}))

	// Second write for the same SKU replaces the first row
	newCost := 4.49
	freshSync := time.Now()
	update := catalog.ShippingQuote{
		ID:           uuid.New(),
		AvasamSKU:    "AVA-PUMPKIN",
		ShippingCost: &newCost,
		LastSyncedAt: &freshSync,
	}
	require.NoError(t, repo.UpsertBatch(ctx, []catalog.ShippingQuote{update}))

	quotes, err := repo.FindBySKUs(ctx, []string{"AVA-PUMPKIN"})
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	require.NotNil(t, quotes[0].ShippingCost)
	assert.Equal(t, 4.49, *quotes[0].ShippingCost)
}

func TestShippingQuoteRepositoryFindBySKUsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormShippingQuoteRepository(db)

	quotes, err := repo.FindBySKUs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, quotes)

	require.NoError(t, repo.UpsertBatch(context.Background(), nil))
}
