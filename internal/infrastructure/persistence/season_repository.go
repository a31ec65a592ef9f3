package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSeasonRepository implements SeasonRepository using GORM
type GormSeasonRepository struct {
	db *gorm.DB
}

// NewGormSeasonRepository creates a new GormSeasonRepository
func NewGormSeasonRepository(db *gorm.DB) *GormSeasonRepository {
	return &GormSeasonRepository{db: db}
}

// FindCurrent returns the active season covering the given instant. When
// active seasons overlap, the one that started most recently wins.
func (r *GormSeasonRepository) FindCurrent(ctx context.Context, now time.Time) (*catalog.Season, error) {
	var season catalog.Season
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date DESC").
		First(&season).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &season, nil
}

// CountCurrent counts active seasons covering the given instant
func (r *GormSeasonRepository) CountCurrent(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Season{}).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSeasonRepository implements SeasonRepository
var _ catalog.SeasonRepository = (*GormSeasonRepository)(nil)
