package storefront

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Quiggy85/itstheseason/internal/domain/catalog"
	"github.com/Quiggy85/itstheseason/internal/domain/shared"
)

// SeasonService resolves the currently active season
type SeasonService struct {
	seasonRepo catalog.SeasonRepository
	logger     *zap.Logger
}

// NewSeasonService creates a new SeasonService
func NewSeasonService(seasonRepo catalog.SeasonRepository, logger *zap.Logger) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		logger:     logger.Named("season"),
	}
}

// GetCurrentSeason returns the season active right now, or nil when none is
// configured or the lookup fails. Callers treat nil uniformly as "no active
// season"; a query failure must not take the storefront down.
func (s *SeasonService) GetCurrentSeason(ctx context.Context) *catalog.Season {
	now := time.Now()

	season, err := s.seasonRepo.FindCurrent(ctx, now)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Error("Failed to resolve current season", zap.Error(err))
		}
		return nil
	}

	// Overlapping active seasons are a content configuration mistake; the
	// most recently started one is served, but flag it for the operators.
	if count, err := s.seasonRepo.CountCurrent(ctx, now); err == nil && count > 1 {
		s.logger.Warn("Multiple active seasons overlap",
			zap.Int64("count", count),
			zap.String("serving", season.Slug))
	}

	return season
}
