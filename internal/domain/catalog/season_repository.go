package catalog

import (
	"context"
	"time"
)

// SeasonRepository defines the interface for season persistence
type SeasonRepository interface {
	// FindCurrent returns the season active at the given instant: start <= now <= end,
	// is_active true, ordered by start_date descending, first match. Returns
	// shared.ErrNotFound when no season matches.
	FindCurrent(ctx context.Context, now time.Time) (*Season, error)

	// CountCurrent counts how many seasons match the current-season filter.
	// More than one indicates overlapping active seasons in configuration.
	CountCurrent(ctx context.Context, now time.Time) (int64, error)
}
