package catalog

import (
	"time"

	"github.com/Quiggy85/itstheseason/internal/domain/shared"
)

// Season is a time-boxed catalogue configuration. It decides which products
// surface on the storefront and carries the theme colors for the period.
// Seasons are created and edited by an external admin process; this service
// only reads them.
type Season struct {
	shared.BaseEntity
	Slug         string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(100);not null"`
	StartDate    time.Time `gorm:"not null;index"`
	EndDate      time.Time `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:true"`
	PrimaryColor *string   `gorm:"type:varchar(20)"`
	AccentColor  *string   `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (Season) TableName() string {
	return "seasons"
}

// Contains reports whether t falls inside the season's date range
func (s *Season) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}
