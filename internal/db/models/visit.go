package models

import "time"

// Visit is one recorded page view. Rows are append-only and aggregated by
// day and source at read time, never mutated.
type Visit struct {
	ID        uint64    `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	Source    string    `gorm:"size:100;index"`
	Path      string    `gorm:"size:255"`
	UserAgent string    `gorm:"size:512"`
}
