// Package visit provides append and scan operations for recorded page views.
package visit

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/db/models"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Create appends one visit row.
func Create(db *gorm.DB, v *models.Visit) error {
	if db == nil {
		return ErrDBNil
	}

	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now().UTC()
	}

	return db.Create(v).Error
}

// ListBetween returns all visit rows inside the optional [start, end] window,
// newest first. A nil bound leaves that side open.
func ListBetween(db *gorm.DB, start, end *time.Time) ([]models.Visit, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.Visit{})

	if start != nil {
		tx = tx.Where("created_at >= ?", *start)
	}

	if end != nil {
		tx = tx.Where("created_at <= ?", *end)
	}

	var visits []models.Visit
	if err := tx.Order("created_at DESC").Find(&visits).Error; err != nil {
		return nil, err
	}

	return visits, nil
}
