// Package document provides access to the single persisted settings document row.
package document

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/linkdeck/linkdeck/internal/db/models"
)

var (
	// ErrDocumentNotFound is returned when no settings document row exists yet.
	ErrDocumentNotFound = errors.New("settings document not found")
	// ErrDocumentEmpty is returned when attempting to save an empty document.
	ErrDocumentEmpty = errors.New("settings document cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves the settings document row.
func Get(db *gorm.DB) (*models.Document, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var doc models.Document
	result := db.First(&doc, models.SettingsDocumentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, result.Error
	}

	return &doc, nil
}

// Set overwrites the settings document row with the given JSON payload
// (upsert keyed by the fixed document id, last writer wins).
func Set(db *gorm.DB, data []byte) (*models.Document, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if len(data) == 0 {
		return nil, ErrDocumentEmpty
	}

	doc := &models.Document{
		ID:        models.SettingsDocumentID,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(doc)
	if result.Error != nil {
		return nil, result.Error
	}

	return doc, nil
}
