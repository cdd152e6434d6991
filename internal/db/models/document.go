// Package models contains database model definitions.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// SettingsDocumentID is the fixed id of the single settings document row.
const SettingsDocumentID uint64 = 1

// Document is the single settings document persisted as one JSON column row.
// Exactly one row with ID = SettingsDocumentID exists per deployment; saves
// upsert that row as a whole.
type Document struct {
	ID        uint64         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"type:json"`
	UpdatedAt time.Time
}
