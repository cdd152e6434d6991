package analytics

import (
	"context"

	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/db/controller/visit"
	"github.com/linkdeck/linkdeck/internal/db/models"
)

// DBRecorder appends one row per visit and re-aggregates with a full scan at
// read time. Fine for the traffic a personal landing page sees.
type DBRecorder struct {
	db *gorm.DB
}

// NewDBRecorder creates a gorm backed recorder.
func NewDBRecorder(db *gorm.DB) *DBRecorder {
	return &DBRecorder{db: db}
}

// Record appends one visit row.
func (r *DBRecorder) Record(_ context.Context, v Visit) error {
	return visit.Create(r.db, &models.Visit{
		CreatedAt: v.CreatedAt,
		Source:    normalizeSource(v.Source),
		Path:      v.Path,
		UserAgent: v.UserAgent,
	})
}

// Aggregate scans the rows in range and buckets them by UTC day and source.
func (r *DBRecorder) Aggregate(_ context.Context, rng Range) (*Summary, error) {
	rows, err := visit.ListBetween(r.db, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}

	sum := emptySummary()

	for _, row := range rows {
		sum.TotalVisits++
		sum.DailyVisits[row.CreatedAt.UTC().Format(dateFormat)]++
		sum.Referrers[normalizeSource(row.Source)]++
	}

	return sum, nil
}
