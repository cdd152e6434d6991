// Package analytics counts page visits and aggregates them by day and
// referrer source for the admin dashboard.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/linkdeck/linkdeck/internal/config"
)

// SourceDirect is the referrer bucket used when a visit carries no source tag.
const SourceDirect = "direct"

// dateFormat is the UTC day bucket key layout.
const dateFormat = "2006-01-02"

var (
	// ErrUnknownRange is returned for an unknown range preset.
	ErrUnknownRange = errors.New("unknown analytics range preset")
	// ErrBackendUnavailable is returned when the backend is missing or misconfigured.
	ErrBackendUnavailable = errors.New("analytics backend unavailable")
)

// Visit is one page view to record.
type Visit struct {
	CreatedAt time.Time
	Source    string
	Path      string
	UserAgent string
}

// Summary is the aggregated dashboard view.
type Summary struct {
	TotalVisits int64            `json:"totalVisits"`
	DailyVisits map[string]int64 `json:"dailyVisits"`
	Referrers   map[string]int64 `json:"referrers"`
}

// Range bounds an aggregation window. Nil bounds leave that side open.
type Range struct {
	Start *time.Time
	End   *time.Time
}

// Contains reports whether ts falls inside the range.
func (r Range) Contains(ts time.Time) bool {
	if r.Start != nil && ts.Before(*r.Start) {
		return false
	}
	if r.End != nil && ts.After(*r.End) {
		return false
	}

	return true
}

// Key returns a stable cache key for the range.
func (r Range) Key() string {
	format := func(t *time.Time) string {
		if t == nil {
			return "open"
		}
		return t.UTC().Format(time.RFC3339)
	}

	return fmt.Sprintf("%s..%s", format(r.Start), format(r.End))
}

// ParseRange resolves a dashboard range selector. Presets are all, 7d, 30d,
// 90d and 180d; custom takes explicit YYYY-MM-DD bounds, the end date
// inclusive through the end of its day.
func ParseRange(preset, startDate, endDate string, now time.Time) (Range, error) {
	var r Range

	days := map[string]int{"7d": 7, "30d": 30, "90d": 90, "180d": 180}

	switch {
	case preset == "" || preset == "all":
		return r, nil
	case preset == "custom":
		if startDate != "" {
			start, err := time.ParseInLocation(dateFormat, startDate, time.UTC)
			if err != nil {
				return r, err
			}
			r.Start = &start
		}
		if endDate != "" {
			end, err := time.ParseInLocation(dateFormat, endDate, time.UTC)
			if err != nil {
				return r, err
			}
			end = end.Add(24*time.Hour - time.Second)
			r.End = &end
		}
		return r, nil
	default:
		d, ok := days[preset]
		if !ok {
			return r, ErrUnknownRange
		}
		// day granularity: the boundary day's midnight bucket must stay in
		// range regardless of the current wall-clock time
		start := now.UTC().AddDate(0, 0, -d).Truncate(24 * time.Hour)
		r.Start = &start
		return r, nil
	}
}

// Recorder counts visits and serves aggregations.
type Recorder interface {
	// Record appends one visit. Call sites treat it as fire-and-forget.
	Record(ctx context.Context, v Visit) error
	// Aggregate buckets the recorded visits by day and source within the range.
	Aggregate(ctx context.Context, r Range) (*Summary, error)
}

// New selects the configured backend, wrapped in the aggregation cache.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (Recorder, error) {
	var rec Recorder

	switch cfg.Analytics.Backend {
	case config.AnalyticsBackendDB:
		if db == nil {
			return nil, ErrBackendUnavailable
		}
		rec = NewDBRecorder(db)
	case config.AnalyticsBackendKV:
		if rdb == nil {
			return nil, ErrBackendUnavailable
		}
		rec = NewKVRecorder(rdb, "linkdeck:analytics")
	default:
		return nil, ErrBackendUnavailable
	}

	return NewCachedRecorder(rec), nil
}

func emptySummary() *Summary {
	return &Summary{
		DailyVisits: map[string]int64{},
		Referrers:   map[string]int64{},
	}
}

func normalizeSource(source string) string {
	if source == "" {
		return SourceDirect
	}

	return source
}
