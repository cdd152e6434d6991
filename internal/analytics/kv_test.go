package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRecorder(t *testing.T) *KVRecorder {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewKVRecorder(client, "linkdeck:analytics")
}

func TestKVRecorderAggregate(t *testing.T) {
	rec := setupTestRecorder(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, rec.Record(ctx, Visit{CreatedAt: at("2026-08-20"), Source: "instagram"}))
	}

	require.NoError(t, rec.Record(ctx, Visit{CreatedAt: at("2026-08-21")}))

	sum, err := rec.Aggregate(ctx, Range{})
	require.NoError(t, err)

	assert.EqualValues(t, 4, sum.TotalVisits)
	assert.EqualValues(t, 3, sum.DailyVisits["2026-08-20"])
	assert.EqualValues(t, 1, sum.DailyVisits["2026-08-21"])
	assert.EqualValues(t, 3, sum.Referrers["instagram"])
	assert.EqualValues(t, 1, sum.Referrers[SourceDirect], "missing source defaults to direct")
}

func TestKVRecorderBoundedRange(t *testing.T) {
	rec := setupTestRecorder(t)
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, Visit{CreatedAt: at("2026-08-01"), Source: "old"}))
	require.NoError(t, rec.Record(ctx, Visit{CreatedAt: at("2026-08-20"), Source: "new"}))
	require.NoError(t, rec.Record(ctx, Visit{CreatedAt: at("2026-08-20"), Source: "new"}))

	rng, err := ParseRange("custom", "2026-08-10", "2026-08-31", time.Now())
	require.NoError(t, err)

	sum, err := rec.Aggregate(ctx, rng)
	require.NoError(t, err)

	// the total comes from the day buckets in range, not the global counter
	assert.EqualValues(t, 2, sum.TotalVisits)
	assert.EqualValues(t, 2, sum.DailyVisits["2026-08-20"])
	assert.Zero(t, sum.DailyVisits["2026-08-01"])

	// the source split only exists as an all-time view
	assert.EqualValues(t, 1, sum.Referrers["old"])
	assert.EqualValues(t, 2, sum.Referrers["new"])
}

func TestKVRecorderPresetRangeKeepsBoundaryDay(t *testing.T) {
	rec := setupTestRecorder(t)
	ctx := context.Background()

	now := at("2026-08-29") // mid-day
	boundary := now.AddDate(0, 0, -7)

	require.NoError(t, rec.Record(ctx, Visit{CreatedAt: boundary}))

	rng, err := ParseRange("7d", "", "", now)
	require.NoError(t, err)

	sum, err := rec.Aggregate(ctx, rng)
	require.NoError(t, err)

	// the day bucket carries a midnight timestamp; the preset start must
	// not cut it off
	assert.EqualValues(t, 1, sum.TotalVisits)
	assert.EqualValues(t, 1, sum.DailyVisits[boundary.UTC().Format(dateFormat)])
}

func TestKVRecorderZeroTimestampCountsNow(t *testing.T) {
	rec := setupTestRecorder(t)
	ctx := context.Background()

	require.NoError(t, rec.Record(ctx, Visit{Source: "instagram"}))

	sum, err := rec.Aggregate(ctx, Range{})
	require.NoError(t, err)

	assert.EqualValues(t, 1, sum.TotalVisits)
	assert.EqualValues(t, 1, sum.DailyVisits[time.Now().UTC().Format(dateFormat)])
}
