package analytics

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// KVRecorder keeps pre-aggregated counters in redis hashes instead of raw
// rows: one total counter, one day-bucket hash and one source hash. Day
// buckets can be filtered by range at read time; the source split only
// exists as an all-time view, so for bounded ranges referrers stay all-time
// while the total is recomputed from the day buckets in range.
type KVRecorder struct {
	client *redis.Client
	prefix string
}

// NewKVRecorder creates a redis backed recorder under the given key prefix.
func NewKVRecorder(client *redis.Client, prefix string) *KVRecorder {
	return &KVRecorder{client: client, prefix: prefix}
}

func (r *KVRecorder) totalKey() string { return r.prefix + ":total" }
func (r *KVRecorder) dailyKey() string { return r.prefix + ":daily" }
func (r *KVRecorder) srcKey() string   { return r.prefix + ":sources" }

// Record increments the three counters in one pipeline round trip.
func (r *KVRecorder) Record(ctx context.Context, v Visit) error {
	ts := v.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	day := ts.UTC().Format(dateFormat)

	pipe := r.client.Pipeline()
	pipe.Incr(ctx, r.totalKey())
	pipe.HIncrBy(ctx, r.dailyKey(), day, 1)
	pipe.HIncrBy(ctx, r.srcKey(), normalizeSource(v.Source), 1)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to record visit counters")
	}

	return nil
}

// Aggregate reads the counter hashes and applies the range to the day buckets.
func (r *KVRecorder) Aggregate(ctx context.Context, rng Range) (*Summary, error) {
	sum := emptySummary()

	daily, err := r.client.HGetAll(ctx, r.dailyKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read daily visit counters")
	}

	bounded := rng.Start != nil || rng.End != nil

	for day, raw := range daily {
		count, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}

		ts, err := time.ParseInLocation(dateFormat, day, time.UTC)
		if err != nil || !rng.Contains(ts) {
			continue
		}

		sum.DailyVisits[day] = count
		if bounded {
			sum.TotalVisits += count
		}
	}

	if !bounded {
		total, err := r.client.Get(ctx, r.totalKey()).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, errors.Wrap(err, "failed to read total visit counter")
		}
		sum.TotalVisits = total
	}

	sources, err := r.client.HGetAll(ctx, r.srcKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read source visit counters")
	}

	for source, raw := range sources {
		if count, err := strconv.ParseInt(raw, 10, 64); err == nil {
			sum.Referrers[source] = count
		}
	}

	return sum, nil
}
