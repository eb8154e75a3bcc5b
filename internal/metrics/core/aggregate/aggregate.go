// Package aggregate counts records per time bucket in process.
//
// Functions here are pure: they never touch the store and may be called
// concurrently with independent inputs.
package aggregate

import (
	"slices"
	"time"

	"generator-stats-service/internal/metrics/core/domain"
	"generator-stats-service/internal/metrics/core/temporal"
	recdomain "generator-stats-service/internal/records/core/domain"
)

type fieldKey struct {
	moment int64
	value  string
}

// CountByBucket counts records created strictly after `after`, grouped by unit.
// Results are sorted by bucket start, oldest first.
func CountByBucket(records []recdomain.Record, after time.Time, unit temporal.Unit) ([]domain.CountResult, error) {
	if !unit.Valid() {
		return nil, temporal.ErrUnsupportedUnit
	}

	counts := make(map[int64]int64)
	for _, r := range records {
		if !r.CreatedAt.After(after) {
			continue
		}
		b, err := temporal.Truncate(r.CreatedAt, unit)
		if err != nil {
			return nil, err
		}
		counts[b.Moment]++
	}

	out := make([]domain.CountResult, 0, len(counts))
	for moment, n := range counts {
		start, err := temporal.FromMoment(moment, unit)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.CountResult{BucketStart: start, Count: n})
	}

	slices.SortFunc(out, func(a, b domain.CountResult) int {
		return a.BucketStart.Compare(b.BucketStart)
	})
	return out, nil
}

// CountByBucketAndField is CountByBucket broken down by the value of field.
// Records that do not carry the field are skipped.
func CountByBucketAndField(records []recdomain.Record, after time.Time, unit temporal.Unit, field recdomain.Field) ([]domain.FieldDistributionResult, error) {
	if !unit.Valid() {
		return nil, temporal.ErrUnsupportedUnit
	}
	if !field.Valid() {
		return nil, recdomain.ErrUnsupportedField
	}

	counts := make(map[fieldKey]int64)
	for _, r := range records {
		if !r.CreatedAt.After(after) {
			continue
		}
		value, ok := field.Value(r)
		if !ok {
			continue
		}
		b, err := temporal.Truncate(r.CreatedAt, unit)
		if err != nil {
			return nil, err
		}
		counts[fieldKey{moment: b.Moment, value: value}]++
	}

	byMoment := make(map[int64]map[string]int64)
	for k, n := range counts {
		values, ok := byMoment[k.moment]
		if !ok {
			values = make(map[string]int64)
			byMoment[k.moment] = values
		}
		values[k.value] = n
	}

	out := make([]domain.FieldDistributionResult, 0, len(byMoment))
	for moment, values := range byMoment {
		start, err := temporal.FromMoment(moment, unit)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.FieldDistributionResult{BucketStart: start, Values: values})
	}

	slices.SortFunc(out, func(a, b domain.FieldDistributionResult) int {
		return a.BucketStart.Compare(b.BucketStart)
	})
	return out, nil
}
