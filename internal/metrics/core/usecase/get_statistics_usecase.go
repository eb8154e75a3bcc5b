package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"generator-stats-service/internal/metrics/core/aggregate"
	"generator-stats-service/internal/metrics/core/domain"
	"generator-stats-service/internal/metrics/core/ports"
	"generator-stats-service/internal/metrics/core/temporal"
	"generator-stats-service/internal/platform/logger"
	recdomain "generator-stats-service/internal/records/core/domain"

	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidUnit  = errors.New("invalid granularity unit")
	ErrInvalidField = errors.New("invalid record field")
)

type GetCountInput struct {
	After time.Time // zero value counts every record
	Unit  string    // hour | day | week | month | year
}

type GetFieldCountInput struct {
	After time.Time
	Unit  string
	Field string // see recdomain.Fields
}

type GetStatisticsUseCase struct {
	reader ports.RecordReaderPort
	loads  singleflight.Group // concurrent queries with the same after share one read
}

func NewGetStatisticsUseCase(reader ports.RecordReaderPort) *GetStatisticsUseCase {
	return &GetStatisticsUseCase{reader: reader}
}

// Count validates the unit, fetches records created after in.After and counts them per bucket.
func (uc *GetStatisticsUseCase) Count(ctx context.Context, in GetCountInput) ([]domain.CountResult, error) {
	unit, err := temporal.ParseUnit(in.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}

	logger.C(ctx).Debug().
		Time("after", in.After).
		Str("unit", unit.String()).
		Msg("request to count records")

	records, err := uc.load(ctx, in.After)
	if err != nil {
		return nil, err
	}

	return aggregate.CountByBucket(records, in.After, unit)
}

// FieldCount is Count broken down by the values of in.Field.
func (uc *GetStatisticsUseCase) FieldCount(ctx context.Context, in GetFieldCountInput) ([]domain.FieldDistributionResult, error) {
	unit, err := temporal.ParseUnit(in.Unit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidUnit, err)
	}
	field, err := recdomain.ParseField(in.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}

	logger.C(ctx).Debug().
		Time("after", in.After).
		Str("unit", unit.String()).
		Str("field", field.String()).
		Msg("request to count records by field")

	records, err := uc.load(ctx, in.After)
	if err != nil {
		return nil, err
	}

	return aggregate.CountByBucketAndField(records, in.After, unit, field)
}

// load fetches the records created after the given instant. The returned slice
// may be shared with concurrent callers and must not be modified.
func (uc *GetStatisticsUseCase) load(ctx context.Context, after time.Time) ([]recdomain.Record, error) {
	key := after.UTC().Format(time.RFC3339Nano)

	v, err, shared := uc.loads.Do(key, func() (any, error) {
		return uc.reader.FindCreatedAfter(ctx, after)
	})
	if err != nil {
		return nil, fmt.Errorf("find records created after %s: %w", after.Format(time.RFC3339), err)
	}
	if shared {
		logger.C(ctx).Debug().Str("after", key).Msg("record read shared with a concurrent query")
	}

	return v.([]recdomain.Record), nil
}
