package ports

import (
	"context"
	"time"

	"generator-stats-service/internal/records/core/domain"
)

type RecordRepositoryPort interface {
	// InsertRecord:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> a record with the same id exists (idempotent retry)
	//   created = false, err != nil -> DB error
	InsertRecord(ctx context.Context, r *domain.Record) (created bool, err error)

	// FindRecord returns nil, nil when no record has the id.
	FindRecord(ctx context.Context, id string) (*domain.Record, error)

	// ListRecords returns records newest first.
	ListRecords(ctx context.Context, limit, offset int) ([]domain.Record, error)

	DeleteRecord(ctx context.Context, id string) (deleted bool, err error)

	CountRecords(ctx context.Context) (int64, error)

	FindCreatedAfter(ctx context.Context, after time.Time) ([]domain.Record, error)
}
