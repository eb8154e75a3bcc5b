package ports

import (
	"context"
	"time"

	recdomain "generator-stats-service/internal/records/core/domain"
)

// RecordReaderPort is the only data source of the statistics queries.
type RecordReaderPort interface {
	// FindCreatedAfter returns records with CreatedAt strictly after `after`, in no particular order.
	FindCreatedAfter(ctx context.Context, after time.Time) ([]recdomain.Record, error)
}
