package postgres

import (
	"context"
	"time"

	"generator-stats-service/internal/metrics/core/ports"
	recpg "generator-stats-service/internal/records/adapters/postgres"
	recdomain "generator-stats-service/internal/records/core/domain"
)

const DefaultBatchSize = 5000

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

// RecordReader streams the records a statistics query needs in keyset pages
// ordered by (created_at, id), so a large table is never read in one result set.
type RecordReader struct {
	db        DB
	batchSize int
}

var _ ports.RecordReaderPort = (*RecordReader)(nil)

func NewRecordReader(db DB, batchSize int) *RecordReader {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &RecordReader{db: db, batchSize: batchSize}
}

var (
	firstPageSQL = `
SELECT ` + recpg.RecordColumns + `
FROM yorc
WHERE created_at > $1
ORDER BY created_at, id
LIMIT $2`

	nextPageSQL = `
SELECT ` + recpg.RecordColumns + `
FROM yorc
WHERE (created_at, id) > ($1, $2)
ORDER BY created_at, id
LIMIT $3`
)

func (r *RecordReader) FindCreatedAfter(ctx context.Context, after time.Time) ([]recdomain.Record, error) {
	out := []recdomain.Record{}

	page, err := r.page(ctx, firstPageSQL, after.UTC(), r.batchSize)
	for {
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if len(page) < r.batchSize {
			return out, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		last := page[len(page)-1]
		page, err = r.page(ctx, nextPageSQL, last.CreatedAt, last.ID, r.batchSize)
	}
}

func (r *RecordReader) page(ctx context.Context, query string, args ...any) ([]recdomain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []recdomain.Record
	for rows.Next() {
		rec, err := recpg.ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
