package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/ports"
)

type RecordRepository struct {
	db DB
}

func NewRecordRepository(db DB) *RecordRepository {
	return &RecordRepository{db: db}
}

var _ ports.RecordRepositoryPort = (*RecordRepository)(nil)

// SQL templates
var (
	insertRecordSQL = fmt.Sprintf(`
INSERT INTO yorc (%s)
VALUES (%s)
ON CONFLICT (id) DO NOTHING;
`, RecordColumns, placeholders(len(columns)))

	findRecordSQL = `SELECT ` + RecordColumns + ` FROM yorc WHERE id = $1`

	listRecordsSQL = `SELECT ` + RecordColumns + ` FROM yorc ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`

	findCreatedAfterSQL = `SELECT ` + RecordColumns + ` FROM yorc WHERE created_at > $1`
)

const (
	deleteRecordSQL = `DELETE FROM yorc WHERE id = $1`
	countRecordsSQL = `SELECT COUNT(*) FROM yorc`
)

func placeholders(n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(ph, ", ")
}

func (r *RecordRepository) InsertRecord(ctx context.Context, rec *domain.Record) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertRecordSQL, recordArgs(rec)...)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate id (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *RecordRepository) FindRecord(ctx context.Context, id string) (*domain.Record, error) {
	out, err := r.query(ctx, findRecordSQL, id)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return &out[0], nil
}

func (r *RecordRepository) ListRecords(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	return r.query(ctx, listRecordsSQL, limit, offset)
}

func (r *RecordRepository) FindCreatedAfter(ctx context.Context, after time.Time) ([]domain.Record, error) {
	return r.query(ctx, findCreatedAfterSQL, after.UTC())
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteRecordSQL, id)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *RecordRepository) CountRecords(ctx context.Context) (int64, error) {
	rows, err := r.db.QueryContext(ctx, countRecordsSQL)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var n int64
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *RecordRepository) query(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		rec, err := ScanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
