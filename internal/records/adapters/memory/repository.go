// Package memory keeps records in process memory. It backs the "memory"
// database driver used for local runs and demos; nothing survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/ports"
)

type RecordRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{records: make(map[string]domain.Record)}
}

var _ ports.RecordRepositoryPort = (*RecordRepository)(nil)

func (r *RecordRepository) InsertRecord(ctx context.Context, rec *domain.Record) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[rec.ID]; ok {
		return false, nil
	}
	r.records[rec.ID] = clone(*rec)
	return true, nil
}

func (r *RecordRepository) FindRecord(ctx context.Context, id string) (*domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return nil, nil
	}
	out := clone(rec)
	return &out, nil
}

func (r *RecordRepository) ListRecords(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all := r.snapshot(func(domain.Record) bool { return true })
	slices.SortFunc(all, func(a, b domain.Record) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if offset >= len(all) {
		return []domain.Record{}, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (r *RecordRepository) FindCreatedAfter(ctx context.Context, after time.Time) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.snapshot(func(rec domain.Record) bool { return rec.CreatedAt.After(after) }), nil
}

func (r *RecordRepository) DeleteRecord(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}

func (r *RecordRepository) CountRecords(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.records)), nil
}

func (r *RecordRepository) snapshot(keep func(domain.Record) bool) []domain.Record {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Record, 0, len(r.records))
	for _, rec := range r.records {
		if keep(rec) {
			out = append(out, clone(rec))
		}
	}
	return out
}

// clone copies the slice and pointer fields so callers cannot mutate stored records.
func clone(r domain.Record) domain.Record {
	r.SelectedLanguages = append([]string{}, r.SelectedLanguages...)
	r.EnableHibernateCache = cloneBool(r.EnableHibernateCache)
	r.EnableSwaggerCodegen = cloneBool(r.EnableSwaggerCodegen)
	r.UseSass = cloneBool(r.UseSass)
	r.EnableTranslation = cloneBool(r.EnableTranslation)
	r.HasProtractor = cloneBool(r.HasProtractor)
	r.HasGatling = cloneBool(r.HasGatling)
	r.HasCucumber = cloneBool(r.HasCucumber)
	if r.ServerPort != nil {
		r.ServerPort = domain.Int(*r.ServerPort)
	}
	return r
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	return domain.Bool(*b)
}
