package usecase

import (
	"context"
	"errors"

	"generator-stats-service/internal/platform/logger"
	"generator-stats-service/internal/records/core/domain"
	"generator-stats-service/internal/records/core/ports"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidPage    = errors.New("invalid limit or offset")
)

type QueryRecordUseCase struct {
	repo ports.RecordRepositoryPort
}

func NewQueryRecordUseCase(repo ports.RecordRepositoryPort) *QueryRecordUseCase {
	return &QueryRecordUseCase{repo: repo}
}

func (uc *QueryRecordUseCase) Get(ctx context.Context, id string) (*domain.Record, error) {
	logger.C(ctx).Debug().Str("id", id).Msg("request to get record")

	r, err := uc.repo.FindRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRecordNotFound
	}
	return r, nil
}

// List pages through records newest first. A zero limit means DefaultListLimit.
func (uc *QueryRecordUseCase) List(ctx context.Context, limit, offset int) ([]domain.Record, error) {
	if limit == 0 {
		limit = DefaultListLimit
	}
	if limit < 0 || limit > MaxListLimit || offset < 0 {
		return nil, ErrInvalidPage
	}

	logger.C(ctx).Debug().Int("limit", limit).Int("offset", offset).Msg("request to list records")

	return uc.repo.ListRecords(ctx, limit, offset)
}

func (uc *QueryRecordUseCase) Delete(ctx context.Context, id string) error {
	logger.C(ctx).Debug().Str("id", id).Msg("request to delete record")

	deleted, err := uc.repo.DeleteRecord(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRecordNotFound
	}
	return nil
}

func (uc *QueryRecordUseCase) CountAll(ctx context.Context) (int64, error) {
	return uc.repo.CountRecords(ctx)
}
