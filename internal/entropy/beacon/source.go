package beacon

import (
	"context"
	"errors"
	"lottery_backend/internal/entropy"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
)

type source struct {
	repo repository.BlockRepository
}

// NewSource - значение для метки h это хэш блока h
func NewSource(repo repository.BlockRepository) entropy.Source {
	return &source{repo: repo}
}

func (s *source) CurrentPosition(ctx context.Context) (uint64, error) {
	last, err := s.repo.LastBlock(ctx)
	if err != nil {
		return 0, err
	}
	return last.Height, nil
}

func (s *source) ValueAt(ctx context.Context, marker uint64) ([]byte, error) {
	b, err := s.repo.GetBlock(ctx, marker)
	if err != nil {
		if errors.Is(err, model.ErrBlockNotFound) {
			return nil, model.ErrNotRevealed
		}
		return nil, err
	}
	return b.Hash, nil
}
