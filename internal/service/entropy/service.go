package entropy

import (
	"context"
	"lottery_backend/internal/entropy"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"
)

type serv struct {
	source    entropy.Source
	blockRepo repository.BlockRepository
}

// NewEntropyService - blockRepo равен nil, если энтропия берётся не из локальной цепочки
func NewEntropyService(source entropy.Source, blockRepo repository.BlockRepository) service.EntropyService {
	return &serv{
		source:    source,
		blockRepo: blockRepo,
	}
}

func (s *serv) Head(ctx context.Context) (uint64, error) {
	return s.source.CurrentPosition(ctx)
}

func (s *serv) Value(ctx context.Context, marker uint64) ([]byte, error) {
	return s.source.ValueAt(ctx, marker)
}

// Block - полная запись локальной цепочки для независимой проверки
func (s *serv) Block(ctx context.Context, height uint64) (*model.Block, error) {
	if s.blockRepo == nil {
		return nil, model.ErrBlockNotFound
	}
	return s.blockRepo.GetBlock(ctx, height)
}
