package memory

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"sync"
)

type blockRepo struct {
	mtx    sync.RWMutex
	blocks []model.Block // индекс = высота
}

func NewBlockRepository() repository.BlockRepository {
	return &blockRepo{}
}

func (r *blockRepo) AppendBlock(_ context.Context, block *model.Block) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if block.Height != uint64(len(r.blocks)) {
		return fmt.Errorf("block height %d out of order, expected %d", block.Height, len(r.blocks))
	}
	r.blocks = append(r.blocks, *block)
	return nil
}

func (r *blockRepo) LastBlock(_ context.Context) (*model.Block, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if len(r.blocks) == 0 {
		return nil, model.ErrBlockNotFound
	}
	b := r.blocks[len(r.blocks)-1]
	return &b, nil
}

func (r *blockRepo) GetBlock(_ context.Context, height uint64) (*model.Block, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	if height >= uint64(len(r.blocks)) {
		return nil, model.ErrBlockNotFound
	}
	b := r.blocks[height]
	return &b, nil
}

func (r *blockRepo) ListBlocks(_ context.Context, from, to uint64) ([]model.Block, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.Block, 0)
	for h := from; h <= to && h < uint64(len(r.blocks)); h++ {
		res = append(res, r.blocks[h])
	}
	return res, nil
}
