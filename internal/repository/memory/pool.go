package memory

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"sync"
	"time"
)

type poolRepo struct {
	mtx   sync.RWMutex
	pools []*model.Pool // индекс = id - 1
}

func NewPoolRepository() repository.PoolRepository {
	return &poolRepo{}
}

func (r *poolRepo) CreatePool(_ context.Context, pool *model.Pool) (int64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	stored := clonePool(pool)
	stored.ID = int64(len(r.pools) + 1)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	r.pools = append(r.pools, stored)

	return stored.ID, nil
}

func (r *poolRepo) GetPool(_ context.Context, id int64) (*model.Pool, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	p, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return clonePool(p), nil
}

// GetPoolForUpdate - блокирует пул до конца транзакции TxManager
func (r *poolRepo) GetPoolForUpdate(ctx context.Context, id int64) (*model.Pool, error) {
	if _, err := r.GetPool(ctx, id); err != nil {
		return nil, err
	}

	lockPool(ctx, id)
	return r.GetPool(ctx, id)
}

func (r *poolRepo) ListPoolIDs(_ context.Context) ([]int64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	ids := make([]int64, len(r.pools))
	for i, p := range r.pools {
		ids[i] = p.ID
	}
	return ids, nil
}

func (r *poolRepo) UpdatePool(_ context.Context, pool *model.Pool) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, err := r.get(pool.ID)
	if err != nil {
		return err
	}

	// Участники меняются только через AddEntrant
	p.State = pool.State
	p.RevealPoint = cloneUint64(pool.RevealPoint)
	p.Winner = pool.Winner
	p.HeldFunds = pool.HeldFunds
	p.ClosedAt = cloneTime(pool.ClosedAt)
	return nil
}

func (r *poolRepo) AddEntrant(_ context.Context, poolID int64, position int, address string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, err := r.get(poolID)
	if err != nil {
		return err
	}
	if position != len(p.Entrants) {
		return fmt.Errorf("entrant position %d out of order, pool %d has %d entrants", position, poolID, len(p.Entrants))
	}
	p.Entrants = append(p.Entrants, address)
	return nil
}

func (r *poolRepo) ListEntrants(_ context.Context, poolID int64) ([]string, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	p, err := r.get(poolID)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), p.Entrants...), nil
}

func (r *poolRepo) get(id int64) (*model.Pool, error) {
	if id < 1 || id > int64(len(r.pools)) {
		return nil, model.ErrPoolNotFound
	}
	return r.pools[id-1], nil
}

func clonePool(p *model.Pool) *model.Pool {
	c := *p
	c.Entrants = append([]string(nil), p.Entrants...)
	c.RevealPoint = cloneUint64(p.RevealPoint)
	c.ClosedAt = cloneTime(p.ClosedAt)
	return &c
}

func cloneUint64(v *uint64) *uint64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
