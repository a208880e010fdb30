package memory

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"maps"
	"sync"
	"time"
)

type payoutRepo struct {
	mtx     sync.RWMutex
	payouts []model.Payout
}

func NewPayoutRepository() repository.PayoutRepository {
	return &payoutRepo{}
}

func (r *payoutRepo) CreatePayout(_ context.Context, payout *model.Payout) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p := *payout
	p.ID = int64(len(r.payouts) + 1)
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	r.payouts = append(r.payouts, p)
	return nil
}

func (r *payoutRepo) ListPayouts(_ context.Context, poolID int64) ([]model.Payout, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.Payout, 0)
	for _, p := range r.payouts {
		if p.PoolID == poolID {
			res = append(res, p)
		}
	}
	return res, nil
}

type eventRepo struct {
	mtx    sync.RWMutex
	events []model.Event
}

func NewEventRepository() repository.EventRepository {
	return &eventRepo{}
}

func (r *eventRepo) AppendEvent(_ context.Context, event *model.Event) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	e := *event
	e.ID = int64(len(r.events) + 1)
	e.Data = maps.Clone(event.Data)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	r.events = append(r.events, e)
	return nil
}

func (r *eventRepo) ListEvents(_ context.Context, poolID int64) ([]model.Event, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	res := make([]model.Event, 0)
	for _, e := range r.events {
		if e.PoolID == poolID {
			res = append(res, e)
		}
	}
	return res, nil
}
