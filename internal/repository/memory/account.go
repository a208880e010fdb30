package memory

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"math"
	"sync"
)

type accountRepo struct {
	mtx       sync.RWMutex
	byAddress map[string]*model.Account
	byID      map[int64]*model.Account
	nextID    int64
}

func NewAccountRepository() repository.AccountRepository {
	return &accountRepo{
		byAddress: make(map[string]*model.Account),
		byID:      make(map[int64]*model.Account),
	}
}

func (r *accountRepo) CreateAccount(_ context.Context, account *model.Account) (int64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byAddress[account.Address]; ok {
		return 0, model.ErrAccountExists
	}
	return r.insert(*account), nil
}

// EnsureAccount - создаёт счёт без пароля, если его нет
func (r *accountRepo) EnsureAccount(_ context.Context, address string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.byAddress[address]; !ok {
		r.insert(model.Account{Address: address, Name: address})
	}
	return nil
}

func (r *accountRepo) GetAccountByAddress(_ context.Context, address string) (*model.Account, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	a, ok := r.byAddress[address]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (r *accountRepo) GetAccountByID(_ context.Context, id int64) (*model.Account, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	c := *a
	return &c, nil
}

func (r *accountRepo) GetBalance(_ context.Context, address string) (int64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	a, ok := r.byAddress[address]
	if !ok {
		return 0, model.ErrAccountNotFound
	}
	return a.Balance, nil
}

func (r *accountRepo) AddBalance(_ context.Context, address string, delta int64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	a, ok := r.byAddress[address]
	if !ok {
		return model.ErrAccountNotFound
	}
	if delta > 0 && a.Balance > math.MaxInt64-delta {
		return model.ErrBalanceOverflow
	}
	if a.Balance+delta < 0 {
		return model.ErrInsufficientFunds
	}
	a.Balance += delta
	return nil
}

func (r *accountRepo) insert(a model.Account) int64 {
	r.nextID++
	a.ID = r.nextID
	r.byAddress[a.Address] = &a
	r.byID[a.ID] = &a
	return a.ID
}
