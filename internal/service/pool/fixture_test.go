package pool

import (
	"context"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/repository/memory"
	"lottery_backend/internal/service"
	"lottery_backend/internal/service/registry"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

const operator = "operator"

type fakeSource struct {
	mtx      sync.Mutex
	position uint64
	values   map[uint64][]byte
}

func (f *fakeSource) CurrentPosition(context.Context) (uint64, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return f.position, nil
}

func (f *fakeSource) ValueAt(_ context.Context, marker uint64) ([]byte, error) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.position < marker {
		return nil, model.ErrNotRevealed
	}
	if v, ok := f.values[marker]; ok {
		return v, nil
	}
	return big.NewInt(int64(marker)).Bytes(), nil
}

// reveal - сдвигает источник до метки и фиксирует значение
func (f *fakeSource) reveal(marker uint64, value int64) {
	f.mtx.Lock()
	defer f.mtx.Unlock()

	if f.values == nil {
		f.values = make(map[uint64][]byte)
	}
	f.values[marker] = big.NewInt(value).FillBytes(make([]byte, 32))
	if f.position < marker {
		f.position = marker
	}
}

type lotteryCfg struct {
	revealDelay uint64
}

func (c lotteryCfg) MaxPlayersLimit() int    { return 1000 }
func (c lotteryCfg) RevealDelay() uint64     { return c.revealDelay }
func (c lotteryCfg) OperatorAddress() string { return operator }
func (c lotteryCfg) AmountDecimals() int32   { return 0 }

type fixture struct {
	ctx      context.Context
	pools    service.PoolService
	registry service.RegistryService
	poolRepo repository.PoolRepository
	accounts repository.AccountRepository
	payouts  repository.PayoutRepository
	events   repository.EventRepository
	source   *fakeSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := newFixtureWithoutOperator(t)
	require.NoError(t, f.accounts.EnsureAccount(f.ctx, operator))
	return f
}

// newFixtureWithoutOperator - счёт получателя комиссии не создан заранее
func newFixtureWithoutOperator(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		ctx:      context.Background(),
		poolRepo: memory.NewPoolRepository(),
		accounts: memory.NewAccountRepository(),
		payouts:  memory.NewPayoutRepository(),
		events:   memory.NewEventRepository(),
		source:   &fakeSource{position: 10},
	}
	tx := memory.NewTxManager()
	cfg := lotteryCfg{revealDelay: 3}
	m := metrics.NewNop()

	f.pools = NewPoolService(Deps{
		PoolRepo:    f.poolRepo,
		AccountRepo: f.accounts,
		PayoutRepo:  f.payouts,
		EventRepo:   f.events,
		Source:      f.source,
		LotteryCfg:  cfg,
		Metrics:     m,
		TxManager:   tx,
	})
	f.registry = registry.NewRegistryService(f.poolRepo, f.events, cfg, m, tx)
	return f
}

func (f *fixture) fund(t *testing.T, address string, amount int64) {
	t.Helper()
	require.NoError(t, f.accounts.EnsureAccount(f.ctx, address))
	require.NoError(t, f.accounts.AddBalance(f.ctx, address, amount))
}

func (f *fixture) balance(t *testing.T, address string) int64 {
	t.Helper()
	b, err := f.accounts.GetBalance(f.ctx, address)
	require.NoError(t, err)
	return b
}

func (f *fixture) createPool(t *testing.T, price int64, maxPlayers int) int64 {
	t.Helper()
	id, err := f.registry.CreatePool(f.ctx, model.CreatePool{Creator: "creator", TicketPrice: price, MaxPlayers: maxPlayers})
	require.NoError(t, err)
	return id
}

func (f *fixture) enter(t *testing.T, poolID int64, payer string, payment int64) *model.Pool {
	t.Helper()
	p, err := f.pools.Enter(f.ctx, model.Enter{PoolID: poolID, Payer: payer, Payment: payment})
	require.NoError(t, err)
	return p
}
