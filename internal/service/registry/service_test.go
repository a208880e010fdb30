package registry

import (
	"context"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/repository/memory"
	"lottery_backend/internal/service"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lotteryCfg struct{}

func (lotteryCfg) MaxPlayersLimit() int    { return 100 }
func (lotteryCfg) RevealDelay() uint64     { return 1 }
func (lotteryCfg) OperatorAddress() string { return "operator" }
func (lotteryCfg) AmountDecimals() int32   { return 0 }

func newRegistry(t *testing.T) (service.RegistryService, repository.PoolRepository, repository.EventRepository) {
	t.Helper()
	pools := memory.NewPoolRepository()
	events := memory.NewEventRepository()
	return NewRegistryService(pools, events, lotteryCfg{}, metrics.NewNop(), memory.NewTxManager()), pools, events
}

func TestCreatePoolValidation(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		max   int
		ok    bool
	}{
		{name: "minimal", price: 1, max: 1, ok: true},
		{name: "at limit", price: 10, max: 100, ok: true},
		{name: "zero price", price: 0, max: 3},
		{name: "negative price", price: -1, max: 3},
		{name: "zero players", price: 1, max: 0},
		{name: "negative players", price: 1, max: -2},
		{name: "over limit", price: 1, max: 101},
		{name: "bank overflow", price: math.MaxInt64/2 + 1, max: 2},
		{name: "largest bank", price: math.MaxInt64 / 2, max: 2, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, pools, _ := newRegistry(t)

			_, err := reg.CreatePool(context.Background(), model.CreatePool{
				Creator:     "creator",
				TicketPrice: tt.price,
				MaxPlayers:  tt.max,
			})
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, model.ErrInvalidParameter)

			ids, err := pools.ListPoolIDs(context.Background())
			require.NoError(t, err)
			assert.Empty(t, ids)
		})
	}
}

func TestCreatePoolStartsOpenAndEmpty(t *testing.T) {
	ctx := context.Background()
	reg, pools, events := newRegistry(t)

	id, err := reg.CreatePool(ctx, model.CreatePool{Creator: "alice", TicketPrice: 25, MaxPlayers: 4})
	require.NoError(t, err)

	p, err := pools.GetPool(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.PoolOpen, p.State)
	assert.Equal(t, "alice", p.Creator)
	assert.Equal(t, int64(25), p.TicketPrice)
	assert.Equal(t, 4, p.MaxPlayers)
	assert.Empty(t, p.Entrants)
	assert.Zero(t, p.HeldFunds)
	assert.Nil(t, p.RevealPoint)
	assert.Empty(t, p.Winner)

	evs, err := events.ListEvents(ctx, id)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, model.EventPoolCreated, evs[0].Kind)
	assert.Equal(t, "alice", evs[0].Actor)
}

func TestListPoolsKeepsCreationOrder(t *testing.T) {
	ctx := context.Background()
	reg, pools, _ := newRegistry(t)

	var created []int64
	for i := 1; i <= 3; i++ {
		id, err := reg.CreatePool(ctx, model.CreatePool{Creator: "creator", TicketPrice: int64(i), MaxPlayers: i})
		require.NoError(t, err)
		created = append(created, id)
	}

	// Закрытый пул остаётся в реестре
	p, err := pools.GetPool(ctx, created[0])
	require.NoError(t, err)
	p.State = model.PoolClosed
	require.NoError(t, pools.UpdatePool(ctx, p))

	ids, err := reg.ListPools(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, ids)

	// Пулы независимы
	for i, id := range ids {
		p, err := pools.GetPool(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), p.TicketPrice)
	}
}
