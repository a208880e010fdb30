package memory

import (
	"context"
	"lottery_backend/internal/model"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPoolRepository()

	id, err := repo.CreatePool(ctx, &model.Pool{TicketPrice: 1, MaxPlayers: 2, State: model.PoolOpen})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, repo.AddEntrant(ctx, id, 0, "A"))

	p, err := repo.GetPool(ctx, id)
	require.NoError(t, err)
	p.Entrants[0] = "mutated"
	p.HeldFunds = 100

	again, err := repo.GetPool(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, again.Entrants)
	assert.Zero(t, again.HeldFunds)
}

func TestPoolRepositoryEntrantOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewPoolRepository()

	id, err := repo.CreatePool(ctx, &model.Pool{TicketPrice: 1, MaxPlayers: 3})
	require.NoError(t, err)

	require.NoError(t, repo.AddEntrant(ctx, id, 0, "A"))
	require.Error(t, repo.AddEntrant(ctx, id, 2, "B"))
	require.NoError(t, repo.AddEntrant(ctx, id, 1, "A"))

	entrants, err := repo.ListEntrants(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, entrants)

	_, err = repo.GetPool(ctx, 0)
	require.ErrorIs(t, err, model.ErrPoolNotFound)
	require.ErrorIs(t, repo.AddEntrant(ctx, 7, 0, "A"), model.ErrPoolNotFound)
}

func TestAccountRepositoryBalance(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository()

	id, err := repo.CreateAccount(ctx, &model.Account{Address: "alice", Name: "Alice", Password: "hash"})
	require.NoError(t, err)

	_, err = repo.CreateAccount(ctx, &model.Account{Address: "alice"})
	require.ErrorIs(t, err, model.ErrAccountExists)

	// Повторный EnsureAccount не трогает существующий счёт
	require.NoError(t, repo.EnsureAccount(ctx, "alice"))
	acc, err := repo.GetAccountByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hash", acc.Password)

	require.NoError(t, repo.AddBalance(ctx, "alice", 10))
	require.ErrorIs(t, repo.AddBalance(ctx, "alice", -11), model.ErrInsufficientFunds)
	require.NoError(t, repo.AddBalance(ctx, "alice", -10))

	balance, err := repo.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Zero(t, balance)

	require.NoError(t, repo.AddBalance(ctx, "alice", math.MaxInt64))
	require.ErrorIs(t, repo.AddBalance(ctx, "alice", 1), model.ErrBalanceOverflow)
	balance, err = repo.GetBalance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), balance)

	require.ErrorIs(t, repo.AddBalance(ctx, "bob", 1), model.ErrAccountNotFound)
	_, err = repo.GetAccountByAddress(ctx, "bob")
	require.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestBlockRepositoryHeights(t *testing.T) {
	ctx := context.Background()
	repo := NewBlockRepository()

	_, err := repo.LastBlock(ctx)
	require.ErrorIs(t, err, model.ErrBlockNotFound)

	for h := uint64(0); h < 4; h++ {
		require.NoError(t, repo.AppendBlock(ctx, &model.Block{Height: h}))
	}
	require.Error(t, repo.AppendBlock(ctx, &model.Block{Height: 6}))

	last, err := repo.LastBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), last.Height)

	blocks, err := repo.ListBlocks(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, uint64(2), blocks[0].Height)

	_, err = repo.GetBlock(ctx, 4)
	require.ErrorIs(t, err, model.ErrBlockNotFound)
}

func TestLedgerFiltersByPool(t *testing.T) {
	ctx := context.Background()
	payouts := NewPayoutRepository()
	events := NewEventRepository()

	require.NoError(t, payouts.CreatePayout(ctx, &model.Payout{PoolID: 1, Recipient: "A", Kind: model.PayoutWinner, Amount: 8}))
	require.NoError(t, payouts.CreatePayout(ctx, &model.Payout{PoolID: 2, Recipient: "B", Kind: model.PayoutWinner, Amount: 4}))
	require.NoError(t, payouts.CreatePayout(ctx, &model.Payout{PoolID: 1, Recipient: "op", Kind: model.PayoutOperator, Amount: 2}))

	list, err := payouts.ListPayouts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "A", list[0].Recipient)
	assert.Equal(t, "op", list[1].Recipient)

	data := map[string]any{"position": 0}
	require.NoError(t, events.AppendEvent(ctx, &model.Event{PoolID: 1, Kind: model.EventEntered, Data: data}))
	data["position"] = 5

	evs, err := events.ListEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, evs, 1)
	assert.Equal(t, 0, evs[0].Data["position"])
	assert.False(t, evs[0].CreatedAt.IsZero())

	evs, err = events.ListEvents(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, evs)
}

func TestAuthRepositorySessions(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthRepository()

	require.NoError(t, repo.CreateSession(ctx, &model.Session{ID: "s1", AccountID: 1, RefreshToken: "h"}))
	s, err := repo.GetSession(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.AccountID)

	require.NoError(t, repo.DeleteSession(ctx, "s1"))
	_, err = repo.GetSession(ctx, "s1")
	require.ErrorIs(t, err, model.ErrUnauthorized)
}
