package account

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository/memory"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.EnsureAccount(ctx, "alice"))
	svc := NewAccountService(repo, memory.NewTxManager())

	balance, err := svc.Deposit(ctx, "alice", 40)
	require.NoError(t, err)
	assert.Equal(t, int64(40), balance)

	balance, err = svc.Deposit(ctx, "alice", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance)

	for _, amount := range []int64{0, -1} {
		_, err = svc.Deposit(ctx, "alice", amount)
		require.ErrorIs(t, err, model.ErrInvalidParameter)
	}

	_, err = svc.Deposit(ctx, "bob", 1)
	require.ErrorIs(t, err, model.ErrAccountNotFound)

	acc, err := svc.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), acc.Balance)
}

func TestDepositRejectsOverflow(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()
	require.NoError(t, repo.EnsureAccount(ctx, "alice"))
	svc := NewAccountService(repo, memory.NewTxManager())

	_, err := svc.Deposit(ctx, "alice", math.MaxInt64)
	require.NoError(t, err)

	_, err = svc.Deposit(ctx, "alice", 1)
	require.ErrorIs(t, err, model.ErrInvalidParameter)

	acc, err := svc.GetAccount(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), acc.Balance)
}
