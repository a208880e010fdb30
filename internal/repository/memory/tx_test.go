package memory

import (
	"context"
	"lottery_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPools(t *testing.T, repo *poolRepo, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := repo.CreatePool(context.Background(), &model.Pool{TicketPrice: 1, MaxPlayers: 1})
		require.NoError(t, err)
	}
}

// holdPool - транзакция держит пул, пока не закрыт release
func holdPool(t *testing.T, m *TxManager, repo *poolRepo, id int64, release <-chan struct{}) {
	t.Helper()
	locked := make(chan struct{})
	go func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error {
			_, err := repo.GetPoolForUpdate(ctx, id)
			close(locked)
			<-release
			return err
		})
	}()
	<-locked
}

func TestTxManagerDifferentPoolsDoNotContend(t *testing.T) {
	m := NewTxManager()
	repo := NewPoolRepository().(*poolRepo)
	createPools(t, repo, 2)

	release := make(chan struct{})
	defer close(release)
	holdPool(t, m, repo, 1, release)

	done := make(chan error, 1)
	go func() {
		done <- m.Do(context.Background(), func(ctx context.Context) error {
			_, err := repo.GetPoolForUpdate(ctx, 2)
			return err
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("transaction on another pool is blocked")
	}
}

func TestTxManagerSamePoolIsSerialized(t *testing.T) {
	m := NewTxManager()
	repo := NewPoolRepository().(*poolRepo)
	createPools(t, repo, 1)

	release := make(chan struct{})
	holdPool(t, m, repo, 1, release)

	done := make(chan struct{})
	go func() {
		_ = m.Do(context.Background(), func(ctx context.Context) error {
			_, err := repo.GetPoolForUpdate(ctx, 1)
			return err
		})
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("second transaction entered a locked pool")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock was not released at the end of the transaction")
	}
}

func TestTxManagerNestedDoReusesLocks(t *testing.T) {
	m := NewTxManager()
	repo := NewPoolRepository().(*poolRepo)
	createPools(t, repo, 1)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		if _, err := repo.GetPoolForUpdate(ctx, 1); err != nil {
			return err
		}
		return m.Do(ctx, func(ctx context.Context) error {
			_, err := repo.GetPoolForUpdate(ctx, 1)
			return err
		})
	})
	require.NoError(t, err)

	// Вне транзакции блокировок нет
	p, err := repo.GetPoolForUpdate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)

	_, err = repo.GetPoolForUpdate(context.Background(), 9)
	require.ErrorIs(t, err, model.ErrPoolNotFound)
}
