package ethsource

import (
	"context"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/model"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChain struct {
	height      uint64
	headerCalls int
	headerByNum map[uint64]*types.Header
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	return f.height, nil
}

func (f *fakeChain) HeaderByNumber(_ context.Context, number *big.Int) (*types.Header, error) {
	f.headerCalls++
	return f.headerByNum[number.Uint64()], nil
}

func TestSourceValueAt(t *testing.T) {
	ctx := context.Background()
	header := &types.Header{Number: big.NewInt(12), Difficulty: big.NewInt(1), Extra: []byte("x")}
	chain := &fakeChain{
		height:      10,
		headerByNum: map[uint64]*types.Header{12: header},
	}

	src, err := New(chain, Options{CacheSize: 8})
	require.NoError(t, err)

	_, err = src.ValueAt(ctx, 12)
	require.ErrorIs(t, err, model.ErrNotRevealed)
	assert.Zero(t, chain.headerCalls)

	chain.height = 15
	value, err := src.ValueAt(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, header.Hash().Bytes(), value)

	// второй раз из кэша
	_, err = src.ValueAt(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 1, chain.headerCalls)
}

func TestSourceWaitsForConfirmations(t *testing.T) {
	ctx := context.Background()
	header := &types.Header{Number: big.NewInt(20), Difficulty: big.NewInt(1)}
	chain := &fakeChain{
		height:      20,
		headerByNum: map[uint64]*types.Header{20: header},
	}
	m := metrics.NewNop()

	src, err := New(chain, Options{CacheSize: 8, Confirmations: 6, Metrics: m})
	require.NoError(t, err)

	pos, err := src.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(14), pos)
	assert.Equal(t, float64(14), testutil.ToFloat64(m.EntropyHeight))

	// Голова дошла до метки, но блок ещё может уйти при реорганизации
	_, err = src.ValueAt(ctx, 20)
	require.ErrorIs(t, err, model.ErrNotRevealed)
	assert.Zero(t, chain.headerCalls)

	chain.height = 26
	value, err := src.ValueAt(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, header.Hash().Bytes(), value)
	assert.Equal(t, float64(20), testutil.ToFloat64(m.EntropyHeight))
}

func TestSourcePositionBelowConfirmations(t *testing.T) {
	src, err := New(&fakeChain{height: 3}, Options{CacheSize: 8, Confirmations: 12})
	require.NoError(t, err)

	pos, err := src.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pos)
}
