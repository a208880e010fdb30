package ethsource

import (
	"context"
	"fmt"
	"lottery_backend/internal/entropy"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/model"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	lru "github.com/hashicorp/golang-lru"
)

// HeaderReader - часть ethclient.Client, нужная источнику
type HeaderReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

type Options struct {
	CacheSize int
	// Confirmations - глубина, на которой блок уже не уйдёт при реорганизации
	Confirmations uint64
	Metrics       *metrics.Metrics
}

// Source - энтропия из заголовков блоков Ethereum: значение для метки h это хэш блока h.
// Позиция источника отстаёт от головы цепочки на Confirmations блоков
type Source struct {
	client        HeaderReader
	closer        func()
	cache         *lru.Cache
	confirmations uint64
	metrics       *metrics.Metrics
}

var _ entropy.Source = (*Source)(nil)

func Dial(ctx context.Context, url string, opts Options) (*Source, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}

	s, err := New(client, opts)
	if err != nil {
		client.Close()
		return nil, err
	}
	s.closer = client.Close
	return s, nil
}

func New(client HeaderReader, opts Options) (*Source, error) {
	cache, err := lru.New(opts.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Source{
		client:        client,
		cache:         cache,
		confirmations: opts.Confirmations,
		metrics:       opts.Metrics,
	}, nil
}

// CurrentPosition - последний подтверждённый блок
func (s *Source) CurrentPosition(ctx context.Context) (uint64, error) {
	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}

	var pos uint64
	if head > s.confirmations {
		pos = head - s.confirmations
	}
	if s.metrics != nil {
		s.metrics.EntropyHeight.Set(float64(pos))
	}
	return pos, nil
}

// ValueAt - подтверждённые значения не меняются, поэтому кэшируются
func (s *Source) ValueAt(ctx context.Context, marker uint64) ([]byte, error) {
	if v, ok := s.cache.Get(marker); ok {
		return v.([]byte), nil
	}

	pos, err := s.CurrentPosition(ctx)
	if err != nil {
		return nil, err
	}
	if pos < marker {
		return nil, model.ErrNotRevealed
	}

	header, err := s.client.HeaderByNumber(ctx, new(big.Int).SetUint64(marker))
	if err != nil {
		return nil, fmt.Errorf("get header %d: %w", marker, err)
	}

	value := header.Hash().Bytes()
	s.cache.Add(marker, value)
	return value, nil
}

func (s *Source) Close() {
	if s.closer != nil {
		s.closer()
	}
}
