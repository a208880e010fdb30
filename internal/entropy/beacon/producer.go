package beacon

import (
	"context"
	"crypto/rand"
	"errors"
	"lottery_backend/internal/metrics"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Producer - единственный писатель локальной цепочки энтропии
type Producer struct {
	mtx      sync.Mutex
	repo     repository.BlockRepository
	interval time.Duration
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewProducer(repo repository.BlockRepository, interval time.Duration, m *metrics.Metrics) *Producer {
	return &Producer{
		repo:     repo,
		interval: interval,
		metrics:  m,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Init - создаёт генезис-блок, если цепочка пуста
func (p *Producer) Init(ctx context.Context) error {
	_, err := p.repo.LastBlock(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrBlockNotFound) {
		return err
	}

	_, err = p.Produce(ctx)
	return err
}

// Produce - добавляет следующий блок
func (p *Producer) Produce(ctx context.Context) (*model.Block, error) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	var (
		height   uint64
		prevHash = make([]byte, 32)
	)
	last, err := p.repo.LastBlock(ctx)
	switch {
	case err == nil:
		height = last.Height + 1
		prevHash = last.Hash
	case errors.Is(err, model.ErrBlockNotFound):
	default:
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err = rand.Read(nonce); err != nil {
		return nil, err
	}

	// Postgres хранит время с точностью до микросекунд
	createdAt := p.now().Truncate(time.Microsecond)
	block := &model.Block{
		Height:    height,
		PrevHash:  prevHash,
		Nonce:     nonce,
		CreatedAt: createdAt,
		Hash:      blockHash(prevHash, height, createdAt, nonce),
	}

	if err = p.repo.AppendBlock(ctx, block); err != nil {
		return nil, err
	}

	p.metrics.EntropyHeight.Set(float64(height))
	return block, nil
}

// Run - производит блоки с заданным интервалом до отмены контекста
func (p *Producer) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			block, err := p.Produce(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.Error().Err(err).Msg("failed to produce entropy block")
				}
				continue
			}
			log.Debug().Uint64("height", block.Height).Msg("entropy block produced")
		}
	}
}
