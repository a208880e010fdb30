package pool

import (
	"context"
	"lottery_backend/internal/model"
)

func (s *serv) GetPool(ctx context.Context, poolID int64) (*model.Pool, error) {
	return s.poolRepo.GetPool(ctx, poolID)
}

func (s *serv) CanPickWinner(ctx context.Context, poolID int64) (bool, error) {
	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return false, err
	}
	return s.revealed(ctx, pool)
}

// GetPoolView - пул, готовность к розыгрышу и вычисляемые значения.
// address необязателен, по нему считается число билетов адреса
func (s *serv) GetPoolView(ctx context.Context, poolID int64, address string) (*model.PoolView, error) {
	pool, err := s.poolRepo.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	canPick, err := s.revealed(ctx, pool)
	if err != nil {
		return nil, err
	}

	return &model.PoolView{
		Pool:          pool,
		CanPickWinner: canPick,
		Stats:         computeStats(pool, address),
	}, nil
}

func (s *serv) GetPlayers(ctx context.Context, poolID int64) ([]string, error) {
	if _, err := s.poolRepo.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.poolRepo.ListEntrants(ctx, poolID)
}

func (s *serv) ListEvents(ctx context.Context, poolID int64) ([]model.Event, error) {
	if _, err := s.poolRepo.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.eventRepo.ListEvents(ctx, poolID)
}

func (s *serv) ListPayouts(ctx context.Context, poolID int64) ([]model.Payout, error) {
	if _, err := s.poolRepo.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.payoutRepo.ListPayouts(ctx, poolID)
}

func computeStats(pool *model.Pool, address string) model.PoolStats {
	unique := make(map[string]struct{}, len(pool.Entrants))
	var own int
	for _, e := range pool.Entrants {
		unique[e] = struct{}{}
		if address != "" && e == address {
			own++
		}
	}

	stats := model.PoolStats{
		UniquePlayers:     len(unique),
		TotalEntries:      len(pool.Entrants),
		PrizePool:         pool.TicketPrice * int64(len(pool.Entrants)),
		AddressEntryCount: own,
	}
	if pool.MaxPlayers > 0 {
		stats.ProgressPercentage = float64(len(pool.Entrants)) / float64(pool.MaxPlayers) * 100
	}
	return stats
}
