package registry

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"
	"math"

	"github.com/rs/zerolog/log"
)

// CreatePool - новый пул в состоянии Open без участников
func (s *serv) CreatePool(ctx context.Context, req model.CreatePool) (int64, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}

	var id int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		id, err = s.poolRepo.CreatePool(txCtx, &model.Pool{
			Creator:     req.Creator,
			TicketPrice: req.TicketPrice,
			MaxPlayers:  req.MaxPlayers,
			State:       model.PoolOpen,
		})
		if err != nil {
			return err
		}

		return s.eventRepo.AppendEvent(txCtx, &model.Event{
			PoolID: id,
			Kind:   model.EventPoolCreated,
			Actor:  req.Creator,
			Data: map[string]any{
				"ticket_price": req.TicketPrice,
				"max_players":  req.MaxPlayers,
			},
		})
	})
	if err != nil {
		return 0, err
	}

	s.metrics.PoolsCreated.Inc()
	log.Info().
		Int64("pool_id", id).
		Str("creator", req.Creator).
		Int64("ticket_price", req.TicketPrice).
		Int("max_players", req.MaxPlayers).
		Msg("pool created")

	return id, nil
}

func (s *serv) validate(req model.CreatePool) error {
	if req.TicketPrice <= 0 {
		return fmt.Errorf("%w: ticket price must be positive", model.ErrInvalidParameter)
	}
	if req.MaxPlayers <= 0 {
		return fmt.Errorf("%w: max players must be positive", model.ErrInvalidParameter)
	}
	if req.MaxPlayers > s.lotteryCfg.MaxPlayersLimit() {
		return fmt.Errorf("%w: max players must not exceed %d", model.ErrInvalidParameter, s.lotteryCfg.MaxPlayersLimit())
	}
	// Полный банк должен помещаться в int64
	if req.TicketPrice > math.MaxInt64/int64(req.MaxPlayers) {
		return fmt.Errorf("%w: ticket price too large for %d players", model.ErrInvalidParameter, req.MaxPlayers)
	}
	return nil
}

func (s *serv) ListPools(ctx context.Context) ([]int64, error) {
	return s.poolRepo.ListPoolIDs(ctx)
}
