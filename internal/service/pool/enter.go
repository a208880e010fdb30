package pool

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"

	"github.com/rs/zerolog/log"
)

// Enter - покупка одного билета. Последний билет закрывает продажу
// и назначает точку раскрытия строго впереди текущей позиции источника энтропии
func (s *serv) Enter(ctx context.Context, req model.Enter) (*model.Pool, error) {
	var (
		res         *model.Pool
		revealPoint *uint64
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, req.PoolID)
		if err != nil {
			return err
		}

		// Все проверки до первой записи
		if req.Payment != pool.TicketPrice {
			return fmt.Errorf("%w: ticket price is %d, got %d", model.ErrWrongPayment, pool.TicketPrice, req.Payment)
		}
		if pool.State != model.PoolOpen || len(pool.Entrants) >= pool.MaxPlayers {
			return model.ErrPoolFull
		}

		balance, err := s.accountRepo.GetBalance(txCtx, req.Payer)
		if err != nil {
			return err
		}
		if balance < req.Payment {
			return model.ErrInsufficientFunds
		}

		position := len(pool.Entrants)
		if position+1 == pool.MaxPlayers {
			current, err := s.source.CurrentPosition(txCtx)
			if err != nil {
				return fmt.Errorf("read entropy position: %w", err)
			}
			rp := current + s.lotteryCfg.RevealDelay()
			revealPoint = &rp
		}

		// Списание с плательщика и зачисление в пул
		if err = s.accountRepo.AddBalance(txCtx, req.Payer, -req.Payment); err != nil {
			return err
		}
		if err = s.poolRepo.AddEntrant(txCtx, pool.ID, position, req.Payer); err != nil {
			return err
		}

		pool.Entrants = append(pool.Entrants, req.Payer)
		pool.HeldFunds += req.Payment
		if revealPoint != nil {
			pool.State = model.PoolAwaitingReveal
			pool.RevealPoint = revealPoint
		}

		if err = s.poolRepo.UpdatePool(txCtx, pool); err != nil {
			return err
		}

		err = s.eventRepo.AppendEvent(txCtx, &model.Event{
			PoolID: pool.ID,
			Kind:   model.EventEntered,
			Actor:  req.Payer,
			Amount: req.Payment,
			Data:   map[string]any{"position": position},
		})
		if err != nil {
			return err
		}

		if revealPoint != nil {
			err = s.eventRepo.AppendEvent(txCtx, &model.Event{
				PoolID: pool.ID,
				Kind:   model.EventRevealScheduled,
				Actor:  req.Payer,
				Data:   map[string]any{"reveal_point": *revealPoint},
			})
			if err != nil {
				return err
			}
		}

		res = pool
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Entries.Inc()
	log.Info().
		Int64("pool_id", res.ID).
		Str("payer", req.Payer).
		Int("entrants", len(res.Entrants)).
		Msg("ticket bought")
	if revealPoint != nil {
		log.Info().Int64("pool_id", res.ID).Uint64("reveal_point", *revealPoint).Msg("pool full, reveal scheduled")
	}

	return res, nil
}
