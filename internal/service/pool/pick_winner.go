package pool

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"lottery_backend/internal/model"
	"math"
	"time"

	"github.com/rs/zerolog/log"
)

// PickWinner - розыгрыш после раскрытия энтропии. Вызвать может кто угодно.
// Состояние пула обновляется до переводов, повторный вызов получает ErrAlreadyClosed
func (s *serv) PickWinner(ctx context.Context, poolID int64) (*model.DrawResult, error) {
	var res *model.DrawResult

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		pool, err := s.poolRepo.GetPoolForUpdate(txCtx, poolID)
		if err != nil {
			return err
		}

		switch pool.State {
		case model.PoolClosed:
			return model.ErrAlreadyClosed
		case model.PoolOpen:
			return fmt.Errorf("%w: pool is still open", model.ErrNotReady)
		}

		ready, err := s.revealed(txCtx, pool)
		if err != nil {
			return err
		}
		if !ready {
			return fmt.Errorf("%w: waiting for entropy position %d", model.ErrNotReady, *pool.RevealPoint)
		}

		value, err := s.source.ValueAt(txCtx, *pool.RevealPoint)
		if err != nil {
			if errors.Is(err, model.ErrNotRevealed) {
				return fmt.Errorf("%w: %w", model.ErrNotReady, err)
			}
			return fmt.Errorf("read entropy value: %w", err)
		}

		idx := winnerIndex(value, len(pool.Entrants))
		winnerPayout, operatorPayout := splitPayout(pool.HeldFunds)
		res = &model.DrawResult{
			PoolID:          pool.ID,
			Winner:          pool.Entrants[idx],
			WinnerIndex:     idx,
			EntropyValue:    value,
			WinnerPayout:    winnerPayout,
			OperatorPayout:  operatorPayout,
			OperatorAddress: s.lotteryCfg.OperatorAddress(),
		}

		// Получатели проверяются до первой записи: неудачный перевод не должен оставить пул закрытым без выплат
		if err = s.accountRepo.EnsureAccount(txCtx, res.OperatorAddress); err != nil {
			return err
		}
		credits := map[string]int64{res.Winner: winnerPayout}
		credits[res.OperatorAddress] += operatorPayout
		if err = s.checkCredits(txCtx, credits); err != nil {
			return err
		}

		// Сначала закрываем пул, потом переводим средства
		closedAt := time.Now().UTC()
		pool.Winner = res.Winner
		pool.HeldFunds = 0
		pool.State = model.PoolClosed
		pool.ClosedAt = &closedAt
		if err = s.poolRepo.UpdatePool(txCtx, pool); err != nil {
			return err
		}

		if err = s.transfer(txCtx, pool.ID, res.Winner, model.PayoutWinner, winnerPayout); err != nil {
			return err
		}
		if err = s.transfer(txCtx, pool.ID, res.OperatorAddress, model.PayoutOperator, operatorPayout); err != nil {
			return err
		}

		return s.eventRepo.AppendEvent(txCtx, &model.Event{
			PoolID: pool.ID,
			Kind:   model.EventWinnerPicked,
			Actor:  res.Winner,
			Amount: winnerPayout,
			Data: map[string]any{
				"winner_index":    idx,
				"entropy_value":   hex.EncodeToString(value),
				"reveal_point":    *pool.RevealPoint,
				"operator_payout": operatorPayout,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	s.metrics.WinnersPicked.Inc()
	s.metrics.PayoutAmount.WithLabelValues(string(model.PayoutWinner)).Add(float64(res.WinnerPayout))
	s.metrics.PayoutAmount.WithLabelValues(string(model.PayoutOperator)).Add(float64(res.OperatorPayout))
	log.Info().
		Int64("pool_id", res.PoolID).
		Str("winner", res.Winner).
		Int("winner_index", res.WinnerIndex).
		Int64("winner_payout", res.WinnerPayout).
		Int64("operator_payout", res.OperatorPayout).
		Msg("winner picked")

	return res, nil
}

func (s *serv) transfer(ctx context.Context, poolID int64, recipient string, kind model.PayoutKind, amount int64) error {
	if err := s.accountRepo.AddBalance(ctx, recipient, amount); err != nil {
		return fmt.Errorf("pay %s %s: %w", kind, recipient, err)
	}

	return s.payoutRepo.CreatePayout(ctx, &model.Payout{
		PoolID:    poolID,
		Recipient: recipient,
		Kind:      kind,
		Amount:    amount,
	})
}

func (s *serv) checkCredits(ctx context.Context, credits map[string]int64) error {
	for address, amount := range credits {
		balance, err := s.accountRepo.GetBalance(ctx, address)
		if err != nil {
			return fmt.Errorf("payout to %s: %w", address, err)
		}
		if balance > math.MaxInt64-amount {
			return fmt.Errorf("payout to %s: %w", address, model.ErrBalanceOverflow)
		}
	}
	return nil
}

// revealed - источник дошёл до точки раскрытия
func (s *serv) revealed(ctx context.Context, pool *model.Pool) (bool, error) {
	if pool.State != model.PoolAwaitingReveal || pool.RevealPoint == nil {
		return false, nil
	}

	current, err := s.source.CurrentPosition(ctx)
	if err != nil {
		return false, fmt.Errorf("read entropy position: %w", err)
	}
	return current >= *pool.RevealPoint, nil
}
