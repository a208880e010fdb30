package account

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"
	"math"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/rs/zerolog/log"
)

type serv struct {
	accountRepo repository.AccountRepository
	txManager   trm.Manager
}

func NewAccountService(accountRepo repository.AccountRepository, txManager trm.Manager) service.AccountService {
	return &serv{
		accountRepo: accountRepo,
		txManager:   txManager,
	}
}

// Deposit - пополнение баланса. Возвращает новый баланс
func (s *serv) Deposit(ctx context.Context, address string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: deposit amount must be positive", model.ErrInvalidParameter)
	}

	var balance int64
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.accountRepo.GetBalance(txCtx, address)
		if err != nil {
			return err
		}
		if current > math.MaxInt64-amount {
			return fmt.Errorf("%w: deposit would overflow balance", model.ErrInvalidParameter)
		}

		if err = s.accountRepo.AddBalance(txCtx, address, amount); err != nil {
			return err
		}

		balance, err = s.accountRepo.GetBalance(txCtx, address)
		return err
	})
	if err != nil {
		return 0, err
	}

	log.Info().Str("address", address).Int64("amount", amount).Msg("deposit")
	return balance, nil
}

func (s *serv) GetAccount(ctx context.Context, address string) (*model.Account, error) {
	return s.accountRepo.GetAccountByAddress(ctx, address)
}
