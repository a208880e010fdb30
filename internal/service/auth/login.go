package auth

import (
	"context"
	"errors"
	"lottery_backend/internal/model"
	"lottery_backend/pkg/pass"
)

func (s *serv) Login(ctx context.Context, address, password string) (*model.AuthData, error) {
	// Получение счёта из бд по адресу
	account, err := s.accountRepo.GetAccountByAddress(ctx, address)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, model.ErrUnauthorized
		}
		return nil, err
	}

	// У служебных счетов пароля нет, войти в них нельзя
	if len(account.Password) == 0 || !pass.VerifyPassword(account.Password, password) {
		return nil, model.ErrUnauthorized
	}

	return s.openSession(ctx, account)
}

func (s *serv) Logout(ctx context.Context, sessionID string) error {
	return s.authRepo.DeleteSession(ctx, sessionID)
}
