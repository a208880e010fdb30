package auth

import (
	"context"
	"fmt"
	"lottery_backend/internal/model"
	"lottery_backend/pkg/pass"
	"lottery_backend/pkg/token"
	"time"
)

func (s *serv) Register(ctx context.Context, account *model.Account) (*model.AuthData, error) {
	if len(account.Address) == 0 || len(account.Password) == 0 {
		return nil, fmt.Errorf("%w: address and password are required", model.ErrInvalidParameter)
	}

	// Хэширование пароля
	passwordHash, err := pass.HashPassword(account.Password)
	if err != nil {
		return nil, err
	}
	account.Password = passwordHash
	account.Balance = 0

	var data *model.AuthData

	// Начало транзакциии
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// 1. Создать счёт в бд
		account.ID, err = s.accountRepo.CreateAccount(ctx, account)
		if err != nil {
			return err
		}

		// 2. Открыть сессию и выпустить токены
		data, err = s.openSession(ctx, account)
		return err
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// openSession - сессия с refresh токеном (в БД только хэш) и access токен
func (s *serv) openSession(ctx context.Context, account *model.Account) (*model.AuthData, error) {
	sessionID := generateSessionID()

	refreshToken, refreshHash, err := token.NewRefreshToken()
	if err != nil {
		return nil, err
	}

	err = s.authRepo.CreateSession(ctx,
		&model.Session{
			ID:           sessionID,
			AccountID:    account.ID,
			RefreshToken: refreshHash,
			ExpiresAt:    time.Now().Add(s.jwtConfig.RefreshTokenDuration()),
		})
	if err != nil {
		return nil, err
	}

	accessToken, err := token.GenerateAccessToken(
		account,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, nil
}
