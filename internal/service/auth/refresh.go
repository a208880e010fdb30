package auth

import (
	"context"
	"lottery_backend/internal/model"
	"lottery_backend/pkg/token"
	"time"
)

func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error) {
	// Получение сессии с хэшем refresh токена
	session, err := s.authRepo.GetSession(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	if time.Now().After(session.ExpiresAt) {
		return "", model.ErrUnauthorized
	}

	// Верификация переданного refresh токена с хэшем из хранилища
	if !token.VerifyRefreshToken(data.RefreshToken, session.RefreshToken) {
		return "", model.ErrUnauthorized
	}

	account, err := s.accountRepo.GetAccountByID(ctx, session.AccountID)
	if err != nil {
		return "", err
	}

	// Генерация нового access токена
	return token.GenerateAccessToken(
		account,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
