package auth

import (
	"lottery_backend/internal/config"
	"lottery_backend/internal/repository"
	"lottery_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
)

type serv struct {
	txManager   trm.Manager
	accountRepo repository.AccountRepository
	authRepo    repository.AuthRepository
	jwtConfig   config.JWTConfig
}

func NewAuthService(
	txManager trm.Manager,
	accountRepo repository.AccountRepository,
	authRepo repository.AuthRepository,
	jwtConfig config.JWTConfig,
) service.AuthService {
	return &serv{
		txManager:   txManager,
		accountRepo: accountRepo,
		authRepo:    authRepo,
		jwtConfig:   jwtConfig,
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
