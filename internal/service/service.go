package service

import (
	"context"
	"lottery_backend/internal/model"
)

// RegistryService - создание пулов и их полный список в порядке создания
type RegistryService interface {
	CreatePool(ctx context.Context, req model.CreatePool) (int64, error)
	ListPools(ctx context.Context) ([]int64, error)
}

// PoolService - машина состояний одного пула: Open -> AwaitingReveal -> Closed
type PoolService interface {
	Enter(ctx context.Context, req model.Enter) (*model.Pool, error)
	PickWinner(ctx context.Context, poolID int64) (*model.DrawResult, error)
	CanPickWinner(ctx context.Context, poolID int64) (bool, error)

	GetPool(ctx context.Context, poolID int64) (*model.Pool, error)
	GetPoolView(ctx context.Context, poolID int64, address string) (*model.PoolView, error)
	GetPlayers(ctx context.Context, poolID int64) ([]string, error)
	ListEvents(ctx context.Context, poolID int64) ([]model.Event, error)
	ListPayouts(ctx context.Context, poolID int64) ([]model.Payout, error)
}

type AccountService interface {
	Deposit(ctx context.Context, address string, amount int64) (balance int64, err error)
	GetAccount(ctx context.Context, address string) (*model.Account, error)
}

type AuthService interface {
	Register(ctx context.Context, account *model.Account) (*model.AuthData, error)
	Login(ctx context.Context, address, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

type EntropyService interface {
	Head(ctx context.Context) (uint64, error)
	Value(ctx context.Context, marker uint64) ([]byte, error)
	Block(ctx context.Context, height uint64) (*model.Block, error)
}
