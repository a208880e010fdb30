package repository

import (
	"context"
	"lottery_backend/internal/model"
)

// PoolRepository - реестр пулов. Пулы никогда не удаляются
type PoolRepository interface {
	CreatePool(ctx context.Context, pool *model.Pool) (id int64, err error)
	GetPool(ctx context.Context, id int64) (*model.Pool, error)
	// GetPoolForUpdate блокирует строку пула до конца транзакции
	GetPoolForUpdate(ctx context.Context, id int64) (*model.Pool, error)
	ListPoolIDs(ctx context.Context) ([]int64, error)
	UpdatePool(ctx context.Context, pool *model.Pool) error

	AddEntrant(ctx context.Context, poolID int64, position int, address string) error
	ListEntrants(ctx context.Context, poolID int64) ([]string, error)
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) (id int64, err error)
	EnsureAccount(ctx context.Context, address string) error
	GetAccountByAddress(ctx context.Context, address string) (*model.Account, error)
	GetAccountByID(ctx context.Context, id int64) (*model.Account, error)

	GetBalance(ctx context.Context, address string) (int64, error)
	AddBalance(ctx context.Context, address string, delta int64) error
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

type PayoutRepository interface {
	CreatePayout(ctx context.Context, payout *model.Payout) error
	ListPayouts(ctx context.Context, poolID int64) ([]model.Payout, error)
}

// EventRepository - журнал исполнения, только добавление
type EventRepository interface {
	AppendEvent(ctx context.Context, event *model.Event) error
	ListEvents(ctx context.Context, poolID int64) ([]model.Event, error)
}

type BlockRepository interface {
	AppendBlock(ctx context.Context, block *model.Block) error
	LastBlock(ctx context.Context) (*model.Block, error)
	GetBlock(ctx context.Context, height uint64) (*model.Block, error)
	ListBlocks(ctx context.Context, from, to uint64) ([]model.Block, error)
}
