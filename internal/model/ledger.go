package model

import "time"

type EventKind string

const (
	EventPoolCreated     EventKind = "pool_created"
	EventEntered         EventKind = "entered"
	EventRevealScheduled EventKind = "reveal_scheduled"
	EventWinnerPicked    EventKind = "winner_picked"
)

// Event Запись журнала исполнения пула (только добавление)
type Event struct {
	ID        int64
	PoolID    int64
	Kind      EventKind
	Actor     string
	Amount    int64
	Data      map[string]any
	CreatedAt time.Time
}

type PayoutKind string

const (
	PayoutWinner   PayoutKind = "winner"
	PayoutOperator PayoutKind = "operator"
)

// Payout Перевод средств из пула
type Payout struct {
	ID        int64
	PoolID    int64
	Recipient string
	Kind      PayoutKind
	Amount    int64
	CreatedAt time.Time
}

// Block Запись локальной цепочки энтропии
type Block struct {
	Height    uint64
	Hash      []byte
	PrevHash  []byte
	Nonce     []byte
	CreatedAt time.Time
}
