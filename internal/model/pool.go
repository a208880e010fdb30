package model

import "time"

// PoolState Состояние пула
type PoolState int

const (
	PoolOpen PoolState = iota
	PoolAwaitingReveal
	PoolClosed
)

func (s PoolState) String() string {
	switch s {
	case PoolOpen:
		return "open"
	case PoolAwaitingReveal:
		return "awaiting_reveal"
	case PoolClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Pool Один розыгрыш лотереи
type Pool struct {
	ID          int64
	Creator     string
	TicketPrice int64
	MaxPlayers  int
	State       PoolState
	RevealPoint *uint64 // nil пока пул открыт
	Winner      string  // пустая строка до закрытия
	HeldFunds   int64
	Entrants    []string // порядок вставки важен
	CreatedAt   time.Time
	ClosedAt    *time.Time
}

type CreatePool struct {
	Creator     string
	TicketPrice int64
	MaxPlayers  int
}

type Enter struct {
	PoolID  int64
	Payer   string
	Payment int64
}

// PoolStats Вычисляемые значения для клиента
type PoolStats struct {
	UniquePlayers      int
	TotalEntries       int
	PrizePool          int64
	ProgressPercentage float64
	AddressEntryCount  int
}

// PoolView Пул вместе с флагом готовности к розыгрышу
type PoolView struct {
	Pool          *Pool
	CanPickWinner bool
	Stats         PoolStats
}

// DrawResult Итог розыгрыша
type DrawResult struct {
	PoolID          int64
	Winner          string
	WinnerIndex     int
	EntropyValue    []byte
	WinnerPayout    int64
	OperatorPayout  int64
	OperatorAddress string
}
