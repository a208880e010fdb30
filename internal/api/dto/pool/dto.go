package pool

type CreatePoolRequest struct {
	TicketPrice int64 `json:"ticket_price"` // В минимальных единицах, > 0
	MaxPlayers  int   `json:"max_players"`  // > 0 и не больше лимита
}

type CreatePoolResponse struct {
	ID int64 `json:"id"`
}

type ListPoolsResponse struct {
	Pools []int64 `json:"pools"` // В порядке создания
	Total int     `json:"total"` // Размер всего реестра
}

type EnterRequest struct {
	Payment int64 `json:"payment"` // Должен совпадать с ценой билета
}

type PoolResponse struct {
	ID              int64    `json:"id"`
	Creator         string   `json:"creator"`
	TicketPrice     int64    `json:"ticket_price"`
	TicketPriceText string   `json:"ticket_price_text"` // Для отображения
	MaxPlayers      int      `json:"max_players"`
	State           string   `json:"state"`
	Players         []string `json:"players"`
	RevealPoint     *uint64  `json:"reveal_point"` // null пока пул открыт
	Winner          *string  `json:"winner"`       // null до розыгрыша
	HeldFunds       int64    `json:"held_funds"`
	CanPickWinner   bool     `json:"can_pick_winner"`
	Stats           Stats    `json:"stats"`
	CreatedAt       string   `json:"created_at"`
	ClosedAt        *string  `json:"closed_at,omitempty"`
}

type Stats struct {
	UniquePlayers      int     `json:"unique_players"`
	TotalEntries       int     `json:"total_entries"`
	PrizePool          int64   `json:"prize_pool"`
	PrizePoolText      string  `json:"prize_pool_text"`
	ProgressPercentage float64 `json:"progress_percentage"`
	AddressEntryCount  int     `json:"address_entry_count"`
}

type PlayersResponse struct {
	Players []string `json:"players"`
}

type CanPickWinnerResponse struct {
	CanPickWinner bool `json:"can_pick_winner"`
}

type DrawResponse struct {
	PoolID          int64  `json:"pool_id"`
	Winner          string `json:"winner"`
	WinnerIndex     int    `json:"winner_index"`
	EntropyValue    string `json:"entropy_value"` // hex
	WinnerPayout    int64  `json:"winner_payout"`
	OperatorPayout  int64  `json:"operator_payout"`
	OperatorAddress string `json:"operator_address"`
}

type Event struct {
	ID        int64          `json:"id"`
	Kind      string         `json:"kind"`
	Actor     string         `json:"actor"`
	Amount    int64          `json:"amount"`
	Data      map[string]any `json:"data"`
	CreatedAt string         `json:"created_at"`
}

type EventsResponse struct {
	Events []Event `json:"events"`
}

type Payout struct {
	Recipient string `json:"recipient"`
	Kind      string `json:"kind"`
	Amount    int64  `json:"amount"`
	CreatedAt string `json:"created_at"`
}

type PayoutsResponse struct {
	Payouts []Payout `json:"payouts"`
}
