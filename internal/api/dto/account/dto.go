package account

type DepositRequest struct {
	Amount int64 `json:"amount"` // Сумма депозита
}

type AccountResponse struct {
	Address     string `json:"address"`
	Name        string `json:"name"`
	Balance     int64  `json:"balance"`
	BalanceText string `json:"balance_text"`
}
