package converter

import (
	"encoding/hex"
	dto "lottery_backend/internal/api/dto/pool"
	"lottery_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// FormatAmount - минимальные единицы в десятичную строку, например 150 при decimals=2 -> "1.5"
func FormatAmount(amount int64, decimals int32) string {
	return decimal.New(amount, -decimals).String()
}

func ToCreatePool(creator string, req dto.CreatePoolRequest) model.CreatePool {
	return model.CreatePool{
		Creator:     creator,
		TicketPrice: req.TicketPrice,
		MaxPlayers:  req.MaxPlayers,
	}
}

func ToEnter(poolID int64, payer string, req dto.EnterRequest) model.Enter {
	return model.Enter{
		PoolID:  poolID,
		Payer:   payer,
		Payment: req.Payment,
	}
}

func ToPoolResponse(view model.PoolView, decimals int32) dto.PoolResponse {
	p := view.Pool

	res := dto.PoolResponse{
		ID:              p.ID,
		Creator:         p.Creator,
		TicketPrice:     p.TicketPrice,
		TicketPriceText: FormatAmount(p.TicketPrice, decimals),
		MaxPlayers:      p.MaxPlayers,
		State:           p.State.String(),
		Players:         nonNil(p.Entrants),
		RevealPoint:     p.RevealPoint,
		HeldFunds:       p.HeldFunds,
		CanPickWinner:   view.CanPickWinner,
		Stats: dto.Stats{
			UniquePlayers:      view.Stats.UniquePlayers,
			TotalEntries:       view.Stats.TotalEntries,
			PrizePool:          view.Stats.PrizePool,
			PrizePoolText:      FormatAmount(view.Stats.PrizePool, decimals),
			ProgressPercentage: view.Stats.ProgressPercentage,
			AddressEntryCount:  view.Stats.AddressEntryCount,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
	if p.State == model.PoolClosed {
		winner := p.Winner
		res.Winner = &winner
	}
	if p.ClosedAt != nil {
		closedAt := p.ClosedAt.Format(time.RFC3339)
		res.ClosedAt = &closedAt
	}
	return res
}

func ToDrawResponse(d model.DrawResult) dto.DrawResponse {
	return dto.DrawResponse{
		PoolID:          d.PoolID,
		Winner:          d.Winner,
		WinnerIndex:     d.WinnerIndex,
		EntropyValue:    hex.EncodeToString(d.EntropyValue),
		WinnerPayout:    d.WinnerPayout,
		OperatorPayout:  d.OperatorPayout,
		OperatorAddress: d.OperatorAddress,
	}
}

func ToEventsResponse(events []model.Event) dto.EventsResponse {
	res := dto.EventsResponse{Events: make([]dto.Event, len(events))}
	for i, e := range events {
		res.Events[i] = dto.Event{
			ID:        e.ID,
			Kind:      string(e.Kind),
			Actor:     e.Actor,
			Amount:    e.Amount,
			Data:      e.Data,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
	}
	return res
}

func ToPayoutsResponse(payouts []model.Payout) dto.PayoutsResponse {
	res := dto.PayoutsResponse{Payouts: make([]dto.Payout, len(payouts))}
	for i, p := range payouts {
		res.Payouts[i] = dto.Payout{
			Recipient: p.Recipient,
			Kind:      string(p.Kind),
			Amount:    p.Amount,
			CreatedAt: p.CreatedAt.Format(time.RFC3339),
		}
	}
	return res
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
