package pool

import (
	"lottery_backend/internal/entropy"
	"math/big"
)

// Доля победителя в процентах. Остаток от деления уходит оператору
const winnerSharePercent = 80

// splitPayout - winner = floor(held * 80 / 100) без переполнения, operator = held - winner
func splitPayout(held int64) (winner, operator int64) {
	winner = held/100*winnerSharePercent + held%100*winnerSharePercent/100
	operator = held - winner
	return winner, operator
}

// winnerIndex - value mod n по списку участников в порядке вставки
func winnerIndex(value []byte, n int) int {
	idx := new(big.Int).Mod(entropy.ToInt(value), big.NewInt(int64(n)))
	return int(idx.Int64())
}
