// Package entropy описывает внешний источник непредсказуемых значений,
// по которым выбирается победитель.
//
// Позиция источника монотонно растёт. Значение для метки становится
// известным и проверяемым только после того, как источник дошёл до неё.
package entropy

import (
	"context"
	"math/big"
)

type Source interface {
	// CurrentPosition текущая позиция (высота последней записи)
	CurrentPosition(ctx context.Context) (uint64, error)
	// ValueAt значение для метки; model.ErrNotRevealed, если позиция ещё не дошла до метки
	ValueAt(ctx context.Context, marker uint64) ([]byte, error)
}

// ToInt - значение как беззнаковое big-endian число
func ToInt(value []byte) *big.Int {
	return new(big.Int).SetBytes(value)
}
