package memory

import (
	"context"
	"sync"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type txKey struct{}

// TxManager - транзакции хранилища в памяти. Пул блокируется при чтении для изменения
// и остаётся заблокированным до конца транзакции, разные пулы не конкурируют.
// Откатов нет: сервисы проверяют все условия до первой записи
type TxManager struct {
	mtx   sync.Mutex
	pools map[int64]*sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{pools: make(map[int64]*sync.Mutex)}
}

// tx - блокировки пулов, взятые одной транзакцией
type tx struct {
	manager *TxManager
	held    map[int64]*sync.Mutex
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	// Вложенный вызов присоединяется к внешней транзакции
	if _, ok := ctx.Value(txKey{}).(*tx); ok {
		return fn(ctx)
	}

	t := &tx{manager: m, held: make(map[int64]*sync.Mutex)}
	defer t.release()

	return fn(context.WithValue(ctx, txKey{}, t))
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (m *TxManager) poolLock(id int64) *sync.Mutex {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	l, ok := m.pools[id]
	if !ok {
		l = &sync.Mutex{}
		m.pools[id] = l
	}
	return l
}

// lockPool - аналог SELECT ... FOR UPDATE. Вне транзакции ничего не блокирует
func lockPool(ctx context.Context, id int64) {
	t, ok := ctx.Value(txKey{}).(*tx)
	if !ok {
		return
	}
	if _, held := t.held[id]; held {
		return
	}

	l := t.manager.poolLock(id)
	l.Lock()
	t.held[id] = l
}

func (t *tx) release() {
	for id, l := range t.held {
		l.Unlock()
		delete(t.held, id)
	}
}
