// Package locker serializes check-then-write sections per resource key.
//
// Every implementation runs fn inside a serializable transaction and holds the
// key's lock until that transaction has committed or rolled back.
package locker

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrLockTimeout блокировку не удалось получить за отведенное время
	ErrLockTimeout = errors.New("locker: lock acquire timeout")

	// ErrLock ошибка бэкенда блокировок
	ErrLock = errors.New("locker: lock backend error")
)

// TxRunner менеджер транзакций
type TxRunner interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker выполняет fn под блокировкой ресурса key
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// Local блокировки внутри процесса. Подходит для одного инстанса сервиса.
type Local struct {
	tx    TxRunner
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocal(tx TxRunner) *Local {
	return &Local{tx: tx, locks: make(map[string]*sync.Mutex)}
}

func (l *Local) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	m := l.keyMutex(key)
	m.Lock()
	defer m.Unlock()

	return l.tx.DoSerializable(ctx, fn)
}

func (l *Local) keyMutex(key string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	return m
}
