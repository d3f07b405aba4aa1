package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound возвращается Get для отсутствующего ключа.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore — долговременное key-value хранилище для состояния
// сессии (текущий пользователь и флаг онбординга).
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error
}
