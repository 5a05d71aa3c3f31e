package port

import "context"

// KeyValueStorePort - контракт долговременного клиентского хранилища.
// Явный внедряемый порт вместо неявного глобального состояния: избранное
// и сессия тестируются на in-memory фейке вместо реального хранилища.
// Ключи неймспейсятся вызывающей стороной ("wishlist", "session").
type KeyValueStorePort interface {
	// Get возвращает сырое значение по ключу; nil, если ключа нет.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set синхронно записывает значение. После возврата без ошибки
	// значение гарантированно находится в долговременном хранилище.
	Set(ctx context.Context, key string, value []byte) error

	// Clear удаляет ключ. Отсутствующий ключ - не ошибка.
	Clear(ctx context.Context, key string) error
}
