package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// WishlistStorePort - контракт хранилища избранного, ключ - PropertyRecord.ID.
// Каждая мутация синхронно сохраняет полную последовательность до возврата;
// представление в памяти всегда совпадает с сохраненным.
type WishlistStorePort interface {
	// List возвращает текущее содержимое в порядке добавления.
	List(ctx context.Context) ([]domain.PropertyRecord, error)

	// Contains проверяет членство по идентификатору объекта.
	Contains(ctx context.Context, id int64) (bool, error)

	// Toggle - единственная точка добавления: если объект уже в избранном,
	// он удаляется, иначе дописывается в конец. Возвращает обновленную
	// последовательность.
	Toggle(ctx context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error)

	// Remove - безусловное удаление, используется страницей избранного.
	Remove(ctx context.Context, id int64) ([]domain.PropertyRecord, error)
}
