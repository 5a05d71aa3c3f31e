package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// PropertyBackendPort - контракт клиента, читающего объявления из backend'а.
// Без ретраев и без кэша: один вызов - один запрос, ошибка поднимается
// до слоя отображения как есть.
type PropertyBackendPort interface {
	// FetchBySegment читает полный набор объявлений рыночного сегмента.
	FetchBySegment(ctx context.Context, segment domain.Segment, token string) ([]domain.PropertyRecord, error)

	// GetByID возвращает одну карточку, обогащенную контактами продавца.
	GetByID(ctx context.Context, id int64, token string) (*domain.PropertyDetails, error)

	// ListAll возвращает все объявления без разбивки по сегментам (админка).
	ListAll(ctx context.Context, token string) ([]domain.PropertyRecord, error)
}
