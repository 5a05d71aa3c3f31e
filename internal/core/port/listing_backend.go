package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// ListingBackendPort - контракт для операций управления объявлениями.
type ListingBackendPort interface {
	// Create отправляет форму как multipart и возвращает созданную запись.
	Create(ctx context.Context, form domain.ListingForm, token string) (*domain.PropertyRecord, error)

	// Update заменяет существующее объявление содержимым формы.
	Update(ctx context.Context, id int64, form domain.ListingForm, token string) error

	// Delete удаляет объявление.
	Delete(ctx context.Context, id int64, token string) error

	// UpdateStatus меняет модерационный статус объявления (админка).
	UpdateStatus(ctx context.Context, id int64, status string, token string) error
}
