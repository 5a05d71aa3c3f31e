package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// SessionStorePort - контракт хранилища тройки token/username/role.
type SessionStorePort interface {
	Save(ctx context.Context, session domain.Session) error

	// Load возвращает nil без ошибки, если сессии нет.
	Load(ctx context.Context) (*domain.Session, error)

	Clear(ctx context.Context) error
}
