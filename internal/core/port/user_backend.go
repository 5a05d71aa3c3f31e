package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// UserBackendPort - контракт клиента пользовательского API для админки.
type UserBackendPort interface {
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string, token string) error
}
