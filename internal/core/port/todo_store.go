package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// TodoStorePort - хранилище списка дел админа.
type TodoStorePort interface {
	List(ctx context.Context) ([]domain.TodoItem, error)
	Add(ctx context.Context, task, date string) (*domain.TodoItem, error)
	Remove(ctx context.Context, id string) error
}
