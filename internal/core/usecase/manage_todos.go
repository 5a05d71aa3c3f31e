package usecase

import (
	"context"
	"strings"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// ManageTodosUseCase - список дел админа поверх эфемерного хранилища.
type ManageTodosUseCase struct {
	todos port.TodoStorePort
}

func NewManageTodosUseCase(todos port.TodoStorePort) *ManageTodosUseCase {
	return &ManageTodosUseCase{todos: todos}
}

func (uc *ManageTodosUseCase) List(ctx context.Context) ([]domain.TodoItem, error) {
	return uc.todos.List(ctx)
}

func (uc *ManageTodosUseCase) Add(ctx context.Context, task, date string) (*domain.TodoItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	if strings.TrimSpace(task) == "" {
		return nil, &domain.ValidationError{Field: "task", Message: "task must not be empty"}
	}

	item, err := uc.todos.Add(ctx, task, date)
	if err != nil {
		logger.Error("Todo store returned an error", err, port.Fields{"use_case": "ManageTodos"})
		return nil, err
	}
	return item, nil
}

func (uc *ManageTodosUseCase) Remove(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)

	if err := uc.todos.Remove(ctx, id); err != nil {
		logger.Error("Todo store returned an error", err, port.Fields{"use_case": "ManageTodos"})
		return err
	}
	return nil
}
