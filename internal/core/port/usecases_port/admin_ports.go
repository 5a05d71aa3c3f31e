package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type GetUsersUseCasePort interface {
	Execute(ctx context.Context, token string) ([]domain.User, error)
}

type ChangeUserRoleUseCasePort interface {
	Execute(ctx context.Context, userID int64, role string, token string) error
}

type GetAllPropertiesUseCasePort interface {
	Execute(ctx context.Context, token string) ([]domain.PropertyRecord, error)
}

type UpdatePropertyStatusUseCasePort interface {
	Execute(ctx context.Context, id int64, status string, token string) error
}
