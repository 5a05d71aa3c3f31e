package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type GetPropertyDetailsUseCasePort interface {
	Execute(ctx context.Context, id int64, token string) (*domain.PropertyDetailsResult, error)
}
