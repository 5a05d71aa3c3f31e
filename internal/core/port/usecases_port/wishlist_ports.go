package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type GetWishlistUseCasePort interface {
	Execute(ctx context.Context) ([]domain.PropertyRecord, error)
}

type ToggleWishlistUseCasePort interface {
	Execute(ctx context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error)
}

type RemoveFromWishlistUseCasePort interface {
	Execute(ctx context.Context, id int64) ([]domain.PropertyRecord, error)
}
