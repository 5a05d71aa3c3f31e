package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type SubmitListingUseCasePort interface {
	// Execute создает объявление; если propertyID > 0 - обновляет существующее.
	Execute(ctx context.Context, propertyID int64, form domain.ListingForm, token string) (*domain.PropertyRecord, error)
}

type DeleteListingUseCasePort interface {
	Execute(ctx context.Context, id int64, token string) error
}
