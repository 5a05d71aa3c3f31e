package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type BrowsePropertiesUseCasePort interface {
	Execute(ctx context.Context, segment domain.Segment, criteria domain.FilterCriteria, token string) ([]domain.PropertyRecord, error)
}
