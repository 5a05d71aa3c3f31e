package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// GetAllPropertiesUseCase - список всех объявлений для модерации в админке.
type GetAllPropertiesUseCase struct {
	backend port.PropertyBackendPort
}

func NewGetAllPropertiesUseCase(backend port.PropertyBackendPort) *GetAllPropertiesUseCase {
	return &GetAllPropertiesUseCase{backend: backend}
}

func (uc *GetAllPropertiesUseCase) Execute(ctx context.Context, token string) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetAllProperties"})

	ucLogger.Info("Use case started", nil)

	records, err := uc.backend.ListAll(ctx, token)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"properties": len(records)})
	return records, nil
}
