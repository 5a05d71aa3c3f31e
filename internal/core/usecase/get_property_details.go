package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// GetPropertyDetailsUseCase загружает детальную карточку и best-effort
// геокодирует ее адрес. Геокодирование зависит от результата загрузки
// карточки и не может начаться раньше нее.
type GetPropertyDetailsUseCase struct {
	backend  port.PropertyBackendPort
	geocoder port.GeocoderPort
}

func NewGetPropertyDetailsUseCase(backend port.PropertyBackendPort, geocoder port.GeocoderPort) *GetPropertyDetailsUseCase {
	return &GetPropertyDetailsUseCase{backend: backend, geocoder: geocoder}
}

func (uc *GetPropertyDetailsUseCase) Execute(ctx context.Context, id int64, token string) (*domain.PropertyDetailsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyDetails",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	details, err := uc.backend.GetByID(ctx, id, token)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	result := &domain.PropertyDetailsResult{Details: details}

	// Сбой геокодера не фатален: карточка возвращается без координат,
	// карта на странице покажет заглушку.
	if details.Location != "" {
		coords, geoErr := uc.geocoder.Resolve(ctx, details.Location)
		if geoErr != nil {
			ucLogger.Warn("Geocoding failed, rendering details without map", port.Fields{
				"address": details.Location,
				"error":   geoErr.Error(),
			})
		} else {
			result.Coordinates = coords
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"geocoded": result.Coordinates != nil,
	})
	return result, nil
}
