package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// BrowsePropertiesUseCase загружает полный набор объявлений сегмента
// и прогоняет его через фильтр. Каждый запрос несет полный набор
// критериев, пересчет - всегда полный проход по набору.
type BrowsePropertiesUseCase struct {
	backend port.PropertyBackendPort
}

func NewBrowsePropertiesUseCase(backend port.PropertyBackendPort) *BrowsePropertiesUseCase {
	return &BrowsePropertiesUseCase{backend: backend}
}

func (uc *BrowsePropertiesUseCase) Execute(ctx context.Context, segment domain.Segment, criteria domain.FilterCriteria, token string) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "BrowseProperties",
		"segment":  segment,
	})

	ucLogger.Info("Use case started", nil)

	records, err := uc.backend.FetchBySegment(ctx, segment, token)
	if err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return nil, err
	}

	filtered := domain.FilterProperties(records, criteria)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"fetched":  len(records),
		"matched":  len(filtered),
		"filtered": !criteria.IsEmpty(),
	})
	return filtered, nil
}
