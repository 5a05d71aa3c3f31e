package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/contracts"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// SubmitListingUseCase валидирует форму объявления и отправляет ее
// backend'у. Валидация блокирует отправку: ошибка уходит на UI как
// сообщение уровня поля, запрос к backend'у не выполняется.
type SubmitListingUseCase struct {
	listings port.ListingBackendPort
}

func NewSubmitListingUseCase(listings port.ListingBackendPort) *SubmitListingUseCase {
	return &SubmitListingUseCase{listings: listings}
}

func (uc *SubmitListingUseCase) Execute(ctx context.Context, propertyID int64, form domain.ListingForm, token string) (*domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SubmitListing",
		"property_id": propertyID,
		"is_update":   propertyID > 0,
	})

	ucLogger.Info("Use case started", nil)

	if err := contracts.ValidateListingForm(form); err != nil {
		ucLogger.Warn("Listing form failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	if propertyID > 0 {
		if err := uc.listings.Update(ctx, propertyID, form, token); err != nil {
			ucLogger.Error("Backend returned an error on update", err, nil)
			return nil, err
		}
		ucLogger.Info("Use case finished successfully", nil)
		record := form.ToRecord(propertyID)
		return &record, nil
	}

	created, err := uc.listings.Create(ctx, form, token)
	if err != nil {
		ucLogger.Error("Backend returned an error on create", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"created_id": created.ID})
	return created, nil
}
