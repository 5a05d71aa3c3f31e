package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Модерационные статусы, которые админка может выставить объявлению.
var moderationStatuses = map[string]bool{
	"APPROVED": true,
	"REJECTED": true,
	"PENDING":  true,
}

type UpdatePropertyStatusUseCase struct {
	listings port.ListingBackendPort
}

func NewUpdatePropertyStatusUseCase(listings port.ListingBackendPort) *UpdatePropertyStatusUseCase {
	return &UpdatePropertyStatusUseCase{listings: listings}
}

func (uc *UpdatePropertyStatusUseCase) Execute(ctx context.Context, id int64, status string, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdatePropertyStatus",
		"property_id": id,
		"new_status":  status,
	})

	ucLogger.Info("Use case started", nil)

	if !moderationStatuses[status] {
		ucLogger.Warn("Rejected unknown moderation status", nil)
		return &domain.ValidationError{Field: "status", Message: "unknown status: " + status}
	}

	if err := uc.listings.UpdateStatus(ctx, id, status, token); err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
