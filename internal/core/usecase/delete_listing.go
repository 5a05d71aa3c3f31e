package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/port"
)

type DeleteListingUseCase struct {
	listings port.ListingBackendPort
}

func NewDeleteListingUseCase(listings port.ListingBackendPort) *DeleteListingUseCase {
	return &DeleteListingUseCase{listings: listings}
}

func (uc *DeleteListingUseCase) Execute(ctx context.Context, id int64, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteListing",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.listings.Delete(ctx, id, token); err != nil {
		ucLogger.Error("Backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
