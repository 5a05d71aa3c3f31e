package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

type RemoveFromWishlistUseCase struct {
	store port.WishlistStorePort
}

func NewRemoveFromWishlistUseCase(store port.WishlistStorePort) *RemoveFromWishlistUseCase {
	return &RemoveFromWishlistUseCase{store: store}
}

func (uc *RemoveFromWishlistUseCase) Execute(ctx context.Context, id int64) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromWishlist",
		"property_id": id,
	})

	items, err := uc.store.Remove(ctx, id)
	if err != nil {
		ucLogger.Error("Wishlist store returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"items": len(items)})
	return items, nil
}
