package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// ToggleWishlistUseCase - единственная точка добавления в избранное:
// повторное переключение уже добавленного объекта удаляет его.
type ToggleWishlistUseCase struct {
	store port.WishlistStorePort
}

func NewToggleWishlistUseCase(store port.WishlistStorePort) *ToggleWishlistUseCase {
	return &ToggleWishlistUseCase{store: store}
}

func (uc *ToggleWishlistUseCase) Execute(ctx context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "ToggleWishlist",
		"property_id": property.ID,
	})

	ucLogger.Info("Use case started", nil)

	items, err := uc.store.Toggle(ctx, property)
	if err != nil {
		ucLogger.Error("Wishlist store returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"items": len(items)})
	return items, nil
}
