package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

type GetWishlistUseCase struct {
	store port.WishlistStorePort
}

func NewGetWishlistUseCase(store port.WishlistStorePort) *GetWishlistUseCase {
	return &GetWishlistUseCase{store: store}
}

func (uc *GetWishlistUseCase) Execute(ctx context.Context) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetWishlist"})

	items, err := uc.store.List(ctx)
	if err != nil {
		ucLogger.Error("Wishlist store returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"items": len(items)})
	return items, nil
}
