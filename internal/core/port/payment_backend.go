package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// PaymentBackendPort - контракт клиента платежного API.
// Само списание выполняет внешний checkout-виджет; здесь только
// жизненный цикл сессии: создание заказа и подтверждение.
type PaymentBackendPort interface {
	CreateOrder(ctx context.Context, req domain.CheckoutRequest, token string) (*domain.PaymentOrder, error)
	Confirm(ctx context.Context, confirmation domain.PaymentConfirmation, token string) error
}
