package usecases_port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

type CreatePaymentOrderUseCasePort interface {
	Execute(ctx context.Context, req domain.CheckoutRequest, token string) (*domain.PaymentOrder, error)
}

type ConfirmPaymentUseCasePort interface {
	Execute(ctx context.Context, confirmation domain.PaymentConfirmation, token string) error
}
