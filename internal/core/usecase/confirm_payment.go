package usecase

import (
	"context"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// ConfirmPaymentUseCase пересылает подпись завершенного платежа backend'у.
type ConfirmPaymentUseCase struct {
	payments port.PaymentBackendPort
}

func NewConfirmPaymentUseCase(payments port.PaymentBackendPort) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{payments: payments}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, confirmation domain.PaymentConfirmation, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ConfirmPayment",
		"order_id": confirmation.OrderID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.payments.Confirm(ctx, confirmation, token); err != nil {
		ucLogger.Error("Payment backend returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
