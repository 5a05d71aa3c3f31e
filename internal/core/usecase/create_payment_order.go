package usecase

import (
	"context"
	"fmt"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// CreatePaymentOrderUseCase создает платежную сессию у backend'а.
// Покупка доступна только покупателю: продавец отбрасывается до
// обращения к платежному API.
type CreatePaymentOrderUseCase struct {
	payments port.PaymentBackendPort
	sessions port.SessionStorePort
	keyID    string
}

func NewCreatePaymentOrderUseCase(payments port.PaymentBackendPort, sessions port.SessionStorePort, keyID string) *CreatePaymentOrderUseCase {
	return &CreatePaymentOrderUseCase{payments: payments, sessions: sessions, keyID: keyID}
}

func (uc *CreatePaymentOrderUseCase) Execute(ctx context.Context, req domain.CheckoutRequest, token string) (*domain.PaymentOrder, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreatePaymentOrder",
		"property_id": req.PropertyID,
		"user_id":     req.UserID,
	})

	ucLogger.Info("Use case started", nil)

	session, err := uc.sessions.Load(ctx)
	if err != nil {
		ucLogger.Error("Failed to load session", err, nil)
		return nil, err
	}
	if session != nil && session.Role == "SELLER" {
		ucLogger.Warn("Seller account attempted checkout", port.Fields{"role": session.Role})
		return nil, fmt.Errorf("checkout requires a buyer account: %w", domain.ErrForbidden)
	}

	order, err := uc.payments.CreateOrder(ctx, req, token)
	if err != nil {
		ucLogger.Error("Payment backend returned an error", err, nil)
		return nil, err
	}

	order.FinalAmount = domain.FinalAmount(req.Price, req.DiscountPercent)
	order.KeyID = uc.keyID

	ucLogger.Info("Use case finished successfully", port.Fields{
		"order_id":     order.OrderID,
		"final_amount": order.FinalAmount,
	})
	return order, nil
}
