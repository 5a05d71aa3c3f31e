package rest

import (
	"encoding/json"
	"net/http"

	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port/usecases_port"
)

type PaymentHandler struct {
	createUseCase  usecases_port.CreatePaymentOrderUseCasePort
	confirmUseCase usecases_port.ConfirmPaymentUseCasePort
}

func NewPaymentHandler(
	createUseCase usecases_port.CreatePaymentOrderUseCasePort,
	confirmUseCase usecases_port.ConfirmPaymentUseCasePort,
) *PaymentHandler {
	return &PaymentHandler{
		createUseCase:  createUseCase,
		confirmUseCase: confirmUseCase,
	}
}

type createOrderPayload struct {
	Amount          float64 `json:"amount"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
	UserID          int64   `json:"userId"`
	PropertyID      int64   `json:"propertyId"`
}

type callbackPayload struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CreateOrder создает платежную сессию для checkout-виджета.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token := TokenFromContext(r.Context())
	order, err := h.createUseCase.Execute(r.Context(), domain.CheckoutRequest{
		Amount:          payload.Amount,
		Price:           payload.Price,
		DiscountPercent: payload.DiscountPercent,
		UserID:          payload.UserID,
		PropertyID:      payload.PropertyID,
	}, token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusCreated, orderPayload{
		OrderID:  order.OrderID,
		Currency: order.Currency,
		Amount:   order.FinalAmount,
		KeyID:    order.KeyID,
	})
}

// Callback пересылает подпись завершенного платежа backend'у.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var payload callbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token := TokenFromContext(r.Context())
	err := h.confirmUseCase.Execute(r.Context(), domain.PaymentConfirmation{
		PaymentID: payload.PaymentID,
		OrderID:   payload.OrderID,
		Signature: payload.Signature,
	}, token)
	if err != nil {
		WriteDomainError(w, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]string{"status": "confirmed"})
}
