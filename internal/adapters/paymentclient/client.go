package paymentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Client ходит в платежный API. Списание выполняет внешний
// checkout-виджет; здесь только создание заказа и подтверждение.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type createOrderRequest struct {
	Amount          float64 `json:"amount"`
	Price           float64 `json:"price"`
	DiscountPercent float64 `json:"discountPercent"`
	UserID          int64   `json:"userId"`
	PropertyID      int64   `json:"propertyId"`
}

type createOrderResponse struct {
	OrderID  string `json:"orderId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
}

type confirmRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// CreateOrder создает платежную сессию на стороне backend'а.
func (c *Client) CreateOrder(ctx context.Context, req domain.CheckoutRequest, token string) (*domain.PaymentOrder, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":   "PaymentClient",
		"method":      "CreateOrder",
		"property_id": req.PropertyID,
	})

	payload, err := json.Marshal(createOrderRequest{
		Amount:          req.Amount,
		Price:           req.Price,
		DiscountPercent: req.DiscountPercent,
		UserID:          req.UserID,
		PropertyID:      req.PropertyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/payment/create-order", c.baseURL)
	clientLogger.Debug("Sending request to payment API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, url, token, payload)
	if err != nil {
		clientLogger.Error("Failed to perform request to payment API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from payment API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from payment API", err, nil)
		return nil, err
	}

	clientLogger.Info("Payment order created", port.Fields{"order_id": dto.OrderID})
	return &domain.PaymentOrder{
		OrderID:     dto.OrderID,
		Currency:    dto.Currency,
		FinalAmount: dto.Amount,
	}, nil
}

// Confirm пересылает подпись завершенного платежа backend'у.
func (c *Client) Confirm(ctx context.Context, confirmation domain.PaymentConfirmation, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "PaymentClient",
		"method":    "Confirm",
		"order_id":  confirmation.OrderID,
	})

	payload, err := json.Marshal(confirmRequest{
		PaymentID: confirmation.PaymentID,
		OrderID:   confirmation.OrderID,
		Signature: confirmation.Signature,
	})
	if err != nil {
		return fmt.Errorf("failed to encode confirmation payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/payment/callback", c.baseURL)
	clientLogger.Debug("Sending request to payment API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, url, token, payload)
	if err != nil {
		clientLogger.Error("Failed to perform request to payment API", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from payment API", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}

	clientLogger.Info("Payment confirmed", nil)
	return nil
}

func (c *Client) doRequest(ctx context.Context, url, token string, payload []byte) (*http.Response, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return resp, nil
}

func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return &domain.HTTPError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}
}
