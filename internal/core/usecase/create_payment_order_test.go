package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

type stubPaymentBackend struct {
	order   *domain.PaymentOrder
	err     error
	called  bool
	confirm domain.PaymentConfirmation
}

func (s *stubPaymentBackend) CreateOrder(_ context.Context, _ domain.CheckoutRequest, _ string) (*domain.PaymentOrder, error) {
	s.called = true
	if s.err != nil {
		return nil, s.err
	}
	order := *s.order
	return &order, nil
}

func (s *stubPaymentBackend) Confirm(_ context.Context, confirmation domain.PaymentConfirmation, _ string) error {
	s.confirm = confirmation
	return s.err
}

type stubSessionStore struct {
	session *domain.Session
}

func (s *stubSessionStore) Save(_ context.Context, session domain.Session) error {
	s.session = &session
	return nil
}

func (s *stubSessionStore) Load(_ context.Context) (*domain.Session, error) {
	return s.session, nil
}

func (s *stubSessionStore) Clear(_ context.Context) error {
	s.session = nil
	return nil
}

func TestCreatePaymentOrderComputesFinalAmount(t *testing.T) {
	payments := &stubPaymentBackend{order: &domain.PaymentOrder{OrderID: "order-1", Currency: "INR"}}
	sessions := &stubSessionStore{session: &domain.Session{Role: "BUYER"}}
	uc := NewCreatePaymentOrderUseCase(payments, sessions, "rzp_test_key")

	order, err := uc.Execute(context.Background(), domain.CheckoutRequest{
		Price:           50000,
		DiscountPercent: 10,
		PropertyID:      1,
	}, "token")
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.OrderID)
	assert.Equal(t, int64(45000), order.FinalAmount)
	assert.Equal(t, "rzp_test_key", order.KeyID)
}

// Продавец не может оплачивать объявления; платежный API не вызывается.
func TestCreatePaymentOrderRejectsSeller(t *testing.T) {
	payments := &stubPaymentBackend{order: &domain.PaymentOrder{}}
	sessions := &stubSessionStore{session: &domain.Session{Role: "SELLER"}}
	uc := NewCreatePaymentOrderUseCase(payments, sessions, "rzp_test_key")

	_, err := uc.Execute(context.Background(), domain.CheckoutRequest{PropertyID: 1}, "token")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.False(t, payments.called)
}

func TestCreatePaymentOrderWithoutSession(t *testing.T) {
	payments := &stubPaymentBackend{order: &domain.PaymentOrder{OrderID: "order-2"}}
	sessions := &stubSessionStore{}
	uc := NewCreatePaymentOrderUseCase(payments, sessions, "key")

	order, err := uc.Execute(context.Background(), domain.CheckoutRequest{Price: 100}, "token")
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.FinalAmount)
}

func TestConfirmPaymentForwardsSignature(t *testing.T) {
	payments := &stubPaymentBackend{}
	uc := NewConfirmPaymentUseCase(payments)

	confirmation := domain.PaymentConfirmation{
		PaymentID: "pay_1",
		OrderID:   "order_1",
		Signature: "sig",
	}
	require.NoError(t, uc.Execute(context.Background(), confirmation, "token"))
	assert.Equal(t, confirmation, payments.confirm)
}
