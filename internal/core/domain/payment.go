package domain

import "math"

// CheckoutRequest - запрос на создание платежной сессии.
type CheckoutRequest struct {
	Amount          float64
	Price           float64
	DiscountPercent float64
	UserID          int64
	PropertyID      int64
}

// PaymentOrder - созданный backend'ом заказ, который передается
// во внешний checkout-виджет. KeyID - публикуемый ключ виджета.
type PaymentOrder struct {
	OrderID     string
	Currency    string
	FinalAmount int64
	KeyID       string
}

// PaymentConfirmation - подпись завершенного платежа от checkout-виджета,
// пересылается backend'у как есть.
type PaymentConfirmation struct {
	PaymentID string
	OrderID   string
	Signature string
}

// FinalAmount считает сумму к оплате с учетом скидки, округляя
// до целой денежной единицы.
func FinalAmount(price, discountPercent float64) int64 {
	return int64(math.Round(price - price*discountPercent/100))
}
