package port

import (
	"context"

	"realestate-frontend/internal/core/domain"
)

// GeocoderPort - контракт геокодера: свободный адрес -> координаты.
// Единственный вызов с ограниченным таймаутом; сбой не фатален для
// страницы, зависимый виджет (карта) показывает заглушку.
type GeocoderPort interface {
	Resolve(ctx context.Context, address string) (*domain.Coordinates, error)
}
