package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

type stubGeocoder struct {
	coords *domain.Coordinates
	err    error

	lastAddress string
}

func (s *stubGeocoder) Resolve(_ context.Context, address string) (*domain.Coordinates, error) {
	s.lastAddress = address
	return s.coords, s.err
}

func detailsFixture() *domain.PropertyDetails {
	return &domain.PropertyDetails{
		PropertyRecord: domain.PropertyRecord{
			ID:       42,
			Location: "Bellandur, Bangalore",
		},
		NumberOfBedrooms: 3,
	}
}

func TestGetPropertyDetailsWithCoordinates(t *testing.T) {
	backend := &stubPropertyBackend{details: detailsFixture()}
	geo := &stubGeocoder{coords: &domain.Coordinates{Lat: 12.93, Lon: 77.67, Geohash: "tdr1y"}}
	uc := NewGetPropertyDetailsUseCase(backend, geo)

	result, err := uc.Execute(context.Background(), 42, "token")
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.Details.ID)
	require.NotNil(t, result.Coordinates)
	assert.Equal(t, "tdr1y", result.Coordinates.Geohash)
	assert.Equal(t, "Bellandur, Bangalore", geo.lastAddress)
}

// Сбой геокодера не роняет карточку: она возвращается без координат.
func TestGetPropertyDetailsGeocoderFailureIsNotFatal(t *testing.T) {
	backend := &stubPropertyBackend{details: detailsFixture()}
	geo := &stubGeocoder{err: domain.ErrNotFound}
	uc := NewGetPropertyDetailsUseCase(backend, geo)

	result, err := uc.Execute(context.Background(), 42, "token")
	require.NoError(t, err)
	assert.Nil(t, result.Coordinates)
	assert.Equal(t, int64(42), result.Details.ID)
}

func TestGetPropertyDetailsEmptyLocationSkipsGeocoding(t *testing.T) {
	details := detailsFixture()
	details.Location = ""
	backend := &stubPropertyBackend{details: details}
	geo := &stubGeocoder{coords: &domain.Coordinates{}}
	uc := NewGetPropertyDetailsUseCase(backend, geo)

	result, err := uc.Execute(context.Background(), 42, "token")
	require.NoError(t, err)
	assert.Nil(t, result.Coordinates)
	assert.Empty(t, geo.lastAddress)
}

func TestGetPropertyDetailsBackendError(t *testing.T) {
	backend := &stubPropertyBackend{err: domain.ErrNotFound}
	uc := NewGetPropertyDetailsUseCase(backend, &stubGeocoder{})

	_, err := uc.Execute(context.Background(), 1, "token")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
