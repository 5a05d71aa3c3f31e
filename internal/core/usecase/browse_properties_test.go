package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

// stubPropertyBackend реализует PropertyBackendPort для тестов.
type stubPropertyBackend struct {
	records []domain.PropertyRecord
	details *domain.PropertyDetails
	err     error

	lastSegment domain.Segment
	lastToken   string
}

func (s *stubPropertyBackend) FetchBySegment(_ context.Context, segment domain.Segment, token string) ([]domain.PropertyRecord, error) {
	s.lastSegment = segment
	s.lastToken = token
	return s.records, s.err
}

func (s *stubPropertyBackend) GetByID(_ context.Context, _ int64, _ string) (*domain.PropertyDetails, error) {
	return s.details, s.err
}

func (s *stubPropertyBackend) ListAll(_ context.Context, token string) ([]domain.PropertyRecord, error) {
	s.lastToken = token
	return s.records, s.err
}

func TestBrowsePropertiesAppliesFilter(t *testing.T) {
	backend := &stubPropertyBackend{records: []domain.PropertyRecord{
		{ID: 1, Location: "Bangalore", PropertyCategory: "Villa", Price: 45000, SquareFeet: 1500},
		{ID: 2, Location: "Chennai", PropertyCategory: "Villa", Price: 40000, SquareFeet: 1600},
	}}
	uc := NewBrowsePropertiesUseCase(backend)

	got, err := uc.Execute(context.Background(), domain.SegmentBuy, domain.FilterCriteria{Location: "bangalore"}, "token")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, domain.SegmentBuy, backend.lastSegment)
	assert.Equal(t, "token", backend.lastToken)
}

func TestBrowsePropertiesEmptyCriteriaReturnsAll(t *testing.T) {
	backend := &stubPropertyBackend{records: []domain.PropertyRecord{{ID: 1}, {ID: 2}}}
	uc := NewBrowsePropertiesUseCase(backend)

	got, err := uc.Execute(context.Background(), domain.SegmentRent, domain.FilterCriteria{}, "token")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBrowsePropertiesBackendError(t *testing.T) {
	backend := &stubPropertyBackend{err: domain.ErrUnauthenticated}
	uc := NewBrowsePropertiesUseCase(backend)

	_, err := uc.Execute(context.Background(), domain.SegmentBuy, domain.FilterCriteria{}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}
