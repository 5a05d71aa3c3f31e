package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

type stubBrowseUseCase struct {
	records []domain.PropertyRecord
	err     error

	lastSegment  domain.Segment
	lastCriteria domain.FilterCriteria
}

func (s *stubBrowseUseCase) Execute(_ context.Context, segment domain.Segment, criteria domain.FilterCriteria, _ string) ([]domain.PropertyRecord, error) {
	s.lastSegment = segment
	s.lastCriteria = criteria
	return s.records, s.err
}

type stubWishlistUseCase struct {
	items []domain.PropertyRecord
	err   error

	toggled   *domain.PropertyRecord
	removedID int64
}

func (s *stubWishlistUseCase) Execute(_ context.Context) ([]domain.PropertyRecord, error) {
	return s.items, s.err
}

type stubToggleUseCase struct{ parent *stubWishlistUseCase }

func (s *stubToggleUseCase) Execute(_ context.Context, property domain.PropertyRecord) ([]domain.PropertyRecord, error) {
	s.parent.toggled = &property
	return append(s.parent.items, property), s.parent.err
}

type stubRemoveUseCase struct{ parent *stubWishlistUseCase }

func (s *stubRemoveUseCase) Execute(_ context.Context, id int64) ([]domain.PropertyRecord, error) {
	s.parent.removedID = id
	return nil, s.parent.err
}

type stubDetailsUseCase struct {
	result *domain.PropertyDetailsResult
	err    error
}

func (s *stubDetailsUseCase) Execute(_ context.Context, _ int64, _ string) (*domain.PropertyDetailsResult, error) {
	return s.result, s.err
}

func TestBrowseHandlerParsesQuery(t *testing.T) {
	browse := &stubBrowseUseCase{records: []domain.PropertyRecord{{ID: 1, PropertyTitle: "Villa"}}}
	wishlist := &stubWishlistUseCase{items: []domain.PropertyRecord{{ID: 1}}}
	handler := NewPropertyHandler(browse, &stubDetailsUseCase{}, wishlist)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?segment=BUY&location=bangalore&price=50000", nil)
	rec := httptest.NewRecorder()
	handler.Browse(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SegmentBuy, browse.lastSegment)
	assert.Equal(t, "bangalore", browse.lastCriteria.Location)
	assert.Equal(t, "50000", browse.lastCriteria.Price)

	body := rec.Body.String()
	assert.Contains(t, body, `"inWishlist":true`)
	assert.Contains(t, body, `"propertyTitle":"Villa"`)
}

func TestBrowseHandlerRejectsUnknownSegment(t *testing.T) {
	handler := NewPropertyHandler(&stubBrowseUseCase{}, &stubDetailsUseCase{}, &stubWishlistUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?segment=LEASE", nil)
	rec := httptest.NewRecorder()
	handler.Browse(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBrowseHandlerMapsBackendErrors(t *testing.T) {
	browse := &stubBrowseUseCase{err: domain.ErrUnauthenticated}
	handler := NewPropertyHandler(browse, &stubDetailsUseCase{}, &stubWishlistUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?segment=RENT", nil)
	rec := httptest.NewRecorder()
	handler.Browse(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetDetailsHandlerNotFound(t *testing.T) {
	handler := NewPropertyHandler(&stubBrowseUseCase{}, &stubDetailsUseCase{err: domain.ErrNotFound}, &stubWishlistUseCase{})

	r := chi.NewRouter()
	r.Get("/properties/{propertyID}", handler.GetDetails)

	req := httptest.NewRequest(http.MethodGet, "/properties/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWishlistToggleHandler(t *testing.T) {
	wishlist := &stubWishlistUseCase{}
	handler := NewWishlistHandler(wishlist, &stubToggleUseCase{parent: wishlist}, &stubRemoveUseCase{parent: wishlist})

	body := `{"id":5,"propertyTitle":"Villa","location":"Bangalore","propertyType":"BUY","price":50000}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Toggle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, wishlist.toggled)
	assert.Equal(t, int64(5), wishlist.toggled.ID)
	assert.Equal(t, domain.SegmentBuy, wishlist.toggled.PropertyType)
}

func TestWishlistToggleHandlerRequiresID(t *testing.T) {
	wishlist := &stubWishlistUseCase{}
	handler := NewWishlistHandler(wishlist, &stubToggleUseCase{parent: wishlist}, &stubRemoveUseCase{parent: wishlist})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/wishlist/toggle", strings.NewReader(`{"propertyTitle":"Villa"}`))
	rec := httptest.NewRecorder()
	handler.Toggle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, wishlist.toggled)
}

func TestWishlistRemoveHandler(t *testing.T) {
	wishlist := &stubWishlistUseCase{}
	handler := NewWishlistHandler(wishlist, &stubToggleUseCase{parent: wishlist}, &stubRemoveUseCase{parent: wishlist})

	r := chi.NewRouter()
	r.Delete("/wishlist/{propertyID}", handler.Remove)

	req := httptest.NewRequest(http.MethodDelete, "/wishlist/9", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), wishlist.removedID)
}

func TestRequireRoleWithoutSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireRole("ADMIN")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleWrongRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := RequireRole("ADMIN")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	ctx := context.WithValue(req.Context(), sessionContextKey, &domain.Session{Role: "BUYER"})
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAdminPasses(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	protected := RequireRole("ADMIN")(next)

	req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
	ctx := context.WithValue(req.Context(), sessionContextKey, &domain.Session{Role: "ADMIN"})
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
