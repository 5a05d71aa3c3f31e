package backendclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-frontend/internal/core/domain"
)

func TestFetchBySegmentSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/type/BUY", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"propertyTitle":"Villa","location":"Bangalore","propertyType":"BUY","price":50000,"squareFeet":1200}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	records, err := client.FetchBySegment(context.Background(), domain.SegmentBuy, "token-123")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "Villa", records[0].PropertyTitle)
	assert.Equal(t, domain.SegmentBuy, records[0].PropertyType)
}

// Пустой токен отсекается до обращения к сети.
func TestFetchBySegmentEmptyToken(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchBySegment(context.Background(), domain.SegmentBuy, "")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	assert.False(t, called)
}

func TestFetchBySegmentUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchBySegment(context.Background(), domain.SegmentRent, "expired")
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestGetByIDNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.GetByID(context.Background(), 42, "token")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchBySegmentServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchBySegment(context.Background(), domain.SegmentBuy, "token")

	var httpErr *domain.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "boom")
}

func TestFetchBySegmentTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже остановлен

	client := NewClient(server.URL)
	_, err := client.FetchBySegment(context.Background(), domain.SegmentBuy, "token")

	var netErr *domain.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestGetByIDSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/42", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"propertyTitle":"Villa","location":"Bangalore","propertyType":"BUY","price":50000,"numberOfBedrooms":3,"sellerId":7,"sellerName":"Bob"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	details, err := client.GetByID(context.Background(), 42, "token")
	require.NoError(t, err)
	assert.Equal(t, int64(42), details.ID)
	assert.Equal(t, 3, details.NumberOfBedrooms)
	assert.Equal(t, int64(7), details.SellerID)
	assert.Equal(t, "Bob", details.SellerName)
}

func TestCreateSendsMultipartForm(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/add", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(32<<20))

		assert.Equal(t, "Villa", r.FormValue("propertyTitle"))
		assert.Equal(t, "50000", r.FormValue("price"))
		assert.Equal(t, "BUY", r.FormValue("propertyType"))
		assert.Equal(t, "7", r.FormValue("sellerId"))
		require.Len(t, r.MultipartForm.File["images"], 1)
		assert.Equal(t, "front.jpg", r.MultipartForm.File["images"][0].Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":10,"propertyTitle":"Villa","propertyType":"BUY"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	form := domain.ListingForm{
		PropertyTitle:    "Villa",
		Price:            50000,
		Location:         "Bangalore",
		PropertyCategory: "Villa",
		SquareFeet:       1200,
		PropertyType:     domain.SegmentBuy,
		SellerID:         7,
		Images:           []domain.ListingImage{{Filename: "front.jpg", Content: []byte("jpeg-bytes")}},
	}

	record, err := client.Create(context.Background(), form, "token")
	require.NoError(t, err)
	assert.Equal(t, int64(10), record.ID)
}

func TestUpdateRoleSendsPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/5/role", r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	assert.NoError(t, client.UpdateRole(context.Background(), 5, "AGENT", "token"))
}
