package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcloughlin/geohash"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// NominatimClient геокодирует свободный адрес через Nominatim.
// Один запрос с жестким таймаутом; берется только первый результат.
type NominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Nominatim отдает координаты строками.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *NominatimClient) Resolve(ctx context.Context, address string) (*domain.Coordinates, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "NominatimClient",
		"method":    "Resolve",
	})

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")
	requestURL := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	clientLogger.Debug("Sending geocoding request", port.Fields{"address": address})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim требует осмысленный User-Agent для публичного инстанса.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.HTTPError{StatusCode: resp.StatusCode}
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return nil, domain.ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse longitude %q: %w", results[0].Lon, err)
	}

	coords := &domain.Coordinates{
		Lat:     lat,
		Lon:     lon,
		Geohash: geohash.Encode(lat, lon),
	}
	clientLogger.Debug("Address resolved", port.Fields{"geohash": coords.Geohash})
	return coords, nil
}
