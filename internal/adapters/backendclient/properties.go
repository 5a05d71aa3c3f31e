package backendclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// FetchBySegment читает полный набор объявлений сегмента BUY или RENT.
func (c *Client) FetchBySegment(ctx context.Context, segment domain.Segment, token string) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendClient",
		"method":    "FetchBySegment",
		"segment":   segment,
	})

	url := fmt.Sprintf("%s/api/properties/type/%s", c.baseURL, segment)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, token, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dtos []propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		clientLogger.Error("Failed to decode response from platform API", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"properties_count": len(dtos)})

	result := make([]domain.PropertyRecord, len(dtos))
	for i, dto := range dtos {
		result[i] = toDomainRecord(dto)
	}
	return result, nil
}

// GetByID возвращает одну карточку с контактами продавца.
func (c *Client) GetByID(ctx context.Context, id int64, token string) (*domain.PropertyDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":   "BackendClient",
		"method":      "GetByID",
		"property_id": id,
	})

	url := fmt.Sprintf("%s/api/properties/%d", c.baseURL, id)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, token, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto propertyDetailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform API", err, nil)
		return nil, err
	}

	return toDomainDetails(dto), nil
}

// ListAll возвращает все объявления для модерации в админке.
func (c *Client) ListAll(ctx context.Context, token string) ([]domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendClient",
		"method":    "ListAll",
	})

	url := fmt.Sprintf("%s/api/properties/all", c.baseURL)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodGet, url, token, "", nil)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dtos []propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		clientLogger.Error("Failed to decode response from platform API", err, nil)
		return nil, err
	}

	result := make([]domain.PropertyRecord, len(dtos))
	for i, dto := range dtos {
		result[i] = toDomainRecord(dto)
	}
	return result, nil
}
