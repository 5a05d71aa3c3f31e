package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// ListUsers возвращает всех пользователей платформы для админки.
func (c *Client) ListUsers(ctx context.Context, token string) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendClient",
		"method":    "ListUsers",
	})

	url := fmt.Sprintf("%s/users", c.baseURL)
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

	var dtos []userResponse
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		clientLogger.Error("Failed to decode response from platform API", err, nil)
		return nil, err
	}

	clientLogger.Info("Successfully received and decoded response", port.Fields{"users_count": len(dtos)})

	result := make([]domain.User, len(dtos))
	for i, dto := range dtos {
		result[i] = toDomainUser(dto)
	}
	return result, nil
}

// UpdateRole меняет роль пользователя.
func (c *Client) UpdateRole(ctx context.Context, id int64, role string, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendClient",
		"method":    "UpdateRole",
		"user_id":   id,
	})

	payload, err := json.Marshal(map[string]string{"role": role})
	if err != nil {
		return fmt.Errorf("failed to encode role payload: %w", err)
	}

	url := fmt.Sprintf("%s/users/%d/role", c.baseURL, id)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url, "role": role})

	resp, err := c.doRequest(ctx, http.MethodPut, url, token, "application/json", bytes.NewReader(payload))
	if err != nil {
		clientLogger.Error("Failed to perform request to platform API", err, nil)
		return err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform API", err, port.Fields{"status_code": resp.StatusCode})
		return err
	}
	return nil
}
