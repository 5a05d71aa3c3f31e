package backendclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
)

// Client ходит в REST API платформы недвижимости.
// Без ретраев: один вызов - один запрос, классифицированная ошибка
// поднимается вызывающему как есть.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest - внутренний хелпер для выполнения запросов.
// Токен обязателен для всех вызовов платформы; пустой токен
// отсекается до обращения к сети.
func (c *Client) doRequest(ctx context.Context, method, url, token, contentType string, body io.Reader) (*http.Response, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.NetworkError{Err: err}
	}
	return resp, nil
}

// classifyStatus переводит не-2xx ответ в доменную ошибку.
// Тело ошибки читается целиком, чтобы сообщение backend'а дошло до UI.
func classifyStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	bodyBytes, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return domain.ErrUnauthenticated
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return &domain.HTTPError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}
}
