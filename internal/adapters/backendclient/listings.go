package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"realestate-frontend/internal/contextkeys"
	"realestate-frontend/internal/core/domain"
	"realestate-frontend/internal/core/port"
)

// Create отправляет форму объявления как multipart и возвращает созданную запись.
func (c *Client) Create(ctx context.Context, form domain.ListingForm, token string) (*domain.PropertyRecord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component": "BackendClient",
		"method":    "Create",
	})

	body, contentType, err := encodeListingForm(form)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/properties/add", c.baseURL)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPost, url, token, contentType, body)
	if err != nil {
		clientLogger.Error("Failed to perform request to platform API", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		clientLogger.Error("Received error response from platform API", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var dto propertyResponse
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		clientLogger.Error("Failed to decode response from platform API", err, nil)
		return nil, err
	}

	record := toDomainRecord(dto)
	clientLogger.Info("Listing created", port.Fields{"property_id": record.ID})
	return &record, nil
}

// Update заменяет объявление содержимым формы. Backend отвечает без тела.
func (c *Client) Update(ctx context.Context, id int64, form domain.ListingForm, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":   "BackendClient",
		"method":      "Update",
		"property_id": id,
	})

	body, contentType, err := encodeListingForm(form)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/api/properties/update/%d", c.baseURL, id)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodPut, url, token, contentType, body)
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

// Delete удаляет объявление.
func (c *Client) Delete(ctx context.Context, id int64, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":   "BackendClient",
		"method":      "Delete",
		"property_id": id,
	})

	url := fmt.Sprintf("%s/api/properties/delete/%d", c.baseURL, id)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url})

	resp, err := c.doRequest(ctx, http.MethodDelete, url, token, "", nil)
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

// UpdateStatus меняет модерационный статус объявления.
func (c *Client) UpdateStatus(ctx context.Context, id int64, status string, token string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	clientLogger := logger.WithFields(port.Fields{
		"component":   "BackendClient",
		"method":      "UpdateStatus",
		"property_id": id,
	})

	payload, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return fmt.Errorf("failed to encode status payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/properties/%d/status", c.baseURL, id)
	clientLogger.Debug("Sending request to platform API", port.Fields{"url": url, "status": status})

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

// encodeListingForm кодирует форму в multipart/form-data.
// Числовые значения уходят строками, как их и ждет форма на той стороне.
func encodeListingForm(form domain.ListingForm) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := map[string]string{
		"propertyTitle":     form.PropertyTitle,
		"description":       form.Description,
		"price":             formatFloat(form.Price),
		"discountedPrice":   formatFloat(form.DiscountedPrice),
		"discountPercent":   formatFloat(form.DiscountPercent),
		"location":          form.Location,
		"propertyCategory":  form.PropertyCategory,
		"numberOfBedrooms":  strconv.Itoa(form.NumberOfBedrooms),
		"numberOfBathrooms": strconv.Itoa(form.NumberOfBathrooms),
		"squareFeet":        formatFloat(form.SquareFeet),
		"propertyType":      string(form.PropertyType),
		"sellerId":          strconv.FormatInt(form.SellerID, 10),
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %q: %w", name, err)
		}
	}

	for _, image := range form.Images {
		part, err := writer.CreateFormFile("images", image.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create form file %q: %w", image.Filename, err)
		}
		if _, err := part.Write(image.Content); err != nil {
			return nil, "", fmt.Errorf("failed to write image %q: %w", image.Filename, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}
	return body, writer.FormDataContentType(), nil
}

func formatFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(strconv.FormatFloat(v, 'f', 2, 64), "0"), ".")
}
