package rest

import (
	"time"

	"realestate-frontend/internal/core/domain"
)

// propertyPayload - объявление в ответах и в теле toggle-запроса.
// Для toggle клиент присылает запись целиком: хранилище избранного
// не ходит за объектом повторно.
type propertyPayload struct {
	ID               int64    `json:"id"`
	PropertyTitle    string   `json:"propertyTitle"`
	Description      string   `json:"description,omitempty"`
	Location         string   `json:"location"`
	PropertyCategory string   `json:"propertyCategory"`
	PropertyType     string   `json:"propertyType"`
	Price            float64  `json:"price"`
	DiscountPercent  float64  `json:"discountPercent"`
	SquareFeet       float64  `json:"squareFeet"`
	ImageURLs        []string `json:"imageUrls,omitempty"`
}

func propertyToPayload(p domain.PropertyRecord) propertyPayload {
	return propertyPayload{
		ID:               p.ID,
		PropertyTitle:    p.PropertyTitle,
		Description:      p.Description,
		Location:         p.Location,
		PropertyCategory: p.PropertyCategory,
		PropertyType:     string(p.PropertyType),
		Price:            p.Price,
		DiscountPercent:  p.DiscountPercent,
		SquareFeet:       p.SquareFeet,
		ImageURLs:        p.ImageURLs,
	}
}

func propertyFromPayload(p propertyPayload) domain.PropertyRecord {
	return domain.PropertyRecord{
		ID:               p.ID,
		PropertyTitle:    p.PropertyTitle,
		Description:      p.Description,
		Location:         p.Location,
		PropertyCategory: p.PropertyCategory,
		PropertyType:     domain.Segment(p.PropertyType),
		Price:            p.Price,
		DiscountPercent:  p.DiscountPercent,
		SquareFeet:       p.SquareFeet,
		ImageURLs:        p.ImageURLs,
	}
}

func propertiesToPayload(items []domain.PropertyRecord) []propertyPayload {
	out := make([]propertyPayload, len(items))
	for i, item := range items {
		out[i] = propertyToPayload(item)
	}
	return out
}

// propertyDetailsPayload - карточка с контактами продавца и координатами.
type propertyDetailsPayload struct {
	propertyPayload

	NumberOfBedrooms  int                 `json:"numberOfBedrooms"`
	NumberOfBathrooms int                 `json:"numberOfBathrooms"`
	SellerID          int64               `json:"sellerId"`
	SellerName        string              `json:"sellerName,omitempty"`
	SellerEmail       string              `json:"sellerEmail,omitempty"`
	SellerPhone       string              `json:"sellerPhone,omitempty"`
	Coordinates       *coordinatesPayload `json:"coordinates,omitempty"`
}

type coordinatesPayload struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Geohash string  `json:"geohash"`
}

func detailsToPayload(result *domain.PropertyDetailsResult) propertyDetailsPayload {
	payload := propertyDetailsPayload{
		propertyPayload:   propertyToPayload(result.Details.PropertyRecord),
		NumberOfBedrooms:  result.Details.NumberOfBedrooms,
		NumberOfBathrooms: result.Details.NumberOfBathrooms,
		SellerID:          result.Details.SellerID,
		SellerName:        result.Details.SellerName,
		SellerEmail:       result.Details.SellerEmail,
		SellerPhone:       result.Details.SellerPhone,
	}
	if result.Coordinates != nil {
		payload.Coordinates = &coordinatesPayload{
			Lat:     result.Coordinates.Lat,
			Lon:     result.Coordinates.Lon,
			Geohash: result.Coordinates.Geohash,
		}
	}
	return payload
}

type userPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type chatMessagePayload struct {
	ID         int       `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

type conversationPayload struct {
	UserID   string               `json:"userId"`
	UserRole string               `json:"userRole"`
	Messages []chatMessagePayload `json:"messages"`
}

func conversationToPayload(c *domain.Conversation) conversationPayload {
	messages := make([]chatMessagePayload, len(c.Messages))
	for i, m := range c.Messages {
		messages[i] = chatMessagePayload{
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Message:    m.Message,
			Timestamp:  m.Timestamp,
		}
	}
	return conversationPayload{
		UserID:   c.UserID,
		UserRole: c.UserRole,
		Messages: messages,
	}
}

type todoPayload struct {
	ID   string `json:"id"`
	Task string `json:"task"`
	Date string `json:"date"`
}

type orderPayload struct {
	OrderID  string `json:"orderId"`
	Currency string `json:"currency"`
	Amount   int64  `json:"amount"`
	KeyID    string `json:"keyId"`
}

type sessionPayload struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
