package backendclient

import "realestate-frontend/internal/core/domain"

// propertyResponse - списочное представление объявления на проводе.
type propertyResponse struct {
	ID               int64    `json:"id"`
	PropertyTitle    string   `json:"propertyTitle"`
	Description      string   `json:"description"`
	Location         string   `json:"location"`
	PropertyCategory string   `json:"propertyCategory"`
	PropertyType     string   `json:"propertyType"`
	Price            float64  `json:"price"`
	DiscountPercent  float64  `json:"discountPercent"`
	SquareFeet       float64  `json:"squareFeet"`
	ImageURLs        []string `json:"imageUrls"`
}

// propertyDetailsResponse - карточка с контактами продавца.
type propertyDetailsResponse struct {
	propertyResponse

	NumberOfBedrooms  int    `json:"numberOfBedrooms"`
	NumberOfBathrooms int    `json:"numberOfBathrooms"`
	SellerID          int64  `json:"sellerId"`
	SellerName        string `json:"sellerName"`
	SellerEmail       string `json:"sellerEmail"`
	SellerPhone       string `json:"sellerPhone"`
}

// userResponse - пользователь в ответе пользовательского API.
type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// Маппинг DTO в доменную модель изолирует ядро от деталей чужого API.
func toDomainRecord(dto propertyResponse) domain.PropertyRecord {
	return domain.PropertyRecord{
		ID:               dto.ID,
		PropertyTitle:    dto.PropertyTitle,
		Description:      dto.Description,
		Location:         dto.Location,
		PropertyCategory: dto.PropertyCategory,
		PropertyType:     domain.Segment(dto.PropertyType),
		Price:            dto.Price,
		DiscountPercent:  dto.DiscountPercent,
		SquareFeet:       dto.SquareFeet,
		ImageURLs:        dto.ImageURLs,
	}
}

func toDomainDetails(dto propertyDetailsResponse) *domain.PropertyDetails {
	return &domain.PropertyDetails{
		PropertyRecord:    toDomainRecord(dto.propertyResponse),
		NumberOfBedrooms:  dto.NumberOfBedrooms,
		NumberOfBathrooms: dto.NumberOfBathrooms,
		SellerID:          dto.SellerID,
		SellerName:        dto.SellerName,
		SellerEmail:       dto.SellerEmail,
		SellerPhone:       dto.SellerPhone,
	}
}

func toDomainUser(dto userResponse) domain.User {
	return domain.User{
		ID:       dto.ID,
		Username: dto.Username,
		Email:    dto.Email,
		Role:     dto.Role,
	}
}
