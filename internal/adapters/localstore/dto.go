package localstore

import "realestate-frontend/internal/core/domain"

// storedProperty - проекция PropertyRecord на формат долговременного
// хранилища. Имена полей совпадают с тем, что отдает backend, чтобы
// сохраненное избранное читалось и другими клиентами платформы.
type storedProperty struct {
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

func toStored(p domain.PropertyRecord) storedProperty {
	return storedProperty{
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

func fromStored(s storedProperty) domain.PropertyRecord {
	return domain.PropertyRecord{
		ID:               s.ID,
		PropertyTitle:    s.PropertyTitle,
		Description:      s.Description,
		Location:         s.Location,
		PropertyCategory: s.PropertyCategory,
		PropertyType:     domain.Segment(s.PropertyType),
		Price:            s.Price,
		DiscountPercent:  s.DiscountPercent,
		SquareFeet:       s.SquareFeet,
		ImageURLs:        s.ImageURLs,
	}
}

// sessionRecord - проекция сессии на формат хранилища.
type sessionRecord struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
