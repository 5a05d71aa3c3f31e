package domain

// ListingImage - одно изображение, загружаемое вместе с формой объявления.
type ListingImage struct {
	Filename string
	Content  []byte
}

// ListingForm - типизированное содержимое формы управления объявлением.
// Явная структура отделяет "какие поля существуют" от "как они кодируются"
// в multipart на проводе (кодирование живет в backend-клиенте).
type ListingForm struct {
	PropertyTitle     string
	Description       string
	Price             float64
	DiscountedPrice   float64
	DiscountPercent   float64
	Location          string
	PropertyCategory  string
	NumberOfBedrooms  int
	NumberOfBathrooms int
	SquareFeet        float64
	PropertyType      Segment
	SellerID          int64
	Images            []ListingImage
}

// ToRecord строит списочное представление из содержимого формы.
// Используется после обновления, когда backend не возвращает тело.
func (f ListingForm) ToRecord(id int64) PropertyRecord {
	return PropertyRecord{
		ID:               id,
		PropertyTitle:    f.PropertyTitle,
		Description:      f.Description,
		Location:         f.Location,
		PropertyCategory: f.PropertyCategory,
		PropertyType:     f.PropertyType,
		Price:            f.Price,
		DiscountPercent:  f.DiscountPercent,
		SquareFeet:       f.SquareFeet,
	}
}
