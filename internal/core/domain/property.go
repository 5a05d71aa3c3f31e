package domain

import "fmt"

// Segment - рыночный сегмент объявления (покупка или аренда).
type Segment string

const (
	SegmentBuy  Segment = "BUY"
	SegmentRent Segment = "RENT"
)

// ParseSegment валидирует строку сегмента, пришедшую из query-параметра.
func ParseSegment(s string) (Segment, error) {
	switch Segment(s) {
	case SegmentBuy, SegmentRent:
		return Segment(s), nil
	}
	return "", fmt.Errorf("unknown market segment: %q", s)
}

// PropertyRecord - объект недвижимости, как его отдает backend.
// Клиентская часть никогда не изменяет поля записи - только читает их
// для отображения/фильтрации и целиком передает в хранилище избранного.
type PropertyRecord struct {
	ID               int64
	PropertyTitle    string
	Description      string
	Location         string
	PropertyCategory string
	PropertyType     Segment
	Price            float64
	DiscountPercent  float64
	SquareFeet       float64
	ImageURLs        []string
}

// PropertyDetails - обогащенная карточка для детальной страницы.
// Содержит контакты продавца, которых нет в списочном представлении.
type PropertyDetails struct {
	PropertyRecord

	NumberOfBedrooms  int
	NumberOfBathrooms int
	SellerID          int64
	SellerName        string
	SellerEmail       string
	SellerPhone       string
}

// Coordinates - результат геокодирования адреса объекта.
// Geohash используется как стабильный ключ для карты/кэша тайлов.
type Coordinates struct {
	Lat     float64
	Lon     float64
	Geohash string
}

// PropertyDetailsResult - то, что уходит на детальную страницу.
// Coordinates == nil, если геокодирование не удалось - страница
// рендерится без карты, это не ошибка.
type PropertyDetailsResult struct {
	Details     *PropertyDetails
	Coordinates *Coordinates
}
