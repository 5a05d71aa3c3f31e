package domain

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// FilterCriteria - критерии поиска, введенные пользователем или
// разобранные из query-строки. Пустое поле означает "без ограничения".
// Числовые поля хранятся как сырые строки, потому что приходят из
// query-параметров; разбор происходит в момент сравнения.
type FilterCriteria struct {
	Location string
	Price    string // верхняя граница цены, включительно
	Size     string // нижняя граница площади, включительно
	Category string
}

// IsEmpty сообщает, задано ли хоть одно ограничение.
func (c FilterCriteria) IsEmpty() bool {
	return c.Location == "" && c.Price == "" && c.Size == "" && c.Category == ""
}

// CriteriaFromQuery разбирает четыре распознаваемых ключа из query-строки.
// Отсутствующий ключ дает пустую строку, то есть "без ограничения".
func CriteriaFromQuery(values url.Values) FilterCriteria {
	return FilterCriteria{
		Location: values.Get("location"),
		Price:    values.Get("price"),
		Size:     values.Get("size"),
		Category: values.Get("category"),
	}
}

// Matches решает, проходит ли объект все заданные критерии.
// Чистая функция: не имеет побочных эффектов и тотальна для любых входов.
//
// Незаданный критерий считается выполненным. Отсутствующее у объекта
// поле location/category при заданном критерии дает "не подходит",
// а не ошибку - весь проход фильтра не должен падать из-за одной записи.
//
// Нечисловое значение price/size разбирается в NaN; любое сравнение
// с NaN ложно, поэтому некорректный числовой фильтр дает ноль
// совпадений по этому измерению (fail-closed).
func Matches(p PropertyRecord, c FilterCriteria) bool {
	if c.Location != "" && !containsFold(p.Location, c.Location) {
		return false
	}
	if c.Price != "" {
		ceiling := numberOrNaN(c.Price)
		if !(p.Price <= ceiling) {
			return false
		}
	}
	if c.Size != "" {
		floor := numberOrNaN(c.Size)
		if !(p.SquareFeet >= floor) {
			return false
		}
	}
	if c.Category != "" && !containsFold(p.PropertyCategory, c.Category) {
		return false
	}
	return true
}

// FilterProperties прогоняет Matches по всему набору. Полный пересчет
// без индексов: ожидаемые наборы - десятки, максимум сотни объявлений.
func FilterProperties(records []PropertyRecord, c FilterCriteria) []PropertyRecord {
	filtered := make([]PropertyRecord, 0, len(records))
	for _, p := range records {
		if Matches(p, c) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func numberOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
