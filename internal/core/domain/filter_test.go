package domain

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() PropertyRecord {
	return PropertyRecord{
		ID:               1,
		PropertyTitle:    "Sunrise Villa",
		Location:         "Bangalore South",
		PropertyCategory: "Villa",
		PropertyType:     SegmentBuy,
		Price:            50000,
		SquareFeet:       1200,
	}
}

func TestMatchesEmptyCriteria(t *testing.T) {
	assert.True(t, Matches(sampleRecord(), FilterCriteria{}))
	assert.True(t, Matches(PropertyRecord{}, FilterCriteria{}))
}

func TestMatchesLocationCaseInsensitiveSubstring(t *testing.T) {
	p := sampleRecord()

	assert.True(t, Matches(p, FilterCriteria{Location: "BANGALORE"}))
	assert.True(t, Matches(p, FilterCriteria{Location: "bangalore south"}))
	assert.True(t, Matches(p, FilterCriteria{Location: "galore"}))
	assert.False(t, Matches(p, FilterCriteria{Location: "Mumbai"}))
}

func TestMatchesPriceCeilingInclusive(t *testing.T) {
	p := sampleRecord()

	assert.True(t, Matches(p, FilterCriteria{Price: "50000"}))
	assert.True(t, Matches(p, FilterCriteria{Price: "50001"}))
	assert.False(t, Matches(p, FilterCriteria{Price: "49999"}))
}

func TestMatchesSizeFloorInclusive(t *testing.T) {
	p := sampleRecord()

	assert.True(t, Matches(p, FilterCriteria{Size: "1200"}))
	assert.True(t, Matches(p, FilterCriteria{Size: "1199"}))
	assert.False(t, Matches(p, FilterCriteria{Size: "1201"}))
}

func TestMatchesCategory(t *testing.T) {
	p := sampleRecord()

	assert.True(t, Matches(p, FilterCriteria{Category: "villa"}))
	assert.False(t, Matches(p, FilterCriteria{Category: "apartment"}))
}

// Нечисловой фильтр по цене или площади не падает, а дает ноль
// совпадений: сравнение с NaN всегда ложно.
func TestMatchesUnparsableNumberMatchesNothing(t *testing.T) {
	p := sampleRecord()

	assert.False(t, Matches(p, FilterCriteria{Price: "cheap"}))
	assert.False(t, Matches(p, FilterCriteria{Size: "big"}))
}

// Запись без location или category не проходит заданный критерий,
// но не ломает проход по остальным записям.
func TestMatchesMissingFieldFailsCriterionOnly(t *testing.T) {
	bare := PropertyRecord{ID: 2, Price: 10000, SquareFeet: 800}

	assert.False(t, Matches(bare, FilterCriteria{Location: "Bangalore"}))
	assert.False(t, Matches(bare, FilterCriteria{Category: "Villa"}))
	assert.True(t, Matches(bare, FilterCriteria{Price: "10000"}))
}

func TestFilterPropertiesCombinedCriteria(t *testing.T) {
	records := []PropertyRecord{
		{ID: 1, Location: "Bangalore South", PropertyCategory: "Villa", Price: 45000, SquareFeet: 1500},
		{ID: 2, Location: "Bangalore North", PropertyCategory: "Apartment", Price: 30000, SquareFeet: 900},
		{ID: 3, Location: "Chennai", PropertyCategory: "Villa", Price: 40000, SquareFeet: 1600},
	}

	got := FilterProperties(records, FilterCriteria{Location: "bangalore", Price: "50000", Size: "1000"})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	got = FilterProperties(records, FilterCriteria{})
	assert.Len(t, got, 3)

	got = FilterProperties(records, FilterCriteria{Price: "not-a-number"})
	assert.Empty(t, got)
}

func TestCriteriaFromQuery(t *testing.T) {
	values := url.Values{}
	values.Set("location", "Bangalore")
	values.Set("price", "50000")

	criteria := CriteriaFromQuery(values)
	assert.Equal(t, "Bangalore", criteria.Location)
	assert.Equal(t, "50000", criteria.Price)
	assert.Empty(t, criteria.Size)
	assert.Empty(t, criteria.Category)
	assert.False(t, criteria.IsEmpty())

	assert.True(t, CriteriaFromQuery(url.Values{}).IsEmpty())
}

func TestParseSegment(t *testing.T) {
	seg, err := ParseSegment("BUY")
	require.NoError(t, err)
	assert.Equal(t, SegmentBuy, seg)

	seg, err = ParseSegment("RENT")
	require.NoError(t, err)
	assert.Equal(t, SegmentRent, seg)

	_, err = ParseSegment("LEASE")
	assert.Error(t, err)
}
