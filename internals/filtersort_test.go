package internals

import (
	"easemytrip-planner/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHotels() []model.Hotel {
	return []model.Hotel{
		{HotelID: 1, Name: "Harbor View", Category: "mid_range", PricePerNight: 50, Rating: 4.1},
		{HotelID: 2, Name: "Grand Palace", Category: "luxury", PricePerNight: 300, Rating: 4.8},
		{HotelID: 3, Name: "City Lodge", Category: "budget", PricePerNight: 120, Rating: 3.9},
		{HotelID: 4, Name: "Royal Crown", Category: "luxury", PricePerNight: 300, Rating: 4.6},
		{HotelID: 5, Name: "Backpacker Inn", Category: "budget", PricePerNight: 80, Rating: 3.5},
	}
}

func TestFilterAndSortHotelsCategoryAndPrice(t *testing.T) {
	hotels := []model.Hotel{
		{HotelID: 1, Category: "budget", PricePerNight: 50},
		{HotelID: 2, Category: "luxury", PricePerNight: 300},
		{HotelID: 3, Category: "mid_range", PricePerNight: 120},
		{HotelID: 4, Category: "luxury", PricePerNight: 300},
		{HotelID: 5, Category: "budget", PricePerNight: 80},
	}
	hotels[3].PricePerNight = 250

	result := FilterAndSortHotels(hotels, FilterCriteria{Category: "luxury", SortBy: SortByPrice})

	require.Len(t, result, 2)
	assert.Equal(t, 4, result[0].HotelID)
	assert.Equal(t, 2, result[1].HotelID)
}

func TestFilterAndSortHotelsEmptyCriteriaPassesAll(t *testing.T) {
	hotels := sampleHotels()

	result := FilterAndSortHotels(hotels, FilterCriteria{})

	assert.Len(t, result, len(hotels))
}

func TestFilterAndSortHotelsAllCategoryPassesAll(t *testing.T) {
	result := FilterAndSortHotels(sampleHotels(), FilterCriteria{Category: "all"})

	assert.Len(t, result, 5)
}

func TestFilterAndSortHotelsPredicatesHold(t *testing.T) {
	criteria := FilterCriteria{Category: "luxury", MaxPrice: 300, MinRating: 4.7}

	result := FilterAndSortHotels(sampleHotels(), criteria)

	for _, hotel := range result {
		assert.Equal(t, "luxury", hotel.Category)
		assert.LessOrEqual(t, hotel.PricePerNight, criteria.MaxPrice)
		assert.GreaterOrEqual(t, hotel.Rating, criteria.MinRating)
	}
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].HotelID)
}

func TestFilterAndSortHotelsPriceAscending(t *testing.T) {
	result := FilterAndSortHotels(sampleHotels(), FilterCriteria{SortBy: SortByPrice})

	require.Len(t, result, 5)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].PricePerNight, result[i].PricePerNight)
	}
}

func TestFilterAndSortHotelsRatingDescending(t *testing.T) {
	result := FilterAndSortHotels(sampleHotels(), FilterCriteria{SortBy: SortByRating})

	require.Len(t, result, 5)
	for i := 1; i < len(result); i++ {
		assert.GreaterOrEqual(t, result[i-1].Rating, result[i].Rating)
	}
}

func TestFilterAndSortHotelsStableOnEqualPrices(t *testing.T) {
	// hotels 2 and 4 share the same price, input order must be preserved
	result := FilterAndSortHotels(sampleHotels(), FilterCriteria{SortBy: SortByPrice})

	require.Len(t, result, 5)
	assert.Equal(t, 2, result[3].HotelID)
	assert.Equal(t, 4, result[4].HotelID)
}

func TestFilterAndSortHotelsIdempotent(t *testing.T) {
	criteria := FilterCriteria{Category: "luxury", MaxPrice: 500, SortBy: SortByRating}

	once := FilterAndSortHotels(sampleHotels(), criteria)
	twice := FilterAndSortHotels(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterAndSortHotelsDoesNotMutateInput(t *testing.T) {
	hotels := sampleHotels()

	FilterAndSortHotels(hotels, FilterCriteria{SortBy: SortByPrice})

	assert.Equal(t, sampleHotels(), hotels)
}

func TestFilterAndSortHotelsEmptyInput(t *testing.T) {
	result := FilterAndSortHotels(nil, FilterCriteria{Category: "luxury"})

	assert.Empty(t, result)
}

func TestFilterAndSortHotelsAllFilteredOut(t *testing.T) {
	result := FilterAndSortHotels(sampleHotels(), FilterCriteria{MaxPrice: 10})

	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestFilterAndSortHotelsExplicitZeroMaxPrice(t *testing.T) {
	hotels := append(sampleHotels(), model.Hotel{HotelID: 6, Name: "Pilgrim Rest", Category: "budget", PricePerNight: 0, Rating: 3.2})

	// an explicit zero budget is an active bound, only free stays pass
	result := FilterAndSortHotels(hotels, FilterCriteria{MaxPrice: 0, MaxPriceSet: true})

	require.Len(t, result, 1)
	assert.Equal(t, 6, result[0].HotelID)
}

func TestFilterAndSortTransport(t *testing.T) {
	options := []model.TransportOption{
		{TransportID: 1, Type: "flight", Price: 200, Rating: 4.0},
		{TransportID: 2, Type: "bus", Price: 30, Rating: 3.5},
		{TransportID: 3, Type: "flight", Price: 150, Rating: 4.5},
		{TransportID: 4, Type: "railway", Price: 60, Rating: 4.2},
	}

	result := FilterAndSortTransport(options, FilterCriteria{Category: "flight", SortBy: SortByPrice})

	require.Len(t, result, 2)
	assert.Equal(t, 3, result[0].TransportID)
	assert.Equal(t, 1, result[1].TransportID)
}
