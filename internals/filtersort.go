package internals

import (
	"easemytrip-planner/model"
	"sort"
)

const (
	SortByPrice  = "price"
	SortByRating = "rating"
)

// FilterCriteria drives the hotel and transport result pipelines.
// A zero value for a field disables that dimension: empty or "all" category
// passes every item, MaxPrice and MinRating are inclusive bounds and only
// active when positive. MaxPriceSet marks an explicitly supplied price
// bound, so a budget of zero still filters out every priced item.
type FilterCriteria struct {
	Category    string  `json:"category"`
	MaxPrice    float64 `json:"max_price"`
	MaxPriceSet bool    `json:"-"`
	MinRating   float64 `json:"min_rating"`
	SortBy      string  `json:"sort_by"`
}

func (c FilterCriteria) matches(category string, price, rating float64) bool {
	if c.Category != "" && c.Category != "all" && category != c.Category {
		return false
	}
	if (c.MaxPriceSet || c.MaxPrice > 0) && price > c.MaxPrice {
		return false
	}
	if c.MinRating > 0 && rating < c.MinRating {
		return false
	}
	return true
}

// FilterAndSortHotels returns a new filtered and sorted slice, the input is
// not modified. Sorting is stable, ties keep their input order.
func FilterAndSortHotels(hotels []model.Hotel, criteria FilterCriteria) []model.Hotel {
	filtered := make([]model.Hotel, 0, len(hotels))
	for _, hotel := range hotels {
		if criteria.matches(hotel.Category, hotel.PricePerNight, hotel.Rating) {
			filtered = append(filtered, hotel)
		}
	}

	switch criteria.SortBy {
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].PricePerNight < filtered[j].PricePerNight
		})
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}

// FilterAndSortTransport applies the same pipeline to inter-destination
// transport options, filtering on the option type.
func FilterAndSortTransport(options []model.TransportOption, criteria FilterCriteria) []model.TransportOption {
	filtered := make([]model.TransportOption, 0, len(options))
	for _, option := range options {
		if criteria.matches(option.Type, option.Price, option.Rating) {
			filtered = append(filtered, option)
		}
	}

	switch criteria.SortBy {
	case SortByPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortByRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}
