package internals

import "easemytrip-planner/model"

// ComputePackagePrice estimates the total price of a travel package: hotel
// nights for the whole stay, entry fees of every scheduled spot per
// traveler, and the transport legs per traveler.
func ComputePackagePrice(totalDays, travelers int, hotel *model.Hotel, itinerary model.Itinerary, transport []model.TransportOption, spots []model.TouristSpot) float64 {
	if travelers < 1 {
		travelers = 1
	}

	total := 0.0

	if hotel != nil && totalDays > 1 {
		total += hotel.PricePerNight * float64(totalDays-1)
	}

	feeBySpot := make(map[int]float64, len(spots))
	for _, spot := range spots {
		feeBySpot[spot.SpotID] = spot.EntryFee
	}
	for _, day := range itinerary {
		for _, activity := range day.Activities {
			total += feeBySpot[activity.SpotID] * float64(travelers)
		}
	}

	for _, option := range transport {
		total += option.Price * float64(travelers)
	}

	return total
}
