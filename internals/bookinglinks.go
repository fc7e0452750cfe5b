package internals

import (
	"net/url"
	"strconv"
)

const bookingBaseURL = "https://www.easemytrip.com"

// BookingParams are the trip parameters collected by the wizard. No
// completeness validation happens here; partial data yields a syntactically
// valid but semantically incomplete URL, which the booking site handles.
type BookingParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Travelers     int
	FlightClass   string
	TripType      string
	HotelCategory string
}

// FlightSearchURL formats the outbound flight deep link.
func FlightSearchURL(params BookingParams) string {
	flightClass := params.FlightClass
	if flightClass == "" {
		flightClass = "economy"
	}
	tripType := params.TripType
	if tripType == "" {
		tripType = "round-trip"
	}

	values := url.Values{}
	values.Set("from", params.Origin)
	values.Set("to", params.Destination)
	values.Set("depart", params.DepartureDate)
	values.Set("return", params.ReturnDate)
	values.Set("adults", strconv.Itoa(params.Travelers))
	values.Set("class", flightClass)
	values.Set("trip", tripType)

	return bookingBaseURL + "/flights/search?" + values.Encode()
}

// HotelSearchURL formats the outbound hotel deep link.
func HotelSearchURL(params BookingParams) string {
	values := url.Values{}
	values.Set("city", params.Destination)
	values.Set("checkin", params.DepartureDate)
	values.Set("checkout", params.ReturnDate)
	values.Set("rooms", "1")
	values.Set("adults", strconv.Itoa(params.Travelers))
	if params.HotelCategory != "" {
		values.Set("category", params.HotelCategory)
	}

	return bookingBaseURL + "/hotels/search?" + values.Encode()
}
