package internals

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightSearchURL(t *testing.T) {
	link := FlightSearchURL(BookingParams{
		Origin:        "DEL",
		Destination:   "New York",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-17",
		Travelers:     2,
		FlightClass:   "economy",
		TripType:      "round-trip",
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "www.easemytrip.com", parsed.Host)
	assert.Equal(t, "/flights/search", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "DEL", query.Get("from"))
	assert.Equal(t, "New York", query.Get("to"))
	assert.Equal(t, "2026-09-10", query.Get("depart"))
	assert.Equal(t, "2026-09-17", query.Get("return"))
	assert.Equal(t, "2", query.Get("adults"))
	assert.Equal(t, "economy", query.Get("class"))
	assert.Equal(t, "round-trip", query.Get("trip"))
}

func TestFlightSearchURLDefaults(t *testing.T) {
	link := FlightSearchURL(BookingParams{Destination: "Goa", Travelers: 1})

	query, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "economy", query.Query().Get("class"))
	assert.Equal(t, "round-trip", query.Query().Get("trip"))
}

func TestHotelSearchURL(t *testing.T) {
	link := HotelSearchURL(BookingParams{
		Destination:   "Jaipur",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-17",
		Travelers:     3,
		HotelCategory: "luxury",
	})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "/hotels/search", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "Jaipur", query.Get("city"))
	assert.Equal(t, "2026-09-10", query.Get("checkin"))
	assert.Equal(t, "2026-09-17", query.Get("checkout"))
	assert.Equal(t, "1", query.Get("rooms"))
	assert.Equal(t, "3", query.Get("adults"))
	assert.Equal(t, "luxury", query.Get("category"))
}

func TestHotelSearchURLEscapesDestination(t *testing.T) {
	link := HotelSearchURL(BookingParams{Destination: "Rio de Janeiro", Travelers: 1})

	assert.False(t, strings.Contains(link, "Rio de Janeiro"))
	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Rio de Janeiro", parsed.Query().Get("city"))
}

func TestPartialDataStillProducesValidURL(t *testing.T) {
	link := HotelSearchURL(BookingParams{})

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "", parsed.Query().Get("city"))
	assert.Equal(t, "0", parsed.Query().Get("adults"))
}
