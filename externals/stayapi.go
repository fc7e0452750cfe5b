package externals

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"
)

var stayApiKey string
var stayApiBaseURL string

const flightSearchTimeout = 15 * time.Second

// hotel search structures

type StayHotelResponse struct {
	Hotels []StayHotel `json:"hotels"`
}
type StayHotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"price_per_night"`
	Currency      string   `json:"currency"`
	Category      string   `json:"category"`
	Amenities     []string `json:"amenities"`
	Availability  bool     `json:"availability"`
}

type StayHotelSearchParams struct {
	Destination string
	CheckIn     string
	CheckOut    string
	Adults      int
	Rooms       int
	Category    string
}

type StayAvailabilityResponse struct {
	HotelID   string  `json:"hotel_id"`
	Available bool    `json:"available"`
	Price     float64 `json:"price"`
}

type StayBookingRequest struct {
	HotelID    string  `json:"hotel_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Adults     int     `json:"adults"`
	Rooms      int     `json:"rooms"`
	TotalPrice float64 `json:"total_price"`
	Reference  string  `json:"reference"`
}

type StayBookingResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

func InitStayApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	stayApiKey = os.Getenv("STAYAPI_KEY")
	stayApiBaseURL = os.Getenv("STAYAPI_BASE_URL")
	if stayApiBaseURL == "" {
		// local mock server
		stayApiBaseURL = "http://localhost:8082"
	}
}

// SearchStayHotels queries the upstream hotel inventory.
func SearchStayHotels(searchParams StayHotelSearchParams) ([]StayHotel, error) {
	if stayApiKey == "" {
		return nil, errors.New("stay api key not configured")
	}

	params := url.Values{}
	params.Add("destination", searchParams.Destination)
	params.Add("check_in", searchParams.CheckIn)
	params.Add("check_out", searchParams.CheckOut)
	params.Add("adults", strconv.Itoa(searchParams.Adults))
	params.Add("rooms", strconv.Itoa(searchParams.Rooms))
	if searchParams.Category != "" {
		params.Add("category", searchParams.Category)
	}
	params.Add("key", stayApiKey)

	fullURL := fmt.Sprintf("%s/hotels/search?%s", stayApiBaseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error calling stay api: ", err)
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return nil, err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stay api HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response StayHotelResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	return response.Hotels, nil
}

// GetStayHotelAvailability checks a single hotel for the given dates.
func GetStayHotelAvailability(hotelID, checkIn, checkOut string) (*StayAvailabilityResponse, error) {
	if stayApiKey == "" {
		return nil, errors.New("stay api key not configured")
	}

	params := url.Values{}
	params.Add("hotel_id", hotelID)
	params.Add("check_in", checkIn)
	params.Add("check_out", checkOut)
	params.Add("key", stayApiKey)

	fullURL := fmt.Sprintf("%s/hotels/availability?%s", stayApiBaseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error calling stay api: ", err)
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stay api HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response StayAvailabilityResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	return &response, nil
}

// BookStayHotel places a booking with the upstream provider.
func BookStayHotel(booking StayBookingRequest) (*StayBookingResponse, error) {
	if stayApiKey == "" {
		return nil, errors.New("stay api key not configured")
	}

	payload, err := json.Marshal(booking)
	if err != nil {
		return nil, err
	}

	fullURL := fmt.Sprintf("%s/hotels/booking?key=%s", stayApiBaseURL, url.QueryEscape(stayApiKey))

	resp, err := http.Post(fullURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("error calling stay api: ", err)
		return nil, err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return nil, err
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("stay api HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response StayBookingResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	return &response, nil
}

// ErrFlightSearchTimeout marks the 15 second budget being exhausted before
// the upstream answered.
var ErrFlightSearchTimeout = errors.New("flight search timeout")

// SearchFlights races the upstream flight search against a fixed timeout and
// reports whichever finishes first. The local mock upstream fails after a
// short delay, which drives the caller's redirect fallback.
func SearchFlights(from, to, departDate string) error {
	errChan := make(chan error, 1)

	go func() {
		params := url.Values{}
		params.Add("from", from)
		params.Add("to", to)
		params.Add("depart", departDate)

		fullURL := fmt.Sprintf("%s/flights/search?%s", stayApiBaseURL, params.Encode())

		resp, err := http.Get(fullURL)
		if err != nil {
			errChan <- err
			return
		}
		defer func() {
			err = resp.Body.Close()
			if err != nil {
				log.Println("Error closing response body:", err)
			}
		}()

		if resp.StatusCode != http.StatusOK {
			errChan <- fmt.Errorf("flight api HTTP error: %d", resp.StatusCode)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-time.After(flightSearchTimeout):
		return ErrFlightSearchTimeout
	}
}
