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
)

var geoapifyApiKey string

// geocoding response

type GeoapifyResponse struct {
	Features []GeoapifyFeature `json:"features"`
}
type GeoapifyFeature struct {
	Properties GeoapifyProperties `json:"properties"`
}
type GeoapifyProperties struct {
	Formatted   string  `json:"formatted"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	PlaceID     string  `json:"place_id"`
}

// LocationSuggestion is the shape handed back to the destination search.
type LocationSuggestion struct {
	ID          string  `json:"id"`
	Formatted   string  `json:"formatted"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	CountryCode string  `json:"country_code"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

func InitGeoapifyApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	geoapifyApiKey = os.Getenv("GEOAPIFY_API_KEY")
}

// SearchLocations runs a forward geocoding search. A missing key is a
// configuration error, unlike the photo and places paths.
func SearchLocations(query string, limit int) ([]LocationSuggestion, error) {
	if geoapifyApiKey == "" {
		return nil, errors.New("geoapify api key not configured")
	}
	if len(query) < 2 {
		return []LocationSuggestion{}, nil
	}
	if limit <= 0 {
		limit = 5
	}

	baseURL := "https://api.geoapify.com/v1/geocode/search"

	params := url.Values{}
	params.Add("text", query)
	params.Add("limit", strconv.Itoa(limit))
	params.Add("format", "geojson")
	params.Add("apiKey", geoapifyApiKey)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error creating the request: ", err)
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
		return nil, fmt.Errorf("geoapify HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response GeoapifyResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	suggestions := make([]LocationSuggestion, 0, len(response.Features))
	for _, feature := range response.Features {
		suggestions = append(suggestions, LocationSuggestion{
			ID:          feature.Properties.PlaceID,
			Formatted:   feature.Properties.Formatted,
			City:        feature.Properties.City,
			State:       feature.Properties.State,
			Country:     feature.Properties.Country,
			CountryCode: feature.Properties.CountryCode,
			Latitude:    feature.Properties.Latitude,
			Longitude:   feature.Properties.Longitude,
		})
	}

	return suggestions, nil
}

// ReverseGeocode resolves coordinates to the nearest known place.
func ReverseGeocode(latitude, longitude float64) (*LocationSuggestion, error) {
	if geoapifyApiKey == "" {
		return nil, errors.New("geoapify api key not configured")
	}

	baseURL := "https://api.geoapify.com/v1/geocode/reverse"

	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Add("format", "geojson")
	params.Add("apiKey", geoapifyApiKey)

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	resp, err := http.Get(fullURL)
	if err != nil {
		log.Println("error creating the request: ", err)
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
		return nil, fmt.Errorf("geoapify HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response GeoapifyResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	if len(response.Features) == 0 {
		log.Println("Missing data in the response")
		return nil, fmt.Errorf("missing data in response")
	}

	properties := response.Features[0].Properties
	suggestion := LocationSuggestion{
		ID:          properties.PlaceID,
		Formatted:   properties.Formatted,
		City:        properties.City,
		State:       properties.State,
		Country:     properties.Country,
		CountryCode: properties.CountryCode,
		Latitude:    properties.Latitude,
		Longitude:   properties.Longitude,
	}

	return &suggestion, nil
}
