package externals

import (
	"bytes"
	"encoding/json"
	"fmt"
	"github.com/joho/godotenv"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
)

var foursquareApiKey string

// places response

type FoursquareResponse struct {
	Results []FoursquarePlace `json:"results"`
}
type FoursquarePlace struct {
	FsqID      string               `json:"fsq_id"`
	Name       string               `json:"name"`
	Distance   int                  `json:"distance"`
	Categories []FoursquareCategory `json:"categories"`
	Geocodes   *FoursquareGeocodes  `json:"geocodes"`
	Location   *FoursquareLocation  `json:"location"`
}
type FoursquareCategory struct {
	Name string `json:"name"`
}
type FoursquareGeocodes struct {
	Main *FoursquarePoint `json:"main"`
}
type FoursquarePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
type FoursquareLocation struct {
	FormattedAddress string `json:"formatted_address"`
}

// NearbyPlace is the shape handed back to the destination insights view.
type NearbyPlace struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Address   string  `json:"address"`
	Distance  int     `json:"distance"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func InitFoursquareApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	foursquareApiKey = os.Getenv("FOURSQUARE_API_KEY")
}

// SearchNearbyPlaces looks up places around a coordinate. Without a
// configured key it degrades to an empty result set, not an error.
func SearchNearbyPlaces(latitude, longitude float64, query string, limit int) ([]NearbyPlace, error) {
	if foursquareApiKey == "" {
		log.Println("Foursquare api key not configured, returning no places")
		return []NearbyPlace{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	baseURL := "https://api.foursquare.com/v3/places/search"

	params := url.Values{}
	params.Add("ll", strconv.FormatFloat(latitude, 'f', -1, 64)+","+strconv.FormatFloat(longitude, 'f', -1, 64))
	if query != "" {
		params.Add("query", query)
	}
	params.Add("limit", strconv.Itoa(limit))

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		log.Println("error creating the request: ", err)
		return nil, err
	}
	req.Header.Set("Authorization", foursquareApiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("error calling foursquare api: ", err)
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
		return nil, fmt.Errorf("foursquare HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response FoursquareResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	places := make([]NearbyPlace, 0, len(response.Results))
	for _, result := range response.Results {
		place := NearbyPlace{
			ID:       result.FsqID,
			Name:     result.Name,
			Distance: result.Distance,
		}
		if len(result.Categories) > 0 {
			place.Category = result.Categories[0].Name
		}
		if result.Location != nil {
			place.Address = result.Location.FormattedAddress
		}
		if result.Geocodes != nil && result.Geocodes.Main != nil {
			place.Latitude = result.Geocodes.Main.Latitude
			place.Longitude = result.Geocodes.Main.Longitude
		}
		places = append(places, place)
	}

	return places, nil
}
