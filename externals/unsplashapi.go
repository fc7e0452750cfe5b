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

var unsplashAccessKey string

// photo search response

type UnsplashResponse struct {
	Results []UnsplashPhoto `json:"results"`
}
type UnsplashPhoto struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Urls        *UnsplashUrls `json:"urls"`
	User        *UnsplashUser `json:"user"`
}
type UnsplashUrls struct {
	Regular string `json:"regular"`
	Small   string `json:"small"`
}
type UnsplashUser struct {
	Name string `json:"name"`
}

// DestinationPhoto is the shape handed back to the destination views.
type DestinationPhoto struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ThumbURL    string `json:"thumb_url"`
	Credit      string `json:"credit"`
}

func InitUnsplashApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	unsplashAccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
}

// SearchPhotos fetches destination photos. Without a configured key it
// degrades to an empty result set, not an error.
func SearchPhotos(query string, perPage int) ([]DestinationPhoto, error) {
	if unsplashAccessKey == "" {
		log.Println("Unsplash access key not configured, returning no photos")
		return []DestinationPhoto{}, nil
	}
	if query == "" {
		return []DestinationPhoto{}, nil
	}
	if perPage <= 0 {
		perPage = 12
	}

	baseURL := "https://api.unsplash.com/search/photos"

	params := url.Values{}
	params.Add("query", query)
	params.Add("per_page", strconv.Itoa(perPage))
	params.Add("orientation", "landscape")
	params.Add("content_filter", "high")

	fullURL := fmt.Sprintf("%s?%s", baseURL, params.Encode())

	req, err := http.NewRequest("GET", fullURL, nil)
	if err != nil {
		log.Println("error creating the request: ", err)
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+unsplashAccessKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Println("error calling unsplash api: ", err)
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
		return nil, fmt.Errorf("unsplash HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response UnsplashResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return nil, err
	}

	photos := make([]DestinationPhoto, 0, len(response.Results))
	for _, result := range response.Results {
		photo := DestinationPhoto{
			ID:          result.ID,
			Description: result.Description,
		}
		if result.Urls != nil {
			photo.URL = result.Urls.Regular
			photo.ThumbURL = result.Urls.Small
		}
		if result.User != nil {
			photo.Credit = result.User.Name
		}
		photos = append(photos, photo)
	}

	return photos, nil
}
