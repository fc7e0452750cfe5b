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
)

var currencyApiBaseURL string

type CurrencyRateResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

func InitCurrencyApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	currencyApiBaseURL = os.Getenv("CURRENCY_API_BASE_URL")
	if currencyApiBaseURL == "" {
		// local mock server
		currencyApiBaseURL = "http://localhost:8083"
	}
}

// GetExchangeRate returns the rate from one currency to another, falling
// back to a neutral 1.0 when the upstream is unavailable.
func GetExchangeRate(from, to string) float64 {
	rate := 1.0

	apiUrl := currencyApiBaseURL + "/rates?base=" + url.QueryEscape(from)
	resp, err := http.Get(apiUrl)
	if err != nil {
		log.Println("Error while getting exchange rate from api")
		return rate
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("Error while reading response body: ", err)
		return rate
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		log.Println("Error while getting exchange rate from api")
		return rate
	}

	var response CurrencyRateResponse
	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("Error while decoding: ", err)
		return rate
	}

	value, ok := response.Rates[to]
	if !ok {
		log.Println(fmt.Sprintf("No rate found for %s -> %s", from, to))
		return rate
	}

	return value
}

// ConvertAmount converts an amount between currencies at the current rate.
func ConvertAmount(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}
	return amount * GetExchangeRate(from, to)
}
