package mockservers

import (
	"fmt"
	"log"
	"net/http"
)

func StartCurrencyApiServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/rates", CurrencyRatesHandler)

	fmt.Println("Currency API mock server starting on port 8083")

	err := http.ListenAndServe(":8083", mux)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Currency API mock server")
	}
}

func CurrencyRatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	base := r.URL.Query().Get("base")
	if base == "" {
		base = "USD"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"base": "` + base + `", "rates": {"USD": 1.0, "EUR": 0.92, "INR": 83.2, "GBP": 0.79}}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}
