package mockservers

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

// simulated upstream latency before the flight path fails
const flightFailureDelay = 3 * time.Second

func StartStayApiServer() {
	mux := http.NewServeMux()
	mux.HandleFunc("/hotels/search", StayHotelSearchHandler)
	mux.HandleFunc("/hotels/availability", StayAvailabilityHandler)
	mux.HandleFunc("/hotels/booking", StayBookingHandler)
	mux.HandleFunc("/flights/search", StayFlightSearchHandler)

	fmt.Println("Stay API mock server starting on port 8082")

	err := http.ListenAndServe(":8082", mux)
	if err != nil {
		// fatal condition
		log.Fatal("Failed to start Stay API mock server")
	}
}

func StayHotelSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"hotels": [
		{"id": "stay-1", "name": "Grand Plaza Hotel", "category": "luxury", "rating": 4.8, "price_per_night": 299.99, "currency": "USD", "city": "Jaipur", "country": "India", "amenities": ["wifi", "pool", "restaurant"], "availability": true},
		{"id": "stay-2", "name": "Comfort Inn", "category": "mid_range", "rating": 4.2, "price_per_night": 129.99, "currency": "USD", "city": "Jaipur", "country": "India", "amenities": ["wifi", "parking"], "availability": true},
		{"id": "stay-3", "name": "Backpacker Hostel", "category": "budget", "rating": 3.8, "price_per_night": 29.99, "currency": "USD", "city": "Jaipur", "country": "India", "amenities": ["wifi"], "availability": true}
	]}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}

func StayAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	hotelID := r.URL.Query().Get("hotel_id")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte(`{"hotel_id": "` + hotelID + `", "available": true, "price": 129.99}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}

func StayBookingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_, err := w.Write([]byte(`{"booking_id": "mock-booking-1", "status": "confirmed"}`))
	if err != nil {
		fmt.Println(err)
		http.Error(w, "error while writing the response", http.StatusInternalServerError)
	}
}

// StayFlightSearchHandler simulates a flight inventory that is not
// available: it waits and then fails, driving the booking-site redirect
// fallback on the caller side.
func StayFlightSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	time.Sleep(flightFailureDelay)
	http.Error(w, "flight inventory not available", http.StatusServiceUnavailable)
}
