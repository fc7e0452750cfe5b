package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"easemytrip-planner/db"
	"easemytrip-planner/externals"
	"easemytrip-planner/internals"
)

// filterCriteriaFromQuery reads the optional pipeline parameters; absent
// values deactivate the corresponding dimension.
func filterCriteriaFromQuery(r *http.Request) (internals.FilterCriteria, bool) {
	criteria := internals.FilterCriteria{
		Category: r.URL.Query().Get("category"),
		SortBy:   r.URL.Query().Get("sort_by"),
	}

	if maxPriceStr := r.URL.Query().Get("max_price"); maxPriceStr != "" {
		maxPrice, err := strconv.ParseFloat(maxPriceStr, 64)
		if err != nil || maxPrice < 0 {
			return criteria, false
		}
		criteria.MaxPrice = maxPrice
		criteria.MaxPriceSet = true
	}
	if minRatingStr := r.URL.Query().Get("min_rating"); minRatingStr != "" {
		minRating, err := strconv.ParseFloat(minRatingStr, 64)
		if err != nil || minRating < 0 {
			return criteria, false
		}
		criteria.MinRating = minRating
	}

	return criteria, true
}

func HandleHotels(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getHotels(w, r)
	default:
		log.Println("HandleHotels received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getHotels(w http.ResponseWriter, r *http.Request) {
	destinationIDStr := r.URL.Query().Get("destination_id")
	if destinationIDStr == "" {
		log.Println("Destination id is missing")
		http.Error(w, "Destination id is required", http.StatusBadRequest)
		return
	}
	destinationID, err := strconv.Atoi(destinationIDStr)
	if err != nil || destinationID <= 0 {
		log.Println("Destination id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	criteria, ok := filterCriteriaFromQuery(r)
	if !ok {
		log.Println("Wrong filter values")
		http.Error(w, "The provided filters are not valid", http.StatusBadRequest)
		return
	}

	hotelDAO := db.NewHotelDAO(db.GetDB())
	hotels, err := hotelDAO.GetHotelsByDestination(destinationID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// an empty result after filtering is a valid response, the caller
	// renders an empty state
	filtered := internals.FilterAndSortHotels(hotels, criteria)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(filtered)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleStayHotelSearch queries the external hotel inventory.
func HandleStayHotelSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	destination := r.URL.Query().Get("destination")
	if destination == "" {
		log.Println("Missing destination")
		http.Error(w, "Missing destination", http.StatusBadRequest)
		return
	}

	adults := 1
	if adultsStr := r.URL.Query().Get("adults"); adultsStr != "" {
		parsed, err := strconv.Atoi(adultsStr)
		if err != nil || parsed <= 0 {
			log.Println("Wrong adults value")
			http.Error(w, "The provided adults value is not valid", http.StatusBadRequest)
			return
		}
		adults = parsed
	}

	searchParams := externals.StayHotelSearchParams{
		Destination: destination,
		CheckIn:     r.URL.Query().Get("check_in"),
		CheckOut:    r.URL.Query().Get("check_out"),
		Adults:      adults,
		Rooms:       1,
		Category:    r.URL.Query().Get("category"),
	}

	hotels, err := externals.SearchStayHotels(searchParams)
	if err != nil {
		log.Println("Error while searching stay hotels: ", err)
		http.Error(w, "Hotel search failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(hotels)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleStayHotelAvailability checks one hotel for the requested dates.
func HandleStayHotelAvailability(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	hotelID := r.URL.Query().Get("hotel_id")
	checkIn := r.URL.Query().Get("check_in")
	checkOut := r.URL.Query().Get("check_out")
	if hotelID == "" || checkIn == "" || checkOut == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}

	availability, err := externals.GetStayHotelAvailability(hotelID, checkIn, checkOut)
	if err != nil {
		log.Println("Error while checking availability: ", err)
		http.Error(w, "Availability check failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(availability)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type stayBookingBody struct {
	HotelID    string  `json:"hotel_id"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Adults     int     `json:"adults"`
	Rooms      int     `json:"rooms"`
	TotalPrice float64 `json:"total_price"`
}

// HandleStayHotelBooking places a booking with the upstream provider on
// behalf of the signed-in user.
func HandleStayHotelBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	_, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body stayBookingBody
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer func() {
		err = r.Body.Close()
		if err != nil {
			log.Println("Error closing request body:", err)
		}
	}()

	if body.HotelID == "" || body.CheckIn == "" || body.CheckOut == "" {
		log.Println("Missing required fields")
		http.Error(w, "Missing required fields", http.StatusBadRequest)
		return
	}
	if body.Adults <= 0 {
		body.Adults = 1
	}
	if body.Rooms <= 0 {
		body.Rooms = 1
	}

	booking := externals.StayBookingRequest{
		HotelID:    body.HotelID,
		CheckIn:    body.CheckIn,
		CheckOut:   body.CheckOut,
		Adults:     body.Adults,
		Rooms:      body.Rooms,
		TotalPrice: body.TotalPrice,
		Reference:  uuid.NewString(),
	}

	response, err := externals.BookStayHotel(booking)
	if err != nil {
		log.Println("Error while booking hotel: ", err)
		http.Error(w, "Hotel booking failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
