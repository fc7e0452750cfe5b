package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"easemytrip-planner/db"
	"easemytrip-planner/externals"
	"easemytrip-planner/internals"
)

func HandleTransportOptions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTransportOptions(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTransportOptions(w http.ResponseWriter, r *http.Request) {
	toIDStr := r.URL.Query().Get("to_destination_id")
	if toIDStr == "" {
		log.Println("Destination id is missing")
		http.Error(w, "Destination id is required", http.StatusBadRequest)
		return
	}
	toID, err := strconv.Atoi(toIDStr)
	if err != nil || toID <= 0 {
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

	transportDAO := db.NewTransportDAO(db.GetDB())

	var options interface{}
	fromIDStr := r.URL.Query().Get("from_destination_id")
	if fromIDStr != "" {
		fromID, err := strconv.Atoi(fromIDStr)
		if err != nil || fromID <= 0 {
			log.Println("Origin id is not valid")
			http.Error(w, "The provided id is not valid", http.StatusBadRequest)
			return
		}
		pairOptions, err := transportDAO.GetTransportOptions(fromID, toID)
		if err != nil {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		options = internals.FilterAndSortTransport(pairOptions, criteria)
	} else {
		allOptions, err := transportDAO.GetTransportOptionsByDestination(toID)
		if err != nil {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		options = internals.FilterAndSortTransport(allOptions, criteria)
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(options)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleLocalTransport(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

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

	transportDAO := db.NewTransportDAO(db.GetDB())
	transport, err := transportDAO.GetLocalTransport(destinationID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(transport)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type flightSearchResponse struct {
	Message     string `json:"message"`
	RedirectURL string `json:"redirect_url"`
}

// HandleFlightSearch tries the upstream flight inventory and, when it times
// out or fails, answers with the booking-site redirect instead of an error.
func HandleFlightSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		log.Println("Missing origin or destination")
		http.Error(w, "Origin and destination are required", http.StatusBadRequest)
		return
	}

	travelers := 1
	if travelersStr := r.URL.Query().Get("travelers"); travelersStr != "" {
		parsed, err := strconv.Atoi(travelersStr)
		if err != nil || parsed <= 0 {
			log.Println("Wrong travelers value")
			http.Error(w, "The provided travelers value is not valid", http.StatusBadRequest)
			return
		}
		travelers = parsed
	}

	params := internals.BookingParams{
		Origin:        from,
		Destination:   to,
		DepartureDate: r.URL.Query().Get("depart"),
		ReturnDate:    r.URL.Query().Get("return"),
		Travelers:     travelers,
		FlightClass:   r.URL.Query().Get("class"),
		TripType:      r.URL.Query().Get("trip"),
	}

	err := externals.SearchFlights(from, to, params.DepartureDate)
	if err != nil {
		message := "Flight API not working, redirecting to EaseMyTrip"
		if errors.Is(err, externals.ErrFlightSearchTimeout) {
			message = "Flight API timeout, redirecting to EaseMyTrip"
		}
		log.Println("Flight search failed: ", err)

		response := flightSearchResponse{
			Message:     message,
			RedirectURL: internals.FlightSearchURL(params),
		}
		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			log.Println("Error encoding JSON: ", err)
			http.Error(w, "Error encoding", http.StatusInternalServerError)
		}
		return
	}

	// the mock upstream never succeeds, but a working inventory would be
	// returned here
	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(flightSearchResponse{Message: "Flight search completed"})
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
	}
}
