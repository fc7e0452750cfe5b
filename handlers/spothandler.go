package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"easemytrip-planner/db"
)

func HandleTouristSpots(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTouristSpots(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func HandleTouristSpot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTouristSpotById(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTouristSpotById(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")

	// check id present
	if idStr == "" {
		log.Println("Spot id is missing")
		http.Error(w, "Spot id is required", http.StatusBadRequest)
		return
	}
	// check id format
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Println("Spot id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	spotDAO := db.NewTouristSpotDAO(db.GetDB())
	spot, err := spotDAO.GetSpotById(id)
	if err != nil {
		log.Println("Tourist spot not found: ", err)
		http.Error(w, "Tourist spot could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(spot)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func getTouristSpots(w http.ResponseWriter, r *http.Request) {
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

	spotDAO := db.NewTouristSpotDAO(db.GetDB())
	spots, err := spotDAO.GetSpotsByDestination(destinationID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(spots)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
