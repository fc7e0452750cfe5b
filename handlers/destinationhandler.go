package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"easemytrip-planner/db"
	"easemytrip-planner/externals"
	"easemytrip-planner/model"
)

func HandleDestinations(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getDestinations(w, r)
	default:
		log.Println("HandleDestinations received an unsupported method")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getDestinations(w http.ResponseWriter, r *http.Request) {
	destinationDAO := db.NewDestinationDAO(db.GetDB())

	query := r.URL.Query().Get("query")

	var err error
	var destinations interface{}
	if query != "" {
		destinations, err = destinationDAO.SearchDestinationsByName(query)
	} else {
		destinations, err = destinationDAO.GetDestinations()
	}
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(destinations)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleDestination(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getDestinationById(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getDestinationById(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get("id")

	// check id present
	if idStr == "" {
		log.Println("Destination id is missing")
		http.Error(w, "Destination id is required", http.StatusBadRequest)
		return
	}
	// check id format
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Println("Destination id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	destinationDAO := db.NewDestinationDAO(db.GetDB())

	destination, err := destinationDAO.GetDestinationById(id)
	if err != nil {
		log.Println("Destination not found: ", err)
		http.Error(w, "Destination could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(destination)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleTravelerGroups(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTravelerGroups(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTravelerGroups(w http.ResponseWriter, r *http.Request) {
	travelerGroupDAO := db.NewTravelerGroupDAO(db.GetDB())

	groups, err := travelerGroupDAO.GetTravelerGroups()
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(groups)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleTravelerGroup(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTravelerGroupByType(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTravelerGroupByType(w http.ResponseWriter, r *http.Request) {
	groupType := r.URL.Query().Get("type")
	if groupType == "" {
		log.Println("Group type is missing")
		http.Error(w, "Group type is required", http.StatusBadRequest)
		return
	}
	if !model.IsValidGroupType(groupType) {
		log.Println("Unknown group type: ", groupType)
		http.Error(w, "The provided group type is not valid", http.StatusBadRequest)
		return
	}

	travelerGroupDAO := db.NewTravelerGroupDAO(db.GetDB())
	group, err := travelerGroupDAO.GetTravelerGroupByType(groupType)
	if err != nil {
		log.Println("Traveler group not found: ", err)
		http.Error(w, "Traveler group could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(group)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleLocationSearch proxies the geocoding search for the destination box.
func HandleLocationSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		log.Println("Missing search query")
		http.Error(w, "Missing search query", http.StatusBadRequest)
		return
	}

	limit := 5
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			log.Println("Wrong limit value")
			http.Error(w, "The provided limit is not valid", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	suggestions, err := externals.SearchLocations(query, limit)
	if err != nil {
		log.Println("Error while searching locations: ", err)
		http.Error(w, "Location search failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(suggestions)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleReverseGeocode resolves map coordinates to a place.
func HandleReverseGeocode(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	latitude, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		log.Println("Wrong latitude value: ", err)
		http.Error(w, "The provided latitude is not valid", http.StatusBadRequest)
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		log.Println("Wrong longitude value: ", err)
		http.Error(w, "The provided longitude is not valid", http.StatusBadRequest)
		return
	}

	suggestion, err := externals.ReverseGeocode(latitude, longitude)
	if err != nil {
		log.Println("Error while reverse geocoding: ", err)
		http.Error(w, "Reverse geocoding failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(suggestion)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleDestinationPhotos fetches destination photos; without a configured
// key the result is an empty list, not an error.
func HandleDestinationPhotos(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("query")
	if query == "" {
		log.Println("Missing photo query")
		http.Error(w, "Missing photo query", http.StatusBadRequest)
		return
	}

	perPage := 0
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		parsed, err := strconv.Atoi(perPageStr)
		if err != nil || parsed <= 0 {
			log.Println("Wrong per_page value")
			http.Error(w, "The provided per_page is not valid", http.StatusBadRequest)
			return
		}
		perPage = parsed
	}

	photos, err := externals.SearchPhotos(query, perPage)
	if err != nil {
		log.Println("Error while searching photos: ", err)
		http.Error(w, "Photo search failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(photos)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleNearbyPlaces fetches points of interest around a coordinate; without
// a configured key the result is an empty list, not an error.
func HandleNearbyPlaces(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	latitude, err := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	if err != nil {
		log.Println("Wrong latitude value: ", err)
		http.Error(w, "The provided latitude is not valid", http.StatusBadRequest)
		return
	}
	longitude, err := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err != nil {
		log.Println("Wrong longitude value: ", err)
		http.Error(w, "The provided longitude is not valid", http.StatusBadRequest)
		return
	}

	places, err := externals.SearchNearbyPlaces(latitude, longitude, r.URL.Query().Get("query"), 10)
	if err != nil {
		log.Println("Error while searching nearby places: ", err)
		http.Error(w, "Places search failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(places)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
