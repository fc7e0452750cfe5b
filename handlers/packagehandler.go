package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"easemytrip-planner/db"
	"easemytrip-planner/internals"
	"easemytrip-planner/model"
)

func HandleTravelPackages(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTravelPackages(w, r)
	case "POST":
		addTravelPackage(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func HandleTravelPackage(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getTravelPackage(w, r)
	case "PUT":
		updateTravelPackage(w, r)
	case "DELETE":
		deleteTravelPackage(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getTravelPackages(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	packageDAO := db.NewPackageDAO(db.GetDB())
	packages, err := packageDAO.GetPackagesByUserID(userID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(packages)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// packageIDFromQuery parses and checks the id query parameter.
func packageIDFromQuery(w http.ResponseWriter, r *http.Request) (int, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		log.Println("Package id is missing")
		http.Error(w, "Package id is required", http.StatusBadRequest)
		return 0, false
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		log.Println("Package id is not valid")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func getTravelPackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	packageID, ok := packageIDFromQuery(w, r)
	if !ok {
		return
	}

	packageDAO := db.NewPackageDAO(db.GetDB())
	travelPackage, err := packageDAO.GetPackageById(packageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("Travel package not found")
			http.Error(w, "Travel package could not be found", http.StatusNotFound)
			return
		}
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// packages are private to their owner
	if travelPackage.UserID != userID {
		log.Println("Travel package owned by another user")
		http.Error(w, "Travel package could not be found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(travelPackage)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type travelPackageBody struct {
	DestinationID     int              `json:"destination_id"`
	Name              string           `json:"name"`
	Description       *string          `json:"description"`
	TravelerGroupType string           `json:"traveler_group_type"`
	TotalDays         int              `json:"total_days"`
	Travelers         int              `json:"travelers"`
	HotelID           int              `json:"hotel_id"`
	Status            string           `json:"status"`
	Itinerary         model.Itinerary  `json:"itinerary"`
	IncludedHotels    model.StringList `json:"included_hotels"`
	IncludedTransport model.StringList `json:"included_transport"`
}

func (body *travelPackageBody) validate() string {
	if body.DestinationID <= 0 {
		return "The provided destination id is not valid"
	}
	if body.Name == "" {
		return "Package name is required"
	}
	if !model.IsValidGroupType(body.TravelerGroupType) {
		return "The provided group type is not valid"
	}
	if body.TotalDays <= 0 {
		return "The provided total days value is not valid"
	}
	if body.Status != "" && !model.IsValidPackageStatus(body.Status) {
		return "The provided status is not valid"
	}
	return ""
}

// computeBodyPrice reprices the package from the stored catalog, never from
// client-sent prices.
func computeBodyPrice(body travelPackageBody) (float64, error) {
	var hotel *model.Hotel
	if body.HotelID > 0 {
		hotelDAO := db.NewHotelDAO(db.GetDB())
		found, err := hotelDAO.GetHotelById(body.HotelID)
		if err != nil {
			return 0, err
		}
		hotel = &found
	}

	spotDAO := db.NewTouristSpotDAO(db.GetDB())
	spots, err := spotDAO.GetSpotsByDestination(body.DestinationID)
	if err != nil {
		return 0, err
	}

	transportDAO := db.NewTransportDAO(db.GetDB())
	transport, err := transportDAO.GetTransportOptionsByDestination(body.DestinationID)
	if err != nil {
		return 0, err
	}

	// only options the package actually includes count towards the price
	var included []model.TransportOption
	for _, option := range transport {
		if body.IncludedTransport.Contains(option.Provider) {
			included = append(included, option)
		}
	}

	return internals.ComputePackagePrice(body.TotalDays, body.Travelers, hotel, body.Itinerary, included, spots), nil
}

func addTravelPackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body travelPackageBody
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

	if message := body.validate(); message != "" {
		log.Println("Wrong travel package data: ", message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}
	if body.Status == "" {
		body.Status = model.PackageStatusDraft
	}

	totalPrice, err := computeBodyPrice(body)
	if err != nil {
		log.Println("Error while computing the package price: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	travelPackage := model.TravelPackage{
		UserID:            userID,
		DestinationID:     body.DestinationID,
		Name:              body.Name,
		Description:       body.Description,
		TravelerGroupType: body.TravelerGroupType,
		TotalDays:         body.TotalDays,
		TotalPrice:        totalPrice,
		Status:            body.Status,
		Itinerary:         body.Itinerary,
		IncludedHotels:    body.IncludedHotels,
		IncludedTransport: body.IncludedTransport,
	}
	if travelPackage.Itinerary == nil {
		travelPackage.Itinerary = model.Itinerary{}
	}
	if travelPackage.IncludedHotels == nil {
		travelPackage.IncludedHotels = model.StringList{}
	}
	if travelPackage.IncludedTransport == nil {
		travelPackage.IncludedTransport = model.StringList{}
	}

	packageDAO := db.NewPackageDAO(db.GetDB())
	err = packageDAO.AddPackage(&travelPackage)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(travelPackage)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func updateTravelPackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	packageID, ok := packageIDFromQuery(w, r)
	if !ok {
		return
	}

	packageDAO := db.NewPackageDAO(db.GetDB())
	existing, err := packageDAO.GetPackageById(packageID)
	if err != nil || existing.UserID != userID {
		log.Println("Travel package not found: ", err)
		http.Error(w, "Travel package could not be found", http.StatusNotFound)
		return
	}

	var body travelPackageBody
	err = json.NewDecoder(r.Body).Decode(&body)
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

	if message := body.validate(); message != "" {
		log.Println("Wrong travel package data: ", message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}
	if body.Status == "" {
		body.Status = existing.Status
	}

	totalPrice, err := computeBodyPrice(body)
	if err != nil {
		log.Println("Error while computing the package price: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	existing.DestinationID = body.DestinationID
	existing.Name = body.Name
	existing.Description = body.Description
	existing.TravelerGroupType = body.TravelerGroupType
	existing.TotalDays = body.TotalDays
	existing.TotalPrice = totalPrice
	existing.Status = body.Status
	existing.Itinerary = body.Itinerary
	existing.IncludedHotels = body.IncludedHotels
	existing.IncludedTransport = body.IncludedTransport
	if existing.Itinerary == nil {
		existing.Itinerary = model.Itinerary{}
	}
	if existing.IncludedHotels == nil {
		existing.IncludedHotels = model.StringList{}
	}
	if existing.IncludedTransport == nil {
		existing.IncludedTransport = model.StringList{}
	}

	err = packageDAO.UpdatePackage(existing)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(existing)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func deleteTravelPackage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	packageID, ok := packageIDFromQuery(w, r)
	if !ok {
		return
	}

	packageDAO := db.NewPackageDAO(db.GetDB())
	err := packageDAO.DeletePackage(packageID, userID)
	if err != nil {
		log.Println("Error while deleting the travel package: ", err)
		http.Error(w, "Travel package could not be found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}
