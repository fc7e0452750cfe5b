package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"easemytrip-planner/db"
	"easemytrip-planner/internals"
	"easemytrip-planner/model"
)

// itinerarySession ties a day-by-day builder to the destination whose catalog
// feeds it. Like wizard sessions these live in memory only.
type itinerarySession struct {
	ItineraryID   string          `json:"itinerary_id"`
	DestinationID int             `json:"destination_id"`
	Days          model.Itinerary `json:"days"`

	builder *internals.ItineraryBuilder
}

var itinerarySessionsMutex sync.Mutex
var itinerarySessions = map[string]*itinerarySession{}

func lookupItinerarySession(w http.ResponseWriter, r *http.Request) (*itinerarySession, bool) {
	itineraryID := r.URL.Query().Get("itinerary_id")
	if itineraryID == "" {
		log.Println("Itinerary id is missing")
		http.Error(w, "Itinerary id is required", http.StatusBadRequest)
		return nil, false
	}

	session, found := itinerarySessions[itineraryID]
	if !found {
		log.Println("Itinerary session not found")
		http.Error(w, "Itinerary could not be found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func writeItinerarySession(w http.ResponseWriter, session *itinerarySession) {
	session.Days = session.builder.Days

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
	}
}

type itineraryCreateBody struct {
	DestinationID int `json:"destination_id"`
	TotalDays     int `json:"total_days"`
}

func HandleItineraries(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var body itineraryCreateBody
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

	if body.DestinationID <= 0 {
		log.Println("Destination id is not valid")
		http.Error(w, "The provided destination id is not valid", http.StatusBadRequest)
		return
	}
	if body.TotalDays <= 0 {
		log.Println("Wrong total days value")
		http.Error(w, "The provided total days value is not valid", http.StatusBadRequest)
		return
	}

	session := &itinerarySession{
		ItineraryID:   uuid.NewString(),
		DestinationID: body.DestinationID,
		builder:       internals.NewItineraryBuilder(body.TotalDays),
	}

	itinerarySessionsMutex.Lock()
	itinerarySessions[session.ItineraryID] = session
	itinerarySessionsMutex.Unlock()

	w.WriteHeader(http.StatusCreated)
	writeItinerarySession(w, session)
}

func HandleItinerary(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	itinerarySessionsMutex.Lock()
	defer itinerarySessionsMutex.Unlock()

	session, ok := lookupItinerarySession(w, r)
	if !ok {
		return
	}

	writeItinerarySession(w, session)
}

type activityBody struct {
	Day   int    `json:"day"`
	Index int    `json:"index"`
	Field string `json:"field"`
	Value string `json:"value"`
}

// HandleItineraryActivity adds, updates or removes one activity depending on
// the request method.
func HandleItineraryActivity(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST", "PUT", "DELETE":
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	var body activityBody
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

	itinerarySessionsMutex.Lock()
	defer itinerarySessionsMutex.Unlock()

	session, ok := lookupItinerarySession(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case "POST":
		if !session.builder.AddActivity(body.Day) {
			log.Println("Day out of range")
			http.Error(w, "The provided day is not valid", http.StatusBadRequest)
			return
		}
	case "DELETE":
		// removing a vanished activity is fine, the state is already what
		// the caller asked for
		session.builder.RemoveActivity(body.Day, body.Index)
	case "PUT":
		var spots []model.TouristSpot
		if body.Field == "spot_id" {
			spotDAO := db.NewTouristSpotDAO(db.GetDB())
			spots, err = spotDAO.GetSpotsByDestination(session.DestinationID)
			if err != nil {
				log.Println("Error while interacting with the database: ", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}
		}
		if !session.builder.UpdateActivity(body.Day, body.Index, body.Field, body.Value, spots) {
			log.Println("Wrong activity update")
			http.Error(w, "The provided update is not valid", http.StatusBadRequest)
			return
		}
	}

	writeItinerarySession(w, session)
}

// HandleItineraryAutoGenerate fills the days from the destination's top-rated
// spots, replacing whatever was scheduled before.
func HandleItineraryAutoGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	itinerarySessionsMutex.Lock()
	defer itinerarySessionsMutex.Unlock()

	session, ok := lookupItinerarySession(w, r)
	if !ok {
		return
	}

	spotDAO := db.NewTouristSpotDAO(db.GetDB())
	spots, err := spotDAO.GetSpotsByDestination(session.DestinationID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	transportDAO := db.NewTransportDAO(db.GetDB())
	localTransport, err := transportDAO.GetLocalTransport(session.DestinationID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	session.builder.AutoGenerate(spots, localTransport)

	writeItinerarySession(w, session)
}
