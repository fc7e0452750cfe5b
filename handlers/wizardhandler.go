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

// wizard sessions live in memory only; a server restart discards them.
var wizardSessionsMutex sync.Mutex
var wizardSessions = map[string]*internals.WizardSession{}

func lookupWizardSession(w http.ResponseWriter, r *http.Request) (*internals.WizardSession, bool) {
	sessionID := r.URL.Query().Get("session_id")
	if sessionID == "" {
		log.Println("Session id is missing")
		http.Error(w, "Session id is required", http.StatusBadRequest)
		return nil, false
	}

	session, found := wizardSessions[sessionID]
	if !found {
		log.Println("Wizard session not found")
		http.Error(w, "Wizard session could not be found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// HandleWizardSessions starts a planning session. Signed-in users get their
// stored preferences preloaded into the form; anonymous sessions start blank.
func HandleWizardSessions(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID := userIDFromRequest(r)
	session := internals.NewWizardSession(uuid.NewString(), userID)

	if userID != "" {
		preferenceDAO := db.NewPreferenceDAO(db.GetDB())
		preference, err := preferenceDAO.GetPreferenceByUserID(userID)
		if err != nil {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		session.ApplyPreference(preference)
	}

	wizardSessionsMutex.Lock()
	wizardSessions[session.SessionID] = session
	wizardSessionsMutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleWizardSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleWizardForm merges the posted fields into the session form. Fields
// absent from the body keep their current values.
func HandleWizardForm(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" && r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	// decoding over a copy of the current form gives merge semantics
	form := session.Form
	err := json.NewDecoder(r.Body).Decode(&form)
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

	if form.PreferredGroupType != "" && !model.IsValidGroupType(form.PreferredGroupType) {
		log.Println("Unknown group type: ", form.PreferredGroupType)
		http.Error(w, "The provided group type is not valid", http.StatusBadRequest)
		return
	}
	if form.PreferredHotelCategory != "" && !model.IsValidHotelCategory(form.PreferredHotelCategory) {
		log.Println("Unknown hotel category: ", form.PreferredHotelCategory)
		http.Error(w, "The provided hotel category is not valid", http.StatusBadRequest)
		return
	}
	for _, pref := range form.TransportPreferences {
		if !model.IsValidTransportPreference(pref) {
			log.Println("Unknown transport preference: ", pref)
			http.Error(w, "The provided transport preference is not valid", http.StatusBadRequest)
			return
		}
	}
	if form.Travelers <= 0 {
		log.Println("Wrong travelers value")
		http.Error(w, "The provided travelers value is not valid", http.StatusBadRequest)
		return
	}

	session.Form = form

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

// HandleWizardAdvance moves the session one step forward. Leaving the style
// step persists the collected preferences, which needs a verified identity;
// anonymous sessions are held on the style step until the user signs in.
func HandleWizardAdvance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	if !session.CanAdvance() {
		log.Println("Wizard step is not complete")
		http.Error(w, "The current step is not complete", http.StatusConflict)
		return
	}

	if session.Step == internals.StepStyle {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		session.UserID = userID

		preference := session.Preference()
		preferenceDAO := db.NewPreferenceDAO(db.GetDB())
		err := preferenceDAO.UpsertPreference(&preference)
		if err != nil {
			log.Println("Error while interacting with the database: ", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	session.Advance()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleWizardRetreat(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	session.Retreat()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

func HandleWizardReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	session.Reset()

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(session)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type bookingLinksResponse struct {
	FlightURL string `json:"flight_url"`
	HotelURL  string `json:"hotel_url"`
}

// HandleWizardBookingLinks renders the outbound deep links of the final step.
func HandleWizardBookingLinks(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	wizardSessionsMutex.Lock()
	defer wizardSessionsMutex.Unlock()

	session, ok := lookupWizardSession(w, r)
	if !ok {
		return
	}

	if session.Step != internals.StepBooking {
		log.Println("Wizard session has not reached the booking step")
		http.Error(w, "The session has not reached the booking step", http.StatusConflict)
		return
	}

	params := internals.BookingParams{
		Origin:        r.URL.Query().Get("from"),
		Destination:   session.Form.Destination,
		DepartureDate: session.Form.DepartureDate,
		ReturnDate:    session.Form.ReturnDate,
		Travelers:     session.Form.Travelers,
		HotelCategory: session.Form.PreferredHotelCategory,
	}

	response := bookingLinksResponse{
		FlightURL: internals.FlightSearchURL(params),
		HotelURL:  internals.HotelSearchURL(params),
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
