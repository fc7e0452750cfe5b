package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"easemytrip-planner/db"
	"easemytrip-planner/model"
)

func HandlePreferences(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		getPreferences(w, r)
	case "PUT", "POST":
		savePreferences(w, r)
	default:
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
	}
}

func getPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	preferenceDAO := db.NewPreferenceDAO(db.GetDB())
	preference, err := preferenceDAO.GetPreferenceByUserID(userID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(preference)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type preferenceBody struct {
	PreferredGroupType     string           `json:"preferred_group_type"`
	BudgetRange            rangeBody        `json:"budget_range"`
	PreferredHotelCategory string           `json:"preferred_hotel_category"`
	TransportPreferences   model.StringList `json:"transport_preferences"`
	Interests              model.StringList `json:"interests"`
	DietaryRestrictions    model.StringList `json:"dietary_restrictions"`
	AccessibilityNeeds     model.StringList `json:"accessibility_needs"`
}

type rangeBody struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// validate checks the enum-backed fields. The budget range is deliberately
// not checked here, min and max ordering is the caller's responsibility.
func (body *preferenceBody) validate() string {
	if body.PreferredGroupType != "" && !model.IsValidGroupType(body.PreferredGroupType) {
		return "The provided group type is not valid"
	}
	if body.PreferredHotelCategory != "" && !model.IsValidHotelCategory(body.PreferredHotelCategory) {
		return "The provided hotel category is not valid"
	}
	for _, pref := range body.TransportPreferences {
		if !model.IsValidTransportPreference(pref) {
			return "The provided transport preference is not valid"
		}
	}
	return ""
}

// savePreferences replaces the caller's whole preference record. Unknown
// enum values are rejected before touching the store.
func savePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body preferenceBody
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
		log.Println("Wrong preference data: ", message)
		http.Error(w, message, http.StatusBadRequest)
		return
	}

	preference := model.UserPreference{
		UserID:                 userID,
		PreferredGroupType:     body.PreferredGroupType,
		BudgetRange:            model.BudgetRange{Min: body.BudgetRange.Min, Max: body.BudgetRange.Max},
		PreferredHotelCategory: body.PreferredHotelCategory,
		TransportPreferences:   body.TransportPreferences,
		Interests:              body.Interests,
		DietaryRestrictions:    body.DietaryRestrictions,
		AccessibilityNeeds:     body.AccessibilityNeeds,
	}
	if preference.TransportPreferences == nil {
		preference.TransportPreferences = model.StringList{}
	}
	if preference.Interests == nil {
		preference.Interests = model.StringList{}
	}
	if preference.DietaryRestrictions == nil {
		preference.DietaryRestrictions = model.StringList{}
	}
	if preference.AccessibilityNeeds == nil {
		preference.AccessibilityNeeds = model.StringList{}
	}

	preferenceDAO := db.NewPreferenceDAO(db.GetDB())
	err = preferenceDAO.UpsertPreference(&preference)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(preference)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
