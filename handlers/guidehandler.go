package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"easemytrip-planner/db"
	"easemytrip-planner/externals"
)

type guideRequestBody struct {
	Destination string `json:"destination"`
	Message     string `json:"message"`
}

type guideResponse struct {
	Guide     string `json:"guide"`
	Generated bool   `json:"generated"`
}

// fallbackGuide is served when the language model is unavailable, so the
// caller always gets something to show.
func fallbackGuide(destination string) string {
	if destination == "" {
		destination = "your destination"
	}
	return fmt.Sprintf("We could not generate a personalized guide right now. "+
		"In the meantime, browse the top-rated spots of %s, compare hotels by "+
		"category and price, and use the itinerary planner to organize your days.", destination)
}

// HandleTravelGuide generates a personalized travel guide from the user's
// stored preferences.
func HandleTravelGuide(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var body guideRequestBody
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

	preferenceDAO := db.NewPreferenceDAO(db.GetDB())
	preference, err := preferenceDAO.GetPreferenceByUserID(userID)
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	prompt := externals.BuildTravelGuidePrompt(preference, body.Destination, body.Message)

	response := guideResponse{Generated: true}
	guide, err := externals.GenerateTravelGuide(prompt)
	if err != nil {
		log.Println("Error while generating the travel guide: ", err)
		response.Guide = fallbackGuide(body.Destination)
		response.Generated = false
	} else {
		response.Guide = guide
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}

type currencyConversionResponse struct {
	Amount    float64 `json:"amount"`
	From      string  `json:"from"`
	To        string  `json:"to"`
	Converted float64 `json:"converted"`
}

// HandleCurrencyConversion converts a price between currencies for display.
func HandleCurrencyConversion(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		log.Println("Method not supported")
		http.Error(w, "Method not supported", http.StatusMethodNotAllowed)
		return
	}

	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount < 0 {
		log.Println("Wrong amount value")
		http.Error(w, "The provided amount is not valid", http.StatusBadRequest)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		log.Println("Missing currency codes")
		http.Error(w, "Both currencies are required", http.StatusBadRequest)
		return
	}

	response := currencyConversionResponse{
		Amount:    amount,
		From:      from,
		To:        to,
		Converted: externals.ConvertAmount(amount, from, to),
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
		http.Error(w, "Error encoding", http.StatusInternalServerError)
		return
	}
}
