package main

import (
	"easemytrip-planner/handlers"
	"log"
	"net/http"
)

func SetupServer(port string) *http.Server {
	mux := http.NewServeMux()

	// setup routes
	mux.HandleFunc("/destinations", handlers.HandleDestinations)
	mux.HandleFunc("/destinations/destination", handlers.HandleDestination)
	mux.HandleFunc("/destinations/photos", handlers.HandleDestinationPhotos)
	mux.HandleFunc("/destinations/nearby", handlers.HandleNearbyPlaces)

	mux.HandleFunc("/locations/search", handlers.HandleLocationSearch)
	mux.HandleFunc("/locations/reverse", handlers.HandleReverseGeocode)

	mux.HandleFunc("/travelerGroups", handlers.HandleTravelerGroups)
	mux.HandleFunc("/travelerGroups/group", handlers.HandleTravelerGroup)

	mux.HandleFunc("/hotels", handlers.HandleHotels)
	mux.HandleFunc("/hotels/staySearch", handlers.HandleStayHotelSearch)
	mux.HandleFunc("/hotels/stayAvailability", handlers.HandleStayHotelAvailability)
	mux.HandleFunc("/hotels/stayBooking", handlers.HandleStayHotelBooking)

	mux.HandleFunc("/transport", handlers.HandleTransportOptions)
	mux.HandleFunc("/transport/local", handlers.HandleLocalTransport)
	mux.HandleFunc("/transport/flightSearch", handlers.HandleFlightSearch)

	mux.HandleFunc("/spots", handlers.HandleTouristSpots)
	mux.HandleFunc("/spots/spot", handlers.HandleTouristSpot)

	mux.HandleFunc("/preferences", handlers.HandlePreferences)

	mux.HandleFunc("/wizard/sessions", handlers.HandleWizardSessions)
	mux.HandleFunc("/wizard/session", handlers.HandleWizardSession)
	mux.HandleFunc("/wizard/form", handlers.HandleWizardForm)
	mux.HandleFunc("/wizard/advance", handlers.HandleWizardAdvance)
	mux.HandleFunc("/wizard/retreat", handlers.HandleWizardRetreat)
	mux.HandleFunc("/wizard/reset", handlers.HandleWizardReset)
	mux.HandleFunc("/wizard/bookingLinks", handlers.HandleWizardBookingLinks)

	mux.HandleFunc("/itineraries", handlers.HandleItineraries)
	mux.HandleFunc("/itineraries/itinerary", handlers.HandleItinerary)
	mux.HandleFunc("/itineraries/activity", handlers.HandleItineraryActivity)
	mux.HandleFunc("/itineraries/autoGenerate", handlers.HandleItineraryAutoGenerate)

	mux.HandleFunc("/packages", handlers.HandleTravelPackages)
	mux.HandleFunc("/packages/package", handlers.HandleTravelPackage)

	mux.HandleFunc("/guide", handlers.HandleTravelGuide)
	mux.HandleFunc("/currency/convert", handlers.HandleCurrencyConversion)

	mux.HandleFunc("/resetTestDatabase", handlers.HandleResetTestDatabase)

	server := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
