package db

import (
	"log"

	"easemytrip-planner/model"
)

func strPtr(value string) *string {
	return &value
}

// SeedSampleData loads a small reference dataset when the catalog tables are
// empty, so a fresh local database is immediately usable. Already-seeded
// databases are left untouched.
func SeedSampleData() error {
	destinationDAO := NewDestinationDAO(db)

	destinations, err := destinationDAO.GetDestinations()
	if err != nil {
		return err
	}
	if len(destinations) > 0 {
		return nil
	}

	log.Println("Seeding sample data")

	jaipur := model.Destination{
		Name:          "Jaipur",
		Country:       "India",
		StateProvince: strPtr("Rajasthan"),
		Description:   strPtr("The Pink City, gateway to Rajasthan's forts and palaces."),
	}
	goa := model.Destination{
		Name:          "Goa",
		Country:       "India",
		StateProvince: strPtr("Goa"),
		Description:   strPtr("Beaches, Portuguese heritage and nightlife on the west coast."),
	}
	manali := model.Destination{
		Name:          "Manali",
		Country:       "India",
		StateProvince: strPtr("Himachal Pradesh"),
		Description:   strPtr("Himalayan hill station for trekking and adventure sports."),
	}
	for _, destination := range []*model.Destination{&jaipur, &goa, &manali} {
		err = destinationDAO.CreateDestination(destination)
		if err != nil {
			return err
		}
	}

	travelerGroupDAO := NewTravelerGroupDAO(db)
	err = travelerGroupDAO.CreateTravelerGroups([]model.TravelerGroup{
		{Type: model.GroupTypeSolo, Name: "Solo Explorer", Description: "Traveling alone at your own pace", Focus: model.StringList{"flexibility", "budget"}},
		{Type: model.GroupTypeStudent, Name: "Student Trip", Description: "Group travel on a student budget", Focus: model.StringList{"budget", "hostels"}},
		{Type: model.GroupTypeCouple, Name: "Couple Getaway", Description: "Romantic trips for two", Focus: model.StringList{"romance", "comfort"}},
		{Type: model.GroupTypeFamily, Name: "Family Vacation", Description: "Kid-friendly stays and activities", Focus: model.StringList{"safety", "convenience"}},
		{Type: model.GroupTypeGroup, Name: "Friends Group", Description: "Larger groups splitting costs", Focus: model.StringList{"nightlife", "shared rooms"}},
	})
	if err != nil {
		return err
	}

	hotelDAO := NewHotelDAO(db)
	err = hotelDAO.CreateHotels([]model.Hotel{
		{DestinationID: jaipur.DestinationID, Name: "Zostel Jaipur", Category: model.HotelCategoryBudget, Rating: 4.2, PricePerNight: 800, Amenities: model.StringList{"wifi", "common room"}},
		{DestinationID: jaipur.DestinationID, Name: "Hotel Pearl Palace", Category: model.HotelCategoryMidRange, Rating: 4.5, PricePerNight: 2500, Amenities: model.StringList{"wifi", "restaurant"}},
		{DestinationID: jaipur.DestinationID, Name: "Rambagh Palace", Category: model.HotelCategoryLuxury, Rating: 4.9, PricePerNight: 35000, Amenities: model.StringList{"pool", "spa", "heritage"}},
		{DestinationID: goa.DestinationID, Name: "Anjuna Beach Hostel", Category: model.HotelCategoryBudget, Rating: 4.0, PricePerNight: 600, Amenities: model.StringList{"wifi", "beach access"}},
		{DestinationID: goa.DestinationID, Name: "Taj Fort Aguada", Category: model.HotelCategoryLuxury, Rating: 4.8, PricePerNight: 18000, Amenities: model.StringList{"pool", "sea view"}},
		{DestinationID: manali.DestinationID, Name: "Old Manali Treehouse", Category: model.HotelCategorySpecial, Rating: 4.6, PricePerNight: 4500, Amenities: model.StringList{"mountain view", "bonfire"}},
	})
	if err != nil {
		return err
	}

	spotDAO := NewTouristSpotDAO(db)
	err = spotDAO.CreateSpots([]model.TouristSpot{
		{DestinationID: jaipur.DestinationID, Name: "Amber Fort", Category: "heritage", EntryFee: 500, Rating: 4.8, VisitDurationMinutes: 180},
		{DestinationID: jaipur.DestinationID, Name: "Hawa Mahal", Category: "heritage", EntryFee: 200, Rating: 4.5, VisitDurationMinutes: 60},
		{DestinationID: jaipur.DestinationID, Name: "City Palace", Category: "heritage", EntryFee: 700, Rating: 4.6, VisitDurationMinutes: 150},
		{DestinationID: jaipur.DestinationID, Name: "Jantar Mantar", Category: "heritage", EntryFee: 200, Rating: 4.3, VisitDurationMinutes: 90},
		{DestinationID: goa.DestinationID, Name: "Baga Beach", Category: "beach", EntryFee: 0, Rating: 4.4, VisitDurationMinutes: 240},
		{DestinationID: goa.DestinationID, Name: "Basilica of Bom Jesus", Category: "heritage", EntryFee: 0, Rating: 4.6, VisitDurationMinutes: 90},
		{DestinationID: goa.DestinationID, Name: "Dudhsagar Falls", Category: "nature", EntryFee: 400, Rating: 4.7, VisitDurationMinutes: 300},
		{DestinationID: manali.DestinationID, Name: "Solang Valley", Category: "adventure", EntryFee: 500, Rating: 4.7, VisitDurationMinutes: 300},
		{DestinationID: manali.DestinationID, Name: "Hadimba Temple", Category: "heritage", EntryFee: 0, Rating: 4.4, VisitDurationMinutes: 60},
	})
	if err != nil {
		return err
	}

	transportDAO := NewTransportDAO(db)
	err = transportDAO.CreateTransportOptions([]model.TransportOption{
		{FromDestinationID: jaipur.DestinationID, ToDestinationID: goa.DestinationID, Type: model.TransportTypeFlight, Provider: "IndiGo", Price: 4500, Rating: 4.2, DurationMinutes: 110, Features: model.StringList{"cabin bag"}},
		{FromDestinationID: jaipur.DestinationID, ToDestinationID: goa.DestinationID, Type: model.TransportTypeRailway, Provider: "Indian Railways", Price: 1200, Rating: 3.9, DurationMinutes: 1500, Features: model.StringList{"sleeper"}},
		{FromDestinationID: goa.DestinationID, ToDestinationID: jaipur.DestinationID, Type: model.TransportTypeFlight, Provider: "Air India", Price: 5200, Rating: 4.0, DurationMinutes: 115, Features: model.StringList{"meal"}},
		{FromDestinationID: jaipur.DestinationID, ToDestinationID: manali.DestinationID, Type: model.TransportTypeBus, Provider: "HRTC Volvo", Price: 1500, Rating: 4.1, DurationMinutes: 780, Features: model.StringList{"ac", "recliner"}},
	})
	if err != nil {
		return err
	}

	err = transportDAO.CreateLocalTransport([]model.LocalTransport{
		{DestinationID: jaipur.DestinationID, Type: model.LocalTransportTukTuk, Name: "Auto Rickshaw", BaseFare: 30, PerKmRate: 12},
		{DestinationID: jaipur.DestinationID, Type: model.LocalTransportCab, Name: "City Cab", BaseFare: 80, PerKmRate: 18},
		{DestinationID: goa.DestinationID, Type: model.LocalTransportBike, Name: "Scooter Rental", BaseFare: 400, PerKmRate: 0},
		{DestinationID: goa.DestinationID, Type: model.LocalTransportCab, Name: "Goa Taxi", BaseFare: 100, PerKmRate: 20},
		{DestinationID: manali.DestinationID, Type: model.LocalTransportBus, Name: "Local Bus", BaseFare: 15, PerKmRate: 2},
	})
	if err != nil {
		return err
	}

	return nil
}
