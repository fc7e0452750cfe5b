package db

import (
	"easemytrip-planner/model"
	"gorm.io/gorm"
)

type HotelDAO struct {
	db *gorm.DB
}

func NewHotelDAO(db *gorm.DB) *HotelDAO {
	return &HotelDAO{db: db}
}

func (hotelDAO *HotelDAO) GetHotelById(hotelID int) (model.Hotel, error) {
	var hotel model.Hotel
	result := hotelDAO.db.First(&hotel, hotelID)
	return hotel, result.Error
}

func (hotelDAO *HotelDAO) GetHotelsByDestination(destinationID int) ([]model.Hotel, error) {
	var hotels []model.Hotel
	result := hotelDAO.db.Where("id_destination = ?", destinationID).Order("price_per_night").Find(&hotels)
	return hotels, result.Error
}

// CreateHotels inserts a batch of hotels, used for sample data seeding.
func (hotelDAO *HotelDAO) CreateHotels(hotels []model.Hotel) error {
	if len(hotels) == 0 {
		return nil
	}
	result := hotelDAO.db.Create(&hotels)
	return result.Error
}
