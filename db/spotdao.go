package db

import (
	"easemytrip-planner/model"
	"gorm.io/gorm"
)

type TouristSpotDAO struct {
	db *gorm.DB
}

func NewTouristSpotDAO(db *gorm.DB) *TouristSpotDAO {
	return &TouristSpotDAO{db: db}
}

// GetSpotsByDestination returns the spots of a destination sorted by rating
// descending, the order the itinerary auto-generation relies on.
func (spotDAO *TouristSpotDAO) GetSpotsByDestination(destinationID int) ([]model.TouristSpot, error) {
	var spots []model.TouristSpot
	result := spotDAO.db.Where("id_destination = ?", destinationID).Order("rating DESC").Find(&spots)
	return spots, result.Error
}

func (spotDAO *TouristSpotDAO) GetSpotById(spotID int) (model.TouristSpot, error) {
	var spot model.TouristSpot
	result := spotDAO.db.First(&spot, spotID)
	return spot, result.Error
}

// CreateSpots inserts a batch of spots, used for sample data seeding.
func (spotDAO *TouristSpotDAO) CreateSpots(spots []model.TouristSpot) error {
	if len(spots) == 0 {
		return nil
	}
	result := spotDAO.db.Create(&spots)
	return result.Error
}
