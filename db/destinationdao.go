package db

import (
	"easemytrip-planner/model"
	"gorm.io/gorm"
)

type DestinationDAO struct {
	db *gorm.DB
}

func NewDestinationDAO(db *gorm.DB) *DestinationDAO {
	return &DestinationDAO{db: db}
}

func (destinationDAO *DestinationDAO) GetDestinations() ([]model.Destination, error) {
	var destinations []model.Destination
	result := destinationDAO.db.Order("name").Find(&destinations)
	return destinations, result.Error
}

func (destinationDAO *DestinationDAO) GetDestinationById(destinationID int) (model.Destination, error) {
	var destination model.Destination
	result := destinationDAO.db.First(&destination, destinationID)
	return destination, result.Error
}

func (destinationDAO *DestinationDAO) SearchDestinationsByName(query string) ([]model.Destination, error) {
	var destinations []model.Destination
	result := destinationDAO.db.Where("name ILIKE ?", "%"+query+"%").Order("name").Find(&destinations)
	return destinations, result.Error
}

func (destinationDAO *DestinationDAO) CreateDestination(destination *model.Destination) error {
	// takes a pointer, in order to update the param struct
	result := destinationDAO.db.Create(destination)
	return result.Error
}
