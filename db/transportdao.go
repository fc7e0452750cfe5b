package db

import (
	"easemytrip-planner/model"
	"gorm.io/gorm"
)

type TransportDAO struct {
	db *gorm.DB
}

func NewTransportDAO(db *gorm.DB) *TransportDAO {
	return &TransportDAO{db: db}
}

func (transportDAO *TransportDAO) GetTransportOptions(fromDestinationID, toDestinationID int) ([]model.TransportOption, error) {
	var options []model.TransportOption
	result := transportDAO.db.
		Where("id_from_destination = ? AND id_to_destination = ?", fromDestinationID, toDestinationID).
		Order("price").
		Find(&options)
	return options, result.Error
}

func (transportDAO *TransportDAO) GetTransportOptionsByDestination(toDestinationID int) ([]model.TransportOption, error) {
	var options []model.TransportOption
	result := transportDAO.db.Where("id_to_destination = ?", toDestinationID).Order("price").Find(&options)
	return options, result.Error
}

func (transportDAO *TransportDAO) GetLocalTransport(destinationID int) ([]model.LocalTransport, error) {
	var transport []model.LocalTransport
	result := transportDAO.db.Where("id_destination = ?", destinationID).Order("id_local_transport").Find(&transport)
	return transport, result.Error
}

// CreateTransportOptions inserts a batch of options, used for sample data seeding.
func (transportDAO *TransportDAO) CreateTransportOptions(options []model.TransportOption) error {
	if len(options) == 0 {
		return nil
	}
	result := transportDAO.db.Create(&options)
	return result.Error
}

func (transportDAO *TransportDAO) CreateLocalTransport(transport []model.LocalTransport) error {
	if len(transport) == 0 {
		return nil
	}
	result := transportDAO.db.Create(&transport)
	return result.Error
}
