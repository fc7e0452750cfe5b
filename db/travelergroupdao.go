package db

import (
	"easemytrip-planner/model"
	"gorm.io/gorm"
)

type TravelerGroupDAO struct {
	db *gorm.DB
}

func NewTravelerGroupDAO(db *gorm.DB) *TravelerGroupDAO {
	return &TravelerGroupDAO{db: db}
}

// GetTravelerGroups returns the fixed archetype catalog in insertion order.
func (travelerGroupDAO *TravelerGroupDAO) GetTravelerGroups() ([]model.TravelerGroup, error) {
	var groups []model.TravelerGroup
	result := travelerGroupDAO.db.Order("id_group").Find(&groups)
	return groups, result.Error
}

func (travelerGroupDAO *TravelerGroupDAO) GetTravelerGroupByType(groupType string) (model.TravelerGroup, error) {
	var group model.TravelerGroup
	result := travelerGroupDAO.db.Where("type = ?", groupType).First(&group)
	return group, result.Error
}

// CreateTravelerGroups inserts the archetype catalog, used for sample data seeding.
func (travelerGroupDAO *TravelerGroupDAO) CreateTravelerGroups(groups []model.TravelerGroup) error {
	if len(groups) == 0 {
		return nil
	}
	result := travelerGroupDAO.db.Create(&groups)
	return result.Error
}
