package db

import (
	"errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"easemytrip-planner/model"
)

type PreferenceDAO struct {
	db *gorm.DB
}

func NewPreferenceDAO(db *gorm.DB) *PreferenceDAO {
	return &PreferenceDAO{db: db}
}

// GetPreferenceByUserID returns the stored record, or the default shape when
// the user has never saved one. A missing record is not an error.
func (preferenceDAO *PreferenceDAO) GetPreferenceByUserID(userID string) (model.UserPreference, error) {
	var preference model.UserPreference
	result := preferenceDAO.db.Where("user_id = ?", userID).First(&preference)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.DefaultUserPreference(userID), nil
		}
		return model.UserPreference{}, result.Error
	}
	return preference, nil
}

// UpsertPreference inserts or fully replaces the preference fields of the
// single record keyed by user id.
func (preferenceDAO *PreferenceDAO) UpsertPreference(preference *model.UserPreference) error {
	result := preferenceDAO.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"preferred_group_type",
			"budget_range",
			"preferred_hotel_category",
			"transport_preferences",
			"interests",
			"dietary_restrictions",
			"accessibility_needs",
		}),
	}).Create(preference)
	return result.Error
}
