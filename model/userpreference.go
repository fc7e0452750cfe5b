package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

const (
	HotelCategoryBudget   = "budget"
	HotelCategoryMidRange = "mid_range"
	HotelCategoryLuxury   = "luxury"
	HotelCategorySpecial  = "special"
)

func IsValidHotelCategory(category string) bool {
	switch category {
	case HotelCategoryBudget, HotelCategoryMidRange, HotelCategoryLuxury, HotelCategorySpecial:
		return true
	}
	return false
}

const (
	TransportPrefFlights   = "flights"
	TransportPrefRailways  = "railways"
	TransportPrefBuses     = "buses"
	TransportPrefCarRental = "car_rental"
)

func IsValidTransportPreference(pref string) bool {
	switch pref {
	case TransportPrefFlights, TransportPrefRailways, TransportPrefBuses, TransportPrefCarRental:
		return true
	}
	return false
}

// StringList is stored as a jsonb array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", value)
}

func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}

// BudgetRange is stored as a jsonb object column.
// Min <= Max is not enforced here, the caller is responsible.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (b BudgetRange) Value() (driver.Value, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (b *BudgetRange) Scan(value interface{}) error {
	if value == nil {
		*b = BudgetRange{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	}
	return fmt.Errorf("cannot scan %T into BudgetRange", value)
}

type UserPreference struct {
	PreferenceID           int         `gorm:"column:id_preference;primaryKey;autoIncrement" json:"preference_id"`
	UserID                 string      `gorm:"column:user_id;type:text;not null;uniqueIndex" json:"user_id"`
	PreferredGroupType     string      `gorm:"column:preferred_group_type;type:text" json:"preferred_group_type"`
	BudgetRange            BudgetRange `gorm:"column:budget_range;type:jsonb" json:"budget_range"`
	PreferredHotelCategory string      `gorm:"column:preferred_hotel_category;type:text" json:"preferred_hotel_category"`
	TransportPreferences   StringList  `gorm:"column:transport_preferences;type:jsonb" json:"transport_preferences"`
	Interests              StringList  `gorm:"column:interests;type:jsonb" json:"interests"`
	DietaryRestrictions    StringList  `gorm:"column:dietary_restrictions;type:jsonb" json:"dietary_restrictions"`
	AccessibilityNeeds     StringList  `gorm:"column:accessibility_needs;type:jsonb" json:"accessibility_needs"`
}

func (UserPreference) TableName() string {
	return "user_preference"
}

const defaultBudgetMin = 0
const defaultBudgetMax = 10000

// DefaultUserPreference is the shape returned when a user has no stored
// record yet. Not an error condition.
func DefaultUserPreference(userID string) UserPreference {
	return UserPreference{
		UserID:               userID,
		BudgetRange:          BudgetRange{Min: defaultBudgetMin, Max: defaultBudgetMax},
		TransportPreferences: StringList{},
		Interests:            StringList{},
		DietaryRestrictions:  StringList{},
		AccessibilityNeeds:   StringList{},
	}
}
