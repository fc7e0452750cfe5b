package model

// traveler group archetypes, fixed catalog loaded from the db

const (
	GroupTypeSolo    = "solo"
	GroupTypeStudent = "student"
	GroupTypeCouple  = "couple"
	GroupTypeFamily  = "family"
	GroupTypeGroup   = "group"
)

func IsValidGroupType(groupType string) bool {
	switch groupType {
	case GroupTypeSolo, GroupTypeStudent, GroupTypeCouple, GroupTypeFamily, GroupTypeGroup:
		return true
	}
	return false
}

type TravelerGroup struct {
	GroupID     int        `gorm:"column:id_group;primaryKey;autoIncrement" json:"group_id"`
	Type        string     `gorm:"column:type;type:text;not null" json:"type"`
	Name        string     `gorm:"column:name;type:text;not null" json:"name"`
	Description string     `gorm:"column:description;type:text;not null" json:"description"`
	Focus       StringList `gorm:"column:focus;type:jsonb" json:"focus"`
}

func (TravelerGroup) TableName() string {
	return "traveler_group"
}
