package model

const (
	PackageStatusDraft     = "draft"
	PackageStatusActive    = "active"
	PackageStatusCompleted = "completed"
	PackageStatusCancelled = "cancelled"
)

func IsValidPackageStatus(status string) bool {
	switch status {
	case PackageStatusDraft, PackageStatusActive, PackageStatusCompleted, PackageStatusCancelled:
		return true
	}
	return false
}

type TravelPackage struct {
	PackageID         int        `gorm:"column:id_package;primaryKey;autoIncrement" json:"package_id"`
	UserID            string     `gorm:"column:user_id;type:text;not null" json:"user_id"`
	DestinationID     int        `gorm:"column:id_destination;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"destination_id"`
	Name              string     `gorm:"column:name;type:text;not null" json:"name"`
	Description       *string    `gorm:"column:description;type:text" json:"description"` // can be nil, pointer
	TravelerGroupType string     `gorm:"column:traveler_group_type;type:text;not null" json:"traveler_group_type"`
	TotalDays         int        `gorm:"column:total_days;type:integer;not null" json:"total_days"`
	TotalPrice        float64    `gorm:"column:total_price;type:numeric" json:"total_price"`
	Status            string     `gorm:"column:status;type:text;not null" json:"status"`
	Itinerary         Itinerary  `gorm:"column:itinerary;type:jsonb" json:"itinerary"`
	IncludedHotels    StringList `gorm:"column:included_hotels;type:jsonb" json:"included_hotels"`
	IncludedTransport StringList `gorm:"column:included_transport;type:jsonb" json:"included_transport"`
}

func (TravelPackage) TableName() string {
	return "travel_package"
}
