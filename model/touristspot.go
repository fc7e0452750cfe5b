package model

type TouristSpot struct {
	SpotID               int        `gorm:"column:id_spot;primaryKey;autoIncrement" json:"spot_id"`
	DestinationID        int        `gorm:"column:id_destination;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"destination_id"`
	Name                 string     `gorm:"column:name;type:text;not null" json:"name"`
	Description          *string    `gorm:"column:description;type:text" json:"description"` // can be nil, pointer
	Category             string     `gorm:"column:category;type:text" json:"category"`
	EntryFee             float64    `gorm:"column:entry_fee;type:numeric" json:"entry_fee"`
	OpeningHours         *string    `gorm:"column:opening_hours;type:text" json:"opening_hours"` // can be nil, pointer
	Rating               float64    `gorm:"column:rating;type:numeric" json:"rating"`
	VisitDurationMinutes int        `gorm:"column:visit_duration_minutes;type:integer" json:"visit_duration_minutes"`
	Images               StringList `gorm:"column:images;type:jsonb" json:"images"`
	Latitude             *float64   `gorm:"column:latitude;type:numeric" json:"latitude"`
	Longitude            *float64   `gorm:"column:longitude;type:numeric" json:"longitude"`
}

func (TouristSpot) TableName() string {
	return "tourist_spot"
}
