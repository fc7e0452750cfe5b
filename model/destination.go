package model

type Destination struct {
	DestinationID int      `gorm:"column:id_destination;primaryKey;autoIncrement" json:"destination_id"`
	Name          string   `gorm:"column:name;type:text;not null" json:"name"`
	Country       string   `gorm:"column:country;type:text;not null" json:"country"`
	StateProvince *string  `gorm:"column:state_province;type:text" json:"state_province"` // can be nil, pointer
	Description   *string  `gorm:"column:description;type:text" json:"description"`       // can be nil, pointer
	ImageURL      *string  `gorm:"column:image_url;type:text" json:"image_url"`           // can be nil, pointer
	Latitude      *float64 `gorm:"column:latitude;type:numeric" json:"latitude"`
	Longitude     *float64 `gorm:"column:longitude;type:numeric" json:"longitude"`
}

func (Destination) TableName() string {
	return "destination"
}
