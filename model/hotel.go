package model

type Hotel struct {
	HotelID       int        `gorm:"column:id_hotel;primaryKey;autoIncrement" json:"hotel_id"`
	DestinationID int        `gorm:"column:id_destination;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"destination_id"`
	Name          string     `gorm:"column:name;type:text;not null" json:"name"`
	Category      string     `gorm:"column:category;type:text;not null" json:"category"`
	Rating        float64    `gorm:"column:rating;type:numeric" json:"rating"`
	PricePerNight float64    `gorm:"column:price_per_night;type:numeric;not null" json:"price_per_night"`
	Address       *string    `gorm:"column:address;type:text" json:"address"`         // can be nil, pointer
	Description   *string    `gorm:"column:description;type:text" json:"description"` // can be nil, pointer
	Amenities     StringList `gorm:"column:amenities;type:jsonb" json:"amenities"`
	Images        StringList `gorm:"column:images;type:jsonb" json:"images"`
	Latitude      *float64   `gorm:"column:latitude;type:numeric" json:"latitude"`
	Longitude     *float64   `gorm:"column:longitude;type:numeric" json:"longitude"`
}

func (Hotel) TableName() string {
	return "hotel"
}
