package model

const (
	TransportTypeFlight  = "flight"
	TransportTypeRailway = "railway"
	TransportTypeBus     = "bus"
	TransportTypeMetro   = "metro"
)

func IsValidTransportType(transportType string) bool {
	switch transportType {
	case TransportTypeFlight, TransportTypeRailway, TransportTypeBus, TransportTypeMetro:
		return true
	}
	return false
}

// TransportOption connects two destinations.
type TransportOption struct {
	TransportID       int        `gorm:"column:id_transport;primaryKey;autoIncrement" json:"transport_id"`
	FromDestinationID int        `gorm:"column:id_from_destination;type:integer;not null" json:"from_destination_id"`
	ToDestinationID   int        `gorm:"column:id_to_destination;type:integer;not null" json:"to_destination_id"`
	Type              string     `gorm:"column:type;type:text;not null" json:"type"`
	Provider          string     `gorm:"column:provider;type:text;not null" json:"provider"`
	Price             float64    `gorm:"column:price;type:numeric;not null" json:"price"`
	Rating            float64    `gorm:"column:rating;type:numeric" json:"rating"`
	DepartureTime     *string    `gorm:"column:departure_time;type:text" json:"departure_time"` // can be nil, pointer
	ArrivalTime       *string    `gorm:"column:arrival_time;type:text" json:"arrival_time"`     // can be nil, pointer
	DurationMinutes   int        `gorm:"column:duration_minutes;type:integer" json:"duration_minutes"`
	Features          StringList `gorm:"column:features;type:jsonb" json:"features"`
}

func (TransportOption) TableName() string {
	return "transport_option"
}
