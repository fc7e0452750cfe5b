package model

const (
	LocalTransportCab    = "cab"
	LocalTransportBike   = "bike"
	LocalTransportMetro  = "metro"
	LocalTransportTukTuk = "tuk_tuk"
	LocalTransportBus    = "bus"
)

func IsValidLocalTransportType(transportType string) bool {
	switch transportType {
	case LocalTransportCab, LocalTransportBike, LocalTransportMetro, LocalTransportTukTuk, LocalTransportBus:
		return true
	}
	return false
}

// LocalTransport is a way of getting around within a single destination.
type LocalTransport struct {
	LocalTransportID int        `gorm:"column:id_local_transport;primaryKey;autoIncrement" json:"local_transport_id"`
	DestinationID    int        `gorm:"column:id_destination;type:integer;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"destination_id"`
	Type             string     `gorm:"column:type;type:text;not null" json:"type"`
	Name             string     `gorm:"column:name;type:text;not null" json:"name"`
	BaseFare         float64    `gorm:"column:base_fare;type:numeric" json:"base_fare"`
	PerKmRate        float64    `gorm:"column:per_km_rate;type:numeric" json:"per_km_rate"`
	Description      *string    `gorm:"column:description;type:text" json:"description"` // can be nil, pointer
	Features         StringList `gorm:"column:features;type:jsonb" json:"features"`
}

func (LocalTransport) TableName() string {
	return "local_transport"
}
