package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Activity is one entry of an itinerary day. SpotName is denormalized from
// the referenced tourist spot for rendering, it has to be kept in sync when
// SpotID changes.
type Activity struct {
	Time      string `json:"time"`
	SpotID    int    `json:"spot_id"`
	SpotName  string `json:"spot_name"`
	Duration  int    `json:"duration"`
	Transport string `json:"transport"`
	Notes     string `json:"notes"`
}

type ItineraryDay struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
}

// Itinerary is transient wizard-side state; it is only written to the db
// when embedded in a travel package.
type Itinerary []ItineraryDay

func (i Itinerary) Value() (driver.Value, error) {
	if i == nil {
		return "[]", nil
	}
	data, err := json.Marshal(i)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (i *Itinerary) Scan(value interface{}) error {
	if value == nil {
		*i = Itinerary{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	}
	return fmt.Errorf("cannot scan %T into Itinerary", value)
}
