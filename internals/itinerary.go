package internals

import (
	"easemytrip-planner/model"
	"fmt"
	"strconv"
)

const defaultActivityTime = "09:00"
const defaultActivityDuration = 120

const firstActivityHour = 9
const activitySpacingHours = 3

// ItineraryBuilder maintains the day buckets of a trip. All operations are
// in-memory and synchronous; out-of-range indices are no-ops.
type ItineraryBuilder struct {
	Days model.Itinerary `json:"days"`
}

func NewItineraryBuilder(tripDays int) *ItineraryBuilder {
	if tripDays < 1 {
		tripDays = 1
	}
	days := make(model.Itinerary, tripDays)
	for i := range days {
		days[i] = model.ItineraryDay{
			Day:        i + 1,
			Activities: []model.Activity{},
		}
	}
	return &ItineraryBuilder{Days: days}
}

func (b *ItineraryBuilder) dayInRange(day int) bool {
	return day >= 1 && day <= len(b.Days)
}

// AddActivity appends a blank activity template to the given day (1-based).
func (b *ItineraryBuilder) AddActivity(day int) bool {
	if !b.dayInRange(day) {
		return false
	}
	activity := model.Activity{
		Time:     defaultActivityTime,
		Duration: defaultActivityDuration,
	}
	b.Days[day-1].Activities = append(b.Days[day-1].Activities, activity)
	return true
}

// RemoveActivity removes the activity at the given position. Out of range
// is a defensive no-op.
func (b *ItineraryBuilder) RemoveActivity(day, index int) bool {
	if !b.dayInRange(day) {
		return false
	}
	activities := b.Days[day-1].Activities
	if index < 0 || index >= len(activities) {
		return false
	}
	b.Days[day-1].Activities = append(activities[:index], activities[index+1:]...)
	return true
}

// UpdateActivity sets one field of an activity in place. When the spot
// reference changes, the spot name is denormalized from the given catalog.
func (b *ItineraryBuilder) UpdateActivity(day, index int, field, value string, spots []model.TouristSpot) bool {
	if !b.dayInRange(day) {
		return false
	}
	activities := b.Days[day-1].Activities
	if index < 0 || index >= len(activities) {
		return false
	}
	activity := &activities[index]

	switch field {
	case "time":
		activity.Time = value
	case "spot_id":
		spotID, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		activity.SpotID = spotID
		activity.SpotName = ""
		for _, spot := range spots {
			if spot.SpotID == spotID {
				activity.SpotName = spot.Name
				break
			}
		}
	case "duration":
		duration, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		activity.Duration = duration
	case "transport":
		activity.Transport = value
	case "notes":
		activity.Notes = value
	default:
		return false
	}
	return true
}

// AutoGenerate distributes the top-rated spots round-robin across the days.
// The spots are expected to be sorted by rating descending already; spot i
// goes to day i mod dayCount. The k-th activity of a day starts at 9+3k
// o'clock, no wrap correction past midnight.
func (b *ItineraryBuilder) AutoGenerate(spots []model.TouristSpot, localTransport []model.LocalTransport) {
	dayCount := len(b.Days)
	if dayCount == 0 {
		return
	}

	topCount := dayCount * 2
	if topCount > len(spots) {
		topCount = len(spots)
	}
	topSpots := spots[:topCount]

	defaultTransport := ""
	if len(localTransport) > 0 {
		defaultTransport = localTransport[0].Name
	}

	for i := range b.Days {
		b.Days[i].Activities = []model.Activity{}
	}

	for i, spot := range topSpots {
		dayIndex := i % dayCount
		slot := len(b.Days[dayIndex].Activities)

		duration := spot.VisitDurationMinutes
		if duration == 0 {
			duration = defaultActivityDuration
		}

		activity := model.Activity{
			Time:      fmt.Sprintf("%d:00", firstActivityHour+slot*activitySpacingHours),
			SpotID:    spot.SpotID,
			SpotName:  spot.Name,
			Duration:  duration,
			Transport: defaultTransport,
		}
		b.Days[dayIndex].Activities = append(b.Days[dayIndex].Activities, activity)
	}
}
