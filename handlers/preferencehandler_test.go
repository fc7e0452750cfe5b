package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"easemytrip-planner/model"
)

func TestPreferenceValidationAcceptsInvertedBudgetRange(t *testing.T) {
	// min above max is saved as-is, ordering is the caller's responsibility
	body := preferenceBody{
		PreferredGroupType: model.GroupTypeSolo,
		BudgetRange:        rangeBody{Min: 1500, Max: 500},
	}

	assert.Equal(t, "", body.validate())
}

func TestPreferenceValidationRejectsUnknownGroupType(t *testing.T) {
	body := preferenceBody{PreferredGroupType: "entourage"}

	assert.Equal(t, "The provided group type is not valid", body.validate())
}

func TestPreferenceValidationRejectsUnknownHotelCategory(t *testing.T) {
	body := preferenceBody{PreferredHotelCategory: "palatial"}

	assert.Equal(t, "The provided hotel category is not valid", body.validate())
}

func TestPreferenceValidationRejectsUnknownTransportPreference(t *testing.T) {
	body := preferenceBody{TransportPreferences: model.StringList{"flights", "rickshaw"}}

	assert.Equal(t, "The provided transport preference is not valid", body.validate())
}

func TestPreferenceValidationAcceptsEmptyBody(t *testing.T) {
	body := preferenceBody{}

	assert.Equal(t, "", body.validate())
}
