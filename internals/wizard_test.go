package internals

import (
	"easemytrip-planner/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceBlockedWithoutDestination(t *testing.T) {
	session := NewWizardSession("s1", "user-1")

	moved := session.Advance()

	assert.False(t, moved)
	assert.Equal(t, StepSearch, session.Step)
}

func TestAdvanceWithDestination(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"

	moved := session.Advance()

	assert.True(t, moved)
	assert.Equal(t, StepStyle, session.Step)
}

func TestAdvanceBlockedWithoutGroupType(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"
	session.Advance()

	moved := session.Advance()

	assert.False(t, moved)
	assert.Equal(t, StepStyle, session.Step)
}

func TestAdvanceRequiresBothDates(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"
	session.Form.PreferredGroupType = model.GroupTypeCouple
	session.Advance()
	session.Advance()
	require.Equal(t, StepDetails, session.Step)

	session.Form.DepartureDate = "2026-09-10"
	assert.False(t, session.Advance())

	session.Form.ReturnDate = "2026-09-17"
	assert.True(t, session.Advance())
	assert.Equal(t, StepBooking, session.Step)
}

func TestAdvanceDoesNotCheckDateOrdering(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"
	session.Form.PreferredGroupType = model.GroupTypeSolo
	session.Advance()
	session.Advance()

	// return before departure is accepted
	session.Form.DepartureDate = "2026-09-17"
	session.Form.ReturnDate = "2026-09-10"

	assert.True(t, session.Advance())
}

func TestRetreatAlwaysAllowedAboveFirstStep(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"
	session.Advance()

	assert.True(t, session.Retreat())
	assert.Equal(t, StepSearch, session.Step)
	assert.False(t, session.Retreat())
	assert.Equal(t, StepSearch, session.Step)
}

func TestAdvanceStopsAtBookingStep(t *testing.T) {
	session := fullSession()
	require.Equal(t, StepBooking, session.Step)

	assert.False(t, session.Advance())
	assert.Equal(t, StepBooking, session.Step)
}

func TestResetClearsFormAndReturnsToFirstStep(t *testing.T) {
	session := fullSession()
	require.Equal(t, StepBooking, session.Step)

	session.Reset()

	assert.Equal(t, StepSearch, session.Step)
	assert.Equal(t, newWizardForm(), session.Form)
	assert.Empty(t, session.Form.Destination)
	assert.Empty(t, session.Form.PreferredGroupType)
	assert.Equal(t, 1, session.Form.Travelers)
	assert.Equal(t, float64(10000), session.Form.BudgetMax)
}

func TestBookingStepAllowsRetreat(t *testing.T) {
	session := fullSession()

	assert.True(t, session.Retreat())
	assert.Equal(t, StepDetails, session.Step)
}

func TestPreferencePayload(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	session.Form.PreferredGroupType = model.GroupTypeFamily
	session.Form.BudgetMin = 500
	session.Form.BudgetMax = 1500
	session.Form.PreferredHotelCategory = model.HotelCategoryMidRange
	session.Form.Interests = model.StringList{"culture", "food"}

	pref := session.Preference()

	assert.Equal(t, "user-1", pref.UserID)
	assert.Equal(t, model.GroupTypeFamily, pref.PreferredGroupType)
	assert.Equal(t, model.BudgetRange{Min: 500, Max: 1500}, pref.BudgetRange)
	assert.Equal(t, model.StringList{"culture", "food"}, pref.Interests)
}

func TestApplyPreferenceFillsForm(t *testing.T) {
	session := NewWizardSession("s1", "user-1")
	pref := model.UserPreference{
		UserID:               "user-1",
		PreferredGroupType:   model.GroupTypeSolo,
		BudgetRange:          model.BudgetRange{Min: 100, Max: 900},
		TransportPreferences: model.StringList{model.TransportPrefFlights},
		Interests:            model.StringList{"nature"},
		DietaryRestrictions:  model.StringList{},
		AccessibilityNeeds:   model.StringList{},
	}

	session.ApplyPreference(pref)

	assert.Equal(t, model.GroupTypeSolo, session.Form.PreferredGroupType)
	assert.Equal(t, float64(100), session.Form.BudgetMin)
	assert.Equal(t, float64(900), session.Form.BudgetMax)
	assert.Equal(t, model.StringList{model.TransportPrefFlights}, session.Form.TransportPreferences)
}

func fullSession() *WizardSession {
	session := NewWizardSession("s1", "user-1")
	session.Form.Destination = "Jaipur"
	session.Form.PreferredGroupType = model.GroupTypeGroup
	session.Form.DepartureDate = "2026-09-10"
	session.Form.ReturnDate = "2026-09-17"
	session.Advance()
	session.Advance()
	session.Advance()
	return session
}
