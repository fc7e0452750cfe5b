package internals

import "easemytrip-planner/model"

// wizard steps
const (
	StepSearch  = 1 // destination and quick preferences
	StepStyle   = 2 // traveler group selection
	StepDetails = 3 // dates and party size
	StepBooking = 4 // external booking links
)

// WizardForm is the form data accumulated across the four steps.
// Departure and return dates are free strings in YYYY-MM-DD form; their
// ordering is deliberately not checked here.
type WizardForm struct {
	Destination            string           `json:"destination"`
	PreferredGroupType     string           `json:"preferred_group_type"`
	BudgetMin              float64          `json:"budget_min"`
	BudgetMax              float64          `json:"budget_max"`
	PreferredHotelCategory string           `json:"preferred_hotel_category"`
	TransportPreferences   model.StringList `json:"transport_preferences"`
	Interests              model.StringList `json:"interests"`
	DietaryRestrictions    model.StringList `json:"dietary_restrictions"`
	AccessibilityNeeds     model.StringList `json:"accessibility_needs"`
	DepartureDate          string           `json:"departure_date"`
	ReturnDate             string           `json:"return_date"`
	Travelers              int              `json:"travelers"`
}

func newWizardForm() WizardForm {
	return WizardForm{
		BudgetMax:            10000,
		TransportPreferences: model.StringList{},
		Interests:            model.StringList{},
		DietaryRestrictions:  model.StringList{},
		AccessibilityNeeds:   model.StringList{},
		Travelers:            1,
	}
}

// WizardSession sequences the four planning steps. Transitions are strictly
// linear, except Reset which jumps back to the first step from anywhere.
type WizardSession struct {
	SessionID string     `json:"session_id"`
	UserID    string     `json:"user_id"`
	Step      int        `json:"step"`
	Form      WizardForm `json:"form"`
}

func NewWizardSession(sessionID, userID string) *WizardSession {
	return &WizardSession{
		SessionID: sessionID,
		UserID:    userID,
		Step:      StepSearch,
		Form:      newWizardForm(),
	}
}

// CanAdvance reports whether the current step's completion precondition
// holds. The booking step is terminal for forward movement.
func (s *WizardSession) CanAdvance() bool {
	switch s.Step {
	case StepSearch:
		return s.Form.Destination != ""
	case StepStyle:
		return s.Form.PreferredGroupType != ""
	case StepDetails:
		// return after departure is not required, see product decision log
		return s.Form.DepartureDate != "" && s.Form.ReturnDate != ""
	default:
		return false
	}
}

// Advance moves to the next step when the precondition holds. A blocked
// transition is a no-op, not an error.
func (s *WizardSession) Advance() bool {
	if !s.CanAdvance() {
		return false
	}
	s.Step++
	return true
}

// Retreat moves one step back, always allowed above the first step.
func (s *WizardSession) Retreat() bool {
	if s.Step <= StepSearch {
		return false
	}
	s.Step--
	return true
}

// Reset clears the accumulated form and returns to the first step.
func (s *WizardSession) Reset() {
	s.Step = StepSearch
	s.Form = newWizardForm()
}

// Preference builds the upsert payload for the step-2 to step-3 commit.
func (s *WizardSession) Preference() model.UserPreference {
	budgetMax := s.Form.BudgetMax
	if budgetMax == 0 {
		budgetMax = 10000
	}
	return model.UserPreference{
		UserID:                 s.UserID,
		PreferredGroupType:     s.Form.PreferredGroupType,
		BudgetRange:            model.BudgetRange{Min: s.Form.BudgetMin, Max: budgetMax},
		PreferredHotelCategory: s.Form.PreferredHotelCategory,
		TransportPreferences:   s.Form.TransportPreferences,
		Interests:              s.Form.Interests,
		DietaryRestrictions:    s.Form.DietaryRestrictions,
		AccessibilityNeeds:     s.Form.AccessibilityNeeds,
	}
}

// ApplyPreference loads a stored preference record into the form, used when
// a returning user starts a new session.
func (s *WizardSession) ApplyPreference(pref model.UserPreference) {
	s.Form.PreferredGroupType = pref.PreferredGroupType
	s.Form.BudgetMin = pref.BudgetRange.Min
	s.Form.BudgetMax = pref.BudgetRange.Max
	s.Form.PreferredHotelCategory = pref.PreferredHotelCategory
	s.Form.TransportPreferences = pref.TransportPreferences
	s.Form.Interests = pref.Interests
	s.Form.DietaryRestrictions = pref.DietaryRestrictions
	s.Form.AccessibilityNeeds = pref.AccessibilityNeeds
}
