package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easemytrip-planner/internals"
)

// newAnonymousSession drives the create endpoint and returns the decoded
// session state.
func newAnonymousSession(t *testing.T) internals.WizardSession {
	t.Helper()

	request := httptest.NewRequest("POST", "/wizard/sessions", nil)
	recorder := httptest.NewRecorder()
	HandleWizardSessions(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var session internals.WizardSession
	err := json.NewDecoder(recorder.Body).Decode(&session)
	require.NoError(t, err)
	require.NotEmpty(t, session.SessionID)

	return session
}

func TestCreateWizardSessionStartsAtFirstStep(t *testing.T) {
	session := newAnonymousSession(t)

	assert.Equal(t, internals.StepSearch, session.Step)
	assert.Equal(t, "", session.UserID)
	assert.Equal(t, 10000.0, session.Form.BudgetMax)
	assert.Equal(t, 1, session.Form.Travelers)
}

func TestGetWizardSessionNotFound(t *testing.T) {
	request := httptest.NewRequest("GET", "/wizard/session?session_id=missing", nil)
	recorder := httptest.NewRecorder()
	HandleWizardSession(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetWizardSessionMissingId(t *testing.T) {
	request := httptest.NewRequest("GET", "/wizard/session", nil)
	recorder := httptest.NewRecorder()
	HandleWizardSession(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestWizardAdvanceBlockedWithoutDestination(t *testing.T) {
	session := newAnonymousSession(t)

	request := httptest.NewRequest("POST", "/wizard/advance?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardAdvance(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)

	wizardSessionsMutex.Lock()
	assert.Equal(t, internals.StepSearch, wizardSessions[session.SessionID].Step)
	wizardSessionsMutex.Unlock()
}

func TestWizardFormUpdateAndAdvance(t *testing.T) {
	session := newAnonymousSession(t)

	body := `{"destination": "Jaipur"}`
	request := httptest.NewRequest("PUT", "/wizard/form?session_id="+session.SessionID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleWizardForm(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated internals.WizardSession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Equal(t, "Jaipur", updated.Form.Destination)
	// untouched fields keep their defaults
	assert.Equal(t, 10000.0, updated.Form.BudgetMax)

	request = httptest.NewRequest("POST", "/wizard/advance?session_id="+session.SessionID, nil)
	recorder = httptest.NewRecorder()
	HandleWizardAdvance(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	err = json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Equal(t, internals.StepStyle, updated.Step)
}

func TestWizardFormRejectsUnknownGroupType(t *testing.T) {
	session := newAnonymousSession(t)

	body := `{"preferred_group_type": "entourage"}`
	request := httptest.NewRequest("PUT", "/wizard/form?session_id="+session.SessionID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleWizardForm(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestWizardFormRejectsUnknownHotelCategory(t *testing.T) {
	session := newAnonymousSession(t)

	body := `{"preferred_hotel_category": "palatial"}`
	request := httptest.NewRequest("PUT", "/wizard/form?session_id="+session.SessionID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleWizardForm(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAnonymousAdvanceFromStyleStepRequiresSignIn(t *testing.T) {
	session := newAnonymousSession(t)

	wizardSessionsMutex.Lock()
	stored := wizardSessions[session.SessionID]
	stored.Form.Destination = "Goa"
	stored.Form.PreferredGroupType = "couple"
	stored.Step = internals.StepStyle
	wizardSessionsMutex.Unlock()

	// no Authorization header on the request
	request := httptest.NewRequest("POST", "/wizard/advance?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardAdvance(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Please sign in")

	// the session is held on the style step
	wizardSessionsMutex.Lock()
	assert.Equal(t, internals.StepStyle, wizardSessions[session.SessionID].Step)
	wizardSessionsMutex.Unlock()
}

func TestWizardRetreatFromStyleStep(t *testing.T) {
	session := newAnonymousSession(t)

	wizardSessionsMutex.Lock()
	wizardSessions[session.SessionID].Step = internals.StepStyle
	wizardSessionsMutex.Unlock()

	request := httptest.NewRequest("POST", "/wizard/retreat?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardRetreat(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated internals.WizardSession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Equal(t, internals.StepSearch, updated.Step)
}

func TestWizardResetClearsFormAndStep(t *testing.T) {
	session := newAnonymousSession(t)

	wizardSessionsMutex.Lock()
	stored := wizardSessions[session.SessionID]
	stored.Form.Destination = "Kerala"
	stored.Form.DepartureDate = "2026-01-10"
	stored.Step = internals.StepDetails
	wizardSessionsMutex.Unlock()

	request := httptest.NewRequest("POST", "/wizard/reset?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardReset(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated internals.WizardSession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Equal(t, internals.StepSearch, updated.Step)
	assert.Equal(t, "", updated.Form.Destination)
	assert.Equal(t, "", updated.Form.DepartureDate)
	assert.Equal(t, 10000.0, updated.Form.BudgetMax)
}

func TestBookingLinksRequireBookingStep(t *testing.T) {
	session := newAnonymousSession(t)

	request := httptest.NewRequest("GET", "/wizard/bookingLinks?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardBookingLinks(recorder, request)

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestBookingLinksRenderBothDeepLinks(t *testing.T) {
	session := newAnonymousSession(t)

	wizardSessionsMutex.Lock()
	stored := wizardSessions[session.SessionID]
	stored.Form.Destination = "Udaipur"
	stored.Form.DepartureDate = "2026-02-01"
	stored.Form.ReturnDate = "2026-02-07"
	stored.Form.Travelers = 2
	stored.Form.PreferredHotelCategory = "luxury"
	stored.Step = internals.StepBooking
	wizardSessionsMutex.Unlock()

	request := httptest.NewRequest("GET", "/wizard/bookingLinks?session_id="+session.SessionID+"&from=Delhi", nil)
	recorder := httptest.NewRecorder()
	HandleWizardBookingLinks(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var links bookingLinksResponse
	err := json.NewDecoder(recorder.Body).Decode(&links)
	require.NoError(t, err)

	flightURL, err := url.Parse(links.FlightURL)
	require.NoError(t, err)
	assert.Equal(t, "www.easemytrip.com", flightURL.Host)
	assert.Equal(t, "Delhi", flightURL.Query().Get("from"))
	assert.Equal(t, "Udaipur", flightURL.Query().Get("to"))
	assert.Equal(t, "2", flightURL.Query().Get("adults"))

	hotelURL, err := url.Parse(links.HotelURL)
	require.NoError(t, err)
	assert.Equal(t, "Udaipur", hotelURL.Query().Get("city"))
	assert.Equal(t, "luxury", hotelURL.Query().Get("category"))
	assert.Equal(t, "2026-02-01", hotelURL.Query().Get("checkin"))
	assert.Equal(t, "2026-02-07", hotelURL.Query().Get("checkout"))
}

func TestWizardEndpointsRejectWrongMethods(t *testing.T) {
	session := newAnonymousSession(t)

	request := httptest.NewRequest("GET", "/wizard/advance?session_id="+session.SessionID, nil)
	recorder := httptest.NewRecorder()
	HandleWizardAdvance(recorder, request)
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)

	request = httptest.NewRequest("DELETE", "/wizard/sessions", nil)
	recorder = httptest.NewRecorder()
	HandleWizardSessions(recorder, request)
	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
