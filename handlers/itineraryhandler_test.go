package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItinerarySession(t *testing.T, totalDays int) itinerarySession {
	t.Helper()

	body := `{"destination_id": 1, "total_days": ` + jsonInt(totalDays) + `}`
	request := httptest.NewRequest("POST", "/itineraries", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraries(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var session itinerarySession
	err := json.NewDecoder(recorder.Body).Decode(&session)
	require.NoError(t, err)
	require.NotEmpty(t, session.ItineraryID)

	return session
}

func jsonInt(value int) string {
	data, _ := json.Marshal(value)
	return string(data)
}

func TestCreateItineraryBuildsEmptyDays(t *testing.T) {
	session := newItinerarySession(t, 3)

	require.Len(t, session.Days, 3)
	for i, day := range session.Days {
		assert.Equal(t, i+1, day.Day)
		assert.Empty(t, day.Activities)
	}
}

func TestCreateItineraryRejectsWrongDays(t *testing.T) {
	body := `{"destination_id": 1, "total_days": 0}`
	request := httptest.NewRequest("POST", "/itineraries", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraries(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreateItineraryRejectsWrongDestination(t *testing.T) {
	body := `{"destination_id": 0, "total_days": 2}`
	request := httptest.NewRequest("POST", "/itineraries", strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraries(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddActivityAppendsTemplate(t *testing.T) {
	session := newItinerarySession(t, 2)

	body := `{"day": 2}`
	request := httptest.NewRequest("POST", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated itinerarySession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)

	require.Len(t, updated.Days[1].Activities, 1)
	assert.Equal(t, "09:00", updated.Days[1].Activities[0].Time)
	assert.Equal(t, 120, updated.Days[1].Activities[0].Duration)
	assert.Empty(t, updated.Days[0].Activities)
}

func TestAddActivityRejectsDayOutOfRange(t *testing.T) {
	session := newItinerarySession(t, 2)

	body := `{"day": 5}`
	request := httptest.NewRequest("POST", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveVanishedActivityIsNoOp(t *testing.T) {
	session := newItinerarySession(t, 1)

	body := `{"day": 1, "index": 7}`
	request := httptest.NewRequest("DELETE", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)

	// the state already matches what the caller asked for
	require.Equal(t, http.StatusOK, recorder.Code)

	var updated itinerarySession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Empty(t, updated.Days[0].Activities)
}

func TestUpdateActivityTimeField(t *testing.T) {
	session := newItinerarySession(t, 1)

	body := `{"day": 1}`
	request := httptest.NewRequest("POST", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	body = `{"day": 1, "index": 0, "field": "time", "value": "14:30"}`
	request = httptest.NewRequest("PUT", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder = httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated itinerarySession
	err := json.NewDecoder(recorder.Body).Decode(&updated)
	require.NoError(t, err)
	assert.Equal(t, "14:30", updated.Days[0].Activities[0].Time)
}

func TestUpdateActivityRejectsUnknownField(t *testing.T) {
	session := newItinerarySession(t, 1)

	body := `{"day": 1}`
	request := httptest.NewRequest("POST", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder := httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	body = `{"day": 1, "index": 0, "field": "color", "value": "blue"}`
	request = httptest.NewRequest("PUT", "/itineraries/activity?itinerary_id="+session.ItineraryID, strings.NewReader(body))
	recorder = httptest.NewRecorder()
	HandleItineraryActivity(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetItineraryNotFound(t *testing.T) {
	request := httptest.NewRequest("GET", "/itineraries/itinerary?itinerary_id=missing", nil)
	recorder := httptest.NewRecorder()
	HandleItinerary(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
