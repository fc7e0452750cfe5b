package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTravelerGroupMissingType(t *testing.T) {
	request := httptest.NewRequest("GET", "/travelerGroups/group", nil)
	recorder := httptest.NewRecorder()
	HandleTravelerGroup(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTravelerGroupUnknownType(t *testing.T) {
	request := httptest.NewRequest("GET", "/travelerGroups/group?type=entourage", nil)
	recorder := httptest.NewRecorder()
	HandleTravelerGroup(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleTravelerGroupRejectsWrongMethod(t *testing.T) {
	request := httptest.NewRequest("DELETE", "/travelerGroups/group?type=solo", nil)
	recorder := httptest.NewRecorder()
	HandleTravelerGroup(recorder, request)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
