package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTouristSpotMissingId(t *testing.T) {
	request := httptest.NewRequest("GET", "/spots/spot", nil)
	recorder := httptest.NewRecorder()
	HandleTouristSpot(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTouristSpotWrongId(t *testing.T) {
	request := httptest.NewRequest("GET", "/spots/spot?id=abc", nil)
	recorder := httptest.NewRecorder()
	HandleTouristSpot(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetTouristSpotNegativeId(t *testing.T) {
	request := httptest.NewRequest("GET", "/spots/spot?id=-3", nil)
	recorder := httptest.NewRecorder()
	HandleTouristSpot(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandleTouristSpotRejectsWrongMethod(t *testing.T) {
	request := httptest.NewRequest("POST", "/spots/spot?id=1", nil)
	recorder := httptest.NewRecorder()
	HandleTouristSpot(recorder, request)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
