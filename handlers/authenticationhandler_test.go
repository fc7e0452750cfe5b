package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDFromRequestWithoutHeader(t *testing.T) {
	request := httptest.NewRequest("GET", "/preferences", nil)

	assert.Equal(t, "", userIDFromRequest(request))
}

func TestUserIDFromRequestWithWrongScheme(t *testing.T) {
	request := httptest.NewRequest("GET", "/preferences", nil)
	request.Header.Set("Authorization", "Basic abc123")

	assert.Equal(t, "", userIDFromRequest(request))
}

func TestUserIDFromRequestWithBearerToken(t *testing.T) {
	request := httptest.NewRequest("GET", "/preferences", nil)
	request.Header.Set("Authorization", "Bearer some-id-token")

	// outside real mode the verifier answers with the fixed test uid
	assert.Equal(t, "test-user-uid", userIDFromRequest(request))
}

func TestRequireUserWritesSignInError(t *testing.T) {
	request := httptest.NewRequest("GET", "/preferences", nil)
	recorder := httptest.NewRecorder()

	userID, ok := requireUser(recorder, request)

	assert.False(t, ok)
	assert.Equal(t, "", userID)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Please sign in")
}
