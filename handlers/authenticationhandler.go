package handlers

import (
	"easemytrip-planner/externals"
	"net/http"
	"strings"
)

// userIDFromRequest extracts and verifies the bearer token, returning the
// authenticated user id or an empty string.
func userIDFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	idToken := strings.TrimPrefix(authHeader, "Bearer ")
	if idToken == "" || idToken == authHeader {
		return ""
	}

	userID, err := externals.VerifyFirebaseToken(r.Context(), idToken)
	if err != nil {
		return ""
	}

	return userID
}

// requireUser writes the sign-in error when no verified identity is present.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := userIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Please sign in", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}
