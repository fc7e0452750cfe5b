package externals

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/joho/godotenv"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"easemytrip-planner/model"
)

var geminiApiKey string

// gemini request and response structures

type GeminiRequest struct {
	Contents []GeminiContent `json:"contents"`
}
type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}
type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}
type GeminiCandidate struct {
	Content *GeminiContent `json:"content"`
}

func InitGeminiApi() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
	geminiApiKey = os.Getenv("GEMINI_API_KEY")
}

// BuildTravelGuidePrompt renders the stored preferences and an optional user
// message into the guide-generation prompt.
func BuildTravelGuidePrompt(preference model.UserPreference, destination, userMessage string) string {
	var sb strings.Builder

	sb.WriteString("You are a travel planning assistant for EaseMyTrip. ")
	sb.WriteString("Write a short personalized travel guide.\n")
	if destination != "" {
		sb.WriteString("Destination: " + destination + "\n")
	}
	if preference.PreferredGroupType != "" {
		sb.WriteString("Traveler group: " + preference.PreferredGroupType + "\n")
	}
	sb.WriteString(fmt.Sprintf("Budget range: %.0f - %.0f\n", preference.BudgetRange.Min, preference.BudgetRange.Max))
	if preference.PreferredHotelCategory != "" {
		sb.WriteString("Hotel category: " + preference.PreferredHotelCategory + "\n")
	}
	if len(preference.Interests) > 0 {
		sb.WriteString("Interests: " + strings.Join(preference.Interests, ", ") + "\n")
	}
	if len(preference.DietaryRestrictions) > 0 {
		sb.WriteString("Dietary restrictions: " + strings.Join(preference.DietaryRestrictions, ", ") + "\n")
	}
	if len(preference.AccessibilityNeeds) > 0 {
		sb.WriteString("Accessibility needs: " + strings.Join(preference.AccessibilityNeeds, ", ") + "\n")
	}
	if userMessage != "" {
		sb.WriteString("User question: " + userMessage + "\n")
	}

	return sb.String()
}

// GenerateTravelGuide calls the language model with the rendered prompt and
// returns the generated guide text.
func GenerateTravelGuide(prompt string) (string, error) {
	if geminiApiKey == "" {
		return "", errors.New("gemini api key not configured")
	}

	request := GeminiRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}
	payload, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	fullURL := "https://generativelanguage.googleapis.com/v1beta/models/gemini-1.5-flash:generateContent?key=" + geminiApiKey

	resp, err := http.Post(fullURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("error calling gemini api: ", err)
		return "", err
	}
	defer func() {
		err = resp.Body.Close()
		if err != nil {
			log.Println("Error closing response body:", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("error reading the body: ", err)
		return "", err
	}

	// check response status code
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini HTTP error: %d - %s", resp.StatusCode, string(body))
	}

	var response GeminiResponse

	jsonReader := bytes.NewReader(body)
	decoder := json.NewDecoder(jsonReader)
	err = decoder.Decode(&response)
	if err != nil {
		log.Println("error decoding JSON: ", err)
		return "", err
	}

	if len(response.Candidates) == 0 ||
		response.Candidates[0].Content == nil ||
		len(response.Candidates[0].Content.Parts) == 0 {
		log.Println("Missing data in the response")
		return "", fmt.Errorf("missing data in response")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}
