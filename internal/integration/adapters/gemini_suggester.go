// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/krigzlist/backend/internal/domain/entity"
)

// GeminiSuggester implements the CategorySuggester using Google Gemini. It
// is consulted only for item names the static suggestion table misses.
type GeminiSuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggester creates a new Gemini suggester instance.
func NewGeminiSuggester(apiKey, modelName string) *GeminiSuggester {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the suggester is configured with an API key.
func (s *GeminiSuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks Gemini which of the fixed categories fits the item.
func (s *GeminiSuggester) SuggestCategory(ctx context.Context, itemName string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini suggester is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(itemName)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp)
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiSuggester) buildPrompt(itemName string) string {
	var sb strings.Builder

	sb.WriteString("You classify grocery shopping items into store sections.\n\n")
	sb.WriteString("Pick the single best matching category for the item below. ")
	sb.WriteString("You MUST answer with one of these exact category names:\n")
	for _, category := range entity.Categories() {
		sb.WriteString("- ")
		sb.WriteString(category.Name)
		sb.WriteString("\n")
	}
	sb.WriteString("\nRespond with JSON only, in this shape:\n")
	sb.WriteString(`{"category": "<exact category name>"}`)
	sb.WriteString("\n\nItem: ")
	sb.WriteString(itemName)
	return sb.String()
}

// parseResponse extracts the category name from the model response.
func (s *GeminiSuggester) parseResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			raw.WriteString(string(text))
		}
	}

	var parsed struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal([]byte(raw.String()), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse gemini response: %w", err)
	}
	if parsed.Category == "" {
		return "", fmt.Errorf("gemini response contained no category")
	}
	return parsed.Category, nil
}
