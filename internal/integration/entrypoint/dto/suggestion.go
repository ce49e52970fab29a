package dto

import (
	"github.com/krigzlist/backend/internal/application/usecase/suggestion"
)

// ResolveCategoryRequest represents the request body for resolving free text
// to a category.
type ResolveCategoryRequest struct {
	Text string `json:"text" binding:"required,min=1,max=100"`
}

// ResolveCategoryResponse represents the resolved category.
type ResolveCategoryResponse struct {
	Category CategoryResponse `json:"category"`
	Source   string           `json:"source"`
}

// SuggestionResponse represents one quick-add entry.
type SuggestionResponse struct {
	Text         string `json:"text"`
	CategoryName string `json:"category_name"`
}

// ListSuggestionsResponse represents the quick-add suggestion list.
type ListSuggestionsResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// ToListSuggestionsResponse converts the suggestion list to its API form.
func ToListSuggestionsResponse(out *suggestion.ListSuggestionsOutput) ListSuggestionsResponse {
	suggestions := make([]SuggestionResponse, 0, len(out.Suggestions))
	for _, s := range out.Suggestions {
		suggestions = append(suggestions, SuggestionResponse{
			Text:         s.Text,
			CategoryName: s.CategoryName,
		})
	}
	return ListSuggestionsResponse{Suggestions: suggestions}
}
