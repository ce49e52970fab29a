package suggestion

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/krigzlist/backend/internal/domain/entity"
)

// ListSuggestionsInput represents the optional filter for the quick-add list.
type ListSuggestionsInput struct {
	Query string
}

// SuggestionOutput is one quick-add entry with its resolved category.
type SuggestionOutput struct {
	Text         string
	CategoryName string
}

// ListSuggestionsOutput represents the quick-add suggestion list.
type ListSuggestionsOutput struct {
	Suggestions []SuggestionOutput
}

// ListSuggestionsUseCase serves the fixed quick-add list, optionally ranked
// against a partial query so the closest suggestions surface first.
type ListSuggestionsUseCase struct{}

// NewListSuggestionsUseCase creates a new ListSuggestionsUseCase instance.
func NewListSuggestionsUseCase() *ListSuggestionsUseCase {
	return &ListSuggestionsUseCase{}
}

// Execute returns the suggestion list. Without a query the fixed display
// order is kept; with a query, suggestions are ranked by edit distance to
// the query, prefix matches first.
func (uc *ListSuggestionsUseCase) Execute(_ context.Context, input ListSuggestionsInput) (*ListSuggestionsOutput, error) {
	texts := entity.SmartSuggestions()

	query := strings.ToLower(strings.TrimSpace(input.Query))
	if query != "" {
		type ranked struct {
			text     string
			prefix   bool
			distance int
			position int
		}
		rankings := make([]ranked, 0, len(texts))
		for i, text := range texts {
			lower := strings.ToLower(text)
			rankings = append(rankings, ranked{
				text:     text,
				prefix:   strings.HasPrefix(lower, query),
				distance: levenshtein.ComputeDistance(query, lower),
				position: i,
			})
		}
		sort.Slice(rankings, func(i, j int) bool {
			if rankings[i].prefix != rankings[j].prefix {
				return rankings[i].prefix
			}
			if rankings[i].distance != rankings[j].distance {
				return rankings[i].distance < rankings[j].distance
			}
			return rankings[i].position < rankings[j].position
		})
		for i, r := range rankings {
			texts[i] = r.text
		}
	}

	out := make([]SuggestionOutput, 0, len(texts))
	for _, text := range texts {
		categoryName := entity.DefaultCategory().Name
		if name, ok := entity.SuggestionCategoryName(text); ok {
			categoryName = name
		}
		out = append(out, SuggestionOutput{Text: text, CategoryName: categoryName})
	}
	return &ListSuggestionsOutput{Suggestions: out}, nil
}
