// Package suggestion contains the quick-add suggestion use cases.
package suggestion

import (
	"context"
	"log/slog"

	"github.com/krigzlist/backend/internal/application/adapter"
	"github.com/krigzlist/backend/internal/domain/entity"
)

// ResolveCategoryInput represents the input for resolving a suggestion text.
type ResolveCategoryInput struct {
	Text string
}

// ResolveCategoryOutput carries the resolved category and how it was found.
type ResolveCategoryOutput struct {
	Category entity.Category
	// Source is "static", "ai" or "fallback".
	Source string
}

// Resolution sources.
const (
	SourceStatic   = "static"
	SourceAI       = "ai"
	SourceFallback = "fallback"
)

// ResolveCategoryUseCase maps free text to a category. The static table is
// authoritative; an optional AI suggester covers misses, and the first
// category of the enumeration is the deterministic last resort.
type ResolveCategoryUseCase struct {
	suggester adapter.CategorySuggester
}

// NewResolveCategoryUseCase creates a new ResolveCategoryUseCase instance.
// The suggester may be nil when AI categorization is not configured.
func NewResolveCategoryUseCase(suggester adapter.CategorySuggester) *ResolveCategoryUseCase {
	return &ResolveCategoryUseCase{suggester: suggester}
}

// Execute resolves the trimmed, case-insensitive text to a category.
func (uc *ResolveCategoryUseCase) Execute(ctx context.Context, input ResolveCategoryInput) (*ResolveCategoryOutput, error) {
	if name, ok := entity.SuggestionCategoryName(input.Text); ok {
		if category, found := entity.CategoryByName(name); found {
			return &ResolveCategoryOutput{Category: category, Source: SourceStatic}, nil
		}
	}

	if uc.suggester != nil && uc.suggester.IsAvailable() {
		name, err := uc.suggester.SuggestCategory(ctx, input.Text)
		if err != nil {
			slog.Warn("AI category suggestion failed, using fallback", "error", err)
		} else if category, found := entity.CategoryByName(name); found {
			return &ResolveCategoryOutput{Category: category, Source: SourceAI}, nil
		} else {
			slog.Warn("AI suggested an unknown category, using fallback", "category", name)
		}
	}

	return &ResolveCategoryOutput{Category: entity.DefaultCategory(), Source: SourceFallback}, nil
}
