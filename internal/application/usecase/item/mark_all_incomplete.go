package item

import (
	"context"

	"github.com/krigzlist/backend/internal/application/store"
)

// MarkAllIncompleteOutput reports how many items changed.
type MarkAllIncompleteOutput struct {
	Changed int
}

// MarkAllIncompleteUseCase resets the completion flag on every item, the
// "start a new shopping trip" action.
type MarkAllIncompleteUseCase struct {
	store *store.ListStore
}

// NewMarkAllIncompleteUseCase creates a new MarkAllIncompleteUseCase instance.
func NewMarkAllIncompleteUseCase(s *store.ListStore) *MarkAllIncompleteUseCase {
	return &MarkAllIncompleteUseCase{store: s}
}

// Execute clears every completion flag.
func (uc *MarkAllIncompleteUseCase) Execute(_ context.Context) (*MarkAllIncompleteOutput, error) {
	return &MarkAllIncompleteOutput{Changed: uc.store.MarkAllIncomplete()}, nil
}
