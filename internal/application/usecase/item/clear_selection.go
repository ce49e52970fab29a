package item

import (
	"context"

	"github.com/krigzlist/backend/internal/application/store"
)

// ClearSelectionUseCase exits selection mode without deleting anything.
type ClearSelectionUseCase struct {
	store *store.ListStore
}

// NewClearSelectionUseCase creates a new ClearSelectionUseCase instance.
func NewClearSelectionUseCase(s *store.ListStore) *ClearSelectionUseCase {
	return &ClearSelectionUseCase{store: s}
}

// Execute empties the selection set.
func (uc *ClearSelectionUseCase) Execute(_ context.Context) error {
	uc.store.ClearSelection()
	return nil
}
