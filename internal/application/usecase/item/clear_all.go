package item

import (
	"context"

	"github.com/krigzlist/backend/internal/application/store"
)

// ClearAllOutput reports how many items were removed from the list.
type ClearAllOutput struct {
	Deleted int
}

// ClearAllUseCase removes every item from the list.
type ClearAllUseCase struct {
	store *store.ListStore
}

// NewClearAllUseCase creates a new ClearAllUseCase instance.
func NewClearAllUseCase(s *store.ListStore) *ClearAllUseCase {
	return &ClearAllUseCase{store: s}
}

// Execute empties the list and the selection set.
func (uc *ClearAllUseCase) Execute(_ context.Context) (*ClearAllOutput, error) {
	return &ClearAllOutput{Deleted: uc.store.ClearAll()}, nil
}
