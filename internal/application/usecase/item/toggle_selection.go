package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/krigzlist/backend/internal/application/store"
)

// ToggleSelectionInput represents the input for a long-press style selection
// toggle, which enters selection mode on the first selected item.
type ToggleSelectionInput struct {
	ID uuid.UUID
}

// ToggleSelectionOutput represents the resulting selection state.
type ToggleSelectionOutput struct {
	Selected       bool
	SelectionCount int
}

// ToggleSelectionUseCase toggles an item in or out of the selection set.
type ToggleSelectionUseCase struct {
	store *store.ListStore
}

// NewToggleSelectionUseCase creates a new ToggleSelectionUseCase instance.
func NewToggleSelectionUseCase(s *store.ListStore) *ToggleSelectionUseCase {
	return &ToggleSelectionUseCase{store: s}
}

// Execute toggles the selection membership of the given item.
func (uc *ToggleSelectionUseCase) Execute(_ context.Context, input ToggleSelectionInput) (*ToggleSelectionOutput, error) {
	selected, ok := uc.store.ToggleSelected(input.ID)
	if !ok {
		return nil, notFound()
	}
	return &ToggleSelectionOutput{
		Selected:       selected,
		SelectionCount: uc.store.SelectionCount(),
	}, nil
}
