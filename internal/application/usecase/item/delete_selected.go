package item

import (
	"context"

	"github.com/krigzlist/backend/internal/application/store"
)

// DeleteSelectedOutput reports how many items a bulk delete removed.
type DeleteSelectedOutput struct {
	Deleted int
}

// DeleteSelectedUseCase removes every selected item and exits selection mode.
type DeleteSelectedUseCase struct {
	store *store.ListStore
}

// NewDeleteSelectedUseCase creates a new DeleteSelectedUseCase instance.
func NewDeleteSelectedUseCase(s *store.ListStore) *DeleteSelectedUseCase {
	return &DeleteSelectedUseCase{store: s}
}

// Execute deletes the selected items. Deleting with an empty selection is a
// no-op, not an error.
func (uc *DeleteSelectedUseCase) Execute(_ context.Context) (*DeleteSelectedOutput, error) {
	return &DeleteSelectedOutput{Deleted: uc.store.DeleteSelected()}, nil
}
