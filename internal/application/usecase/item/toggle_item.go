package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/krigzlist/backend/internal/application/store"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// ToggleItemInput represents the input for a tap on an item row.
type ToggleItemInput struct {
	ID uuid.UUID
}

// ToggleItemOutput represents the result of a tap on an item row.
type ToggleItemOutput struct {
	Item *ItemOutput

	// Redirected is true when the store was in selection mode, in which case
	// the tap toggled the item's selection instead of its completion flag.
	Redirected bool
}

// ToggleItemUseCase flips an item's completion flag, or its selection
// membership while the list is in selection mode.
type ToggleItemUseCase struct {
	store *store.ListStore
}

// NewToggleItemUseCase creates a new ToggleItemUseCase instance.
func NewToggleItemUseCase(s *store.ListStore) *ToggleItemUseCase {
	return &ToggleItemUseCase{store: s}
}

// Execute performs the toggle.
func (uc *ToggleItemUseCase) Execute(_ context.Context, input ToggleItemInput) (*ToggleItemOutput, error) {
	if uc.store.InSelectionMode() {
		selected, ok := uc.store.ToggleSelected(input.ID)
		if !ok {
			return nil, notFound()
		}
		return uc.output(input.ID, selected, true)
	}

	toggled, ok := uc.store.ToggleCompleted(input.ID)
	if !ok {
		// The selection set may have become non-empty between the mode check
		// and the toggle; treat that the same as a selection-mode tap.
		if uc.store.InSelectionMode() {
			selected, selOK := uc.store.ToggleSelected(input.ID)
			if !selOK {
				return nil, notFound()
			}
			return uc.output(input.ID, selected, true)
		}
		return nil, notFound()
	}
	out := toItemOutput(toggled, false)
	return &ToggleItemOutput{Item: &out}, nil
}

func (uc *ToggleItemUseCase) output(id uuid.UUID, selected bool, redirected bool) (*ToggleItemOutput, error) {
	for _, it := range uc.store.Items() {
		if it.ID == id {
			out := toItemOutput(it, selected)
			return &ToggleItemOutput{Item: &out, Redirected: redirected}, nil
		}
	}
	return nil, notFound()
}

func notFound() error {
	return domainerror.NewItemError(
		domainerror.ErrCodeItemNotFound,
		"item not found",
		domainerror.ErrItemNotFound,
	)
}
