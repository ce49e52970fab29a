package item

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// EditItemInput represents the input for editing an existing item.
type EditItemInput struct {
	ID       uuid.UUID
	Name     string
	Category string
	Quantity int
	Unit     string
	Priority string
	Notes    string
	Price    decimal.Decimal
}

// EditItemOutput represents the result of an item edit.
type EditItemOutput struct {
	Item *ItemOutput
}

// EditItemUseCase handles full-replacement edits of an existing item.
type EditItemUseCase struct {
	store    *store.ListStore
	notifier OverrunNotifier
}

// NewEditItemUseCase creates a new EditItemUseCase instance.
func NewEditItemUseCase(s *store.ListStore, notifier OverrunNotifier) *EditItemUseCase {
	return &EditItemUseCase{store: s, notifier: notifier}
}

// Execute replaces the mutable fields of the item matching the id. Identity,
// completion state and creation timestamp are preserved.
func (uc *EditItemUseCase) Execute(ctx context.Context, input EditItemInput) (*EditItemOutput, error) {
	draft, err := draftFromInput(input.Name, input.Category, input.Quantity, input.Unit, input.Priority, input.Notes, input.Price)
	if err != nil {
		return nil, err
	}

	before := uc.store.TotalSpent()
	updated, ok := uc.store.Edit(input.ID, draft)
	if !ok {
		return nil, domainerror.NewItemError(
			domainerror.ErrCodeItemNotFound,
			"item not found",
			domainerror.ErrItemNotFound,
		)
	}
	if uc.notifier != nil {
		uc.notifier.NotifyIfCrossed(ctx, before, uc.store.TotalSpent(), uc.store.Budget())
	}

	out := toItemOutput(updated, uc.store.IsSelected(updated.ID))
	return &EditItemOutput{Item: &out}, nil
}
