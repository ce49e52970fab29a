package item

import (
	"context"

	"github.com/google/uuid"

	"github.com/krigzlist/backend/internal/application/store"
)

// DeleteItemInput represents the input for deleting a single item.
type DeleteItemInput struct {
	ID uuid.UUID
}

// DeleteItemUseCase removes one item from the list.
type DeleteItemUseCase struct {
	store *store.ListStore
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(s *store.ListStore) *DeleteItemUseCase {
	return &DeleteItemUseCase{store: s}
}

// Execute deletes the item matching the id.
func (uc *DeleteItemUseCase) Execute(_ context.Context, input DeleteItemInput) error {
	if !uc.store.DeleteOne(input.ID) {
		return notFound()
	}
	return nil
}
