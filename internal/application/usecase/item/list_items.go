package item

import (
	"context"

	"github.com/krigzlist/backend/internal/application/store"
)

// ListItemsInput represents the filter applied to the list view.
type ListItemsInput struct {
	Query         string
	ShowCompleted bool
}

// ListItemsOutput is the grouped list view plus its header counters. The
// counters always describe the full collection, not the filtered view.
type ListItemsOutput struct {
	Groups         []CategoryGroupOutput
	TotalCount     int
	CompletedCount int
	SelectionCount int
	SelectionMode  bool
}

// ListItemsUseCase produces the filtered, category-grouped list view.
type ListItemsUseCase struct {
	store *store.ListStore
}

// NewListItemsUseCase creates a new ListItemsUseCase instance.
func NewListItemsUseCase(s *store.ListStore) *ListItemsUseCase {
	return &ListItemsUseCase{store: s}
}

// Execute filters the list and groups the result by category in the fixed
// category order, omitting empty categories.
func (uc *ListItemsUseCase) Execute(_ context.Context, input ListItemsInput) (*ListItemsOutput, error) {
	filtered := uc.store.Filter(input.Query, input.ShowCompleted)
	groups := store.GroupByCategory(filtered)

	all := uc.store.Items()
	completed := 0
	for _, it := range all {
		if it.Completed {
			completed++
		}
	}

	return &ListItemsOutput{
		Groups:         toGroupOutputs(uc.store, groups),
		TotalCount:     len(all),
		CompletedCount: completed,
		SelectionCount: uc.store.SelectionCount(),
		SelectionMode:  uc.store.InSelectionMode(),
	}, nil
}
