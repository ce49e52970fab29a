// Package store holds the in-memory shopping list state: the item
// collection, the ephemeral selection set and the daily budget.
//
// The original state model is single-threaded and event-driven; under
// concurrent HTTP callers a single mutex serializes every read and
// mutation, preserving the single-logical-writer semantics. After each
// successful mutation the state is persisted through the snapshot
// repository as a fire-and-forget write: saves are not ordered against
// each other and the last write to complete wins.
package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/adapter"
	"github.com/krigzlist/backend/internal/domain/entity"
)

// saveTimeout bounds a single background snapshot write.
const saveTimeout = 5 * time.Second

// ListStore owns the shopping list state for the lifetime of the process.
type ListStore struct {
	mu        sync.Mutex
	items     []entity.Item
	selected  map[uuid.UUID]struct{}
	budget    decimal.Decimal
	revision  uint64
	snapshots adapter.SnapshotRepository
}

// NewListStore creates an empty list store backed by the given snapshot
// repository. Call Hydrate before serving requests.
func NewListStore(snapshots adapter.SnapshotRepository) *ListStore {
	return &ListStore{
		selected:  make(map[uuid.UUID]struct{}),
		budget:    decimal.Zero,
		snapshots: snapshots,
	}
}

// Hydrate loads the persisted state. It runs once at startup, before the
// store is considered ready; loading never fails because the repository
// degrades malformed data to an empty state.
func (s *ListStore) Hydrate(ctx context.Context) {
	items, budget := s.snapshots.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = items
	s.budget = budget

	slog.Info("List store hydrated",
		"items", len(items),
		"daily_budget", budget.String(),
	)
}

// Add creates a new item from the draft and appends it to the end of the
// collection. Insertion order is the canonical list order.
func (s *ListStore) Add(draft entity.ItemDraft) entity.Item {
	item := entity.NewItem(draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, *item)
	s.persistLocked()
	return *item
}

// Edit replaces all mutable fields of the item matching id while preserving
// its identity, completion state and creation timestamp. It reports whether
// the id was found; a miss mutates nothing.
func (s *ListStore) Edit(id uuid.UUID, draft entity.ItemDraft) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return entity.Item{}, false
	}
	s.items[idx].ApplyDraft(draft)
	s.persistLocked()
	return s.items[idx], true
}

// ToggleCompleted flips the completion flag of the item matching id. The
// toggle is suppressed while the selection set is non-empty: in selection
// mode a tap selects, it does not complete.
func (s *ListStore) ToggleCompleted(id uuid.UUID) (entity.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selected) > 0 {
		return entity.Item{}, false
	}
	idx := s.indexOfLocked(id)
	if idx < 0 {
		return entity.Item{}, false
	}
	s.items[idx].Completed = !s.items[idx].Completed
	s.persistLocked()
	return s.items[idx], true
}

// ToggleSelected adds or removes id from the selection set and reports the
// resulting membership. The selection set is ephemeral and never persisted.
func (s *ListStore) ToggleSelected(id uuid.UUID) (selected, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOfLocked(id) < 0 {
		return false, false
	}
	if _, exists := s.selected[id]; exists {
		delete(s.selected, id)
		return false, true
	}
	s.selected[id] = struct{}{}
	return true, true
}

// ClearSelection empties the selection set without deleting anything.
func (s *ListStore) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.selected)
}

// DeleteOne removes the item matching id, reporting whether it existed.
func (s *ListStore) DeleteOne(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOfLocked(id)
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.selected, id)
	s.persistLocked()
	return true
}

// DeleteSelected removes every selected item and clears the selection set.
// It returns the number of items removed.
func (s *ListStore) DeleteSelected() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selected) == 0 {
		return 0
	}
	kept := s.items[:0]
	removed := 0
	for _, item := range s.items {
		if _, isSelected := s.selected[item.ID]; isSelected {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	clear(s.selected)
	s.persistLocked()
	return removed
}

// ClearAll removes every item and empties the selection set.
func (s *ListStore) ClearAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := len(s.items)
	s.items = nil
	clear(s.selected)
	s.persistLocked()
	return removed
}

// MarkAllIncomplete resets the completion flag on every item and returns the
// number of items that changed.
func (s *ListStore) MarkAllIncomplete() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.items {
		if s.items[i].Completed {
			s.items[i].Completed = false
			changed++
		}
	}
	if changed > 0 {
		s.persistLocked()
	}
	return changed
}

// Items returns a copy of the full item collection in canonical order.
func (s *ListStore) Items() []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Item(nil), s.items...)
}

// Filter returns the items whose name case-insensitively contains query,
// hiding completed items unless showCompleted is true. Hidden items are not
// removed; the view restarts from the full collection on every call.
func (s *ListStore) Filter(query string, showCompleted bool) []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(query)
	out := make([]entity.Item, 0, len(s.items))
	for _, item := range s.items {
		if !strings.Contains(strings.ToLower(item.Name), needle) {
			continue
		}
		if item.Completed && !showCompleted {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Snapshot returns a copy of the item collection together with the budget.
func (s *ListStore) Snapshot() ([]entity.Item, decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Item(nil), s.items...), s.budget
}

// TotalSpent sums the price of every item in the full, unfiltered
// collection, treating an absent price as zero.
func (s *ListStore) TotalSpent() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalSpentLocked(s.items)
}

// Budget returns the current daily budget. Zero means "no budget set".
func (s *ListStore) Budget() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.budget
}

// SetBudget overwrites the daily budget. Validation happens in the use case
// layer; the store only records and persists the value.
func (s *ListStore) SetBudget(budget decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.budget = budget
	s.persistLocked()
}

// SelectionCount returns the number of currently selected items.
func (s *ListStore) SelectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.selected)
}

// InSelectionMode reports whether any item is currently selected.
func (s *ListStore) InSelectionMode() bool {
	return s.SelectionCount() > 0
}

// IsSelected reports whether the given id is in the selection set.
func (s *ListStore) IsSelected(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.selected[id]
	return ok
}

// Revision returns a counter incremented on every committed mutation. The
// sync mirror uses it to detect changes without comparing snapshots.
func (s *ListStore) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// indexOfLocked returns the position of the item with the given id, or -1.
func (s *ListStore) indexOfLocked(id uuid.UUID) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked snapshots the state under the lock and saves it in the
// background. Write failures are logged and never block the mutation that
// triggered them; the in-memory state stays authoritative.
func (s *ListStore) persistLocked() {
	s.revision++
	items := append([]entity.Item(nil), s.items...)
	budget := s.budget

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()

		if err := s.snapshots.Save(ctx, items, budget); err != nil {
			slog.Error("Failed to persist list snapshot", "error", err)
		}
	}()
}

func totalSpentLocked(items []entity.Item) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Price)
	}
	return total
}
