// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Priority represents the urgency of a shopping item.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// DefaultUnit is the unit assigned when an item draft does not specify one.
const DefaultUnit = "pcs"

// Item represents a single entry on the shopping list.
type Item struct {
	ID        uuid.UUID
	Name      string
	Category  string // category display name, stored denormalized
	Quantity  int
	Unit      string
	Completed bool
	Priority  Priority
	Notes     string
	Price     decimal.Decimal // zero means "not priced"
	DateAdded time.Time
}

// ItemDraft carries the mutable fields of an item as supplied by the caller.
// Defaults are applied by NewItem / ApplyDraft, not by the caller.
type ItemDraft struct {
	Name     string
	Category string
	Quantity int
	Unit     string
	Priority Priority
	Notes    string
	Price    decimal.Decimal
}

// NewItem creates a new Item from a draft, assigning a fresh identifier and
// the current timestamp. Quantity, unit and priority fall back to their
// documented defaults when the draft leaves them empty or invalid.
func NewItem(draft ItemDraft) *Item {
	item := &Item{
		ID:        uuid.New(),
		Completed: false,
		DateAdded: time.Now().UTC(),
	}
	item.ApplyDraft(draft)
	return item
}

// ApplyDraft replaces all mutable fields of the item from the draft while
// preserving ID, Completed and DateAdded.
func (i *Item) ApplyDraft(draft ItemDraft) {
	i.Name = strings.TrimSpace(draft.Name)
	i.Category = draft.Category
	i.Quantity = draft.Quantity
	if i.Quantity < 1 {
		i.Quantity = 1
	}
	i.Unit = draft.Unit
	if i.Unit == "" {
		i.Unit = DefaultUnit
	}
	i.Priority = draft.Priority
	if !IsValidPriority(i.Priority) {
		i.Priority = PriorityMedium
	}
	i.Notes = strings.TrimSpace(draft.Notes)
	i.Price = draft.Price
}

// IsValidPriority reports whether the priority is one of the known levels.
func IsValidPriority(p Priority) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// IsPriced reports whether the item carries a positive price.
// A zero price means "not priced" and is excluded from category breakdowns.
func (i *Item) IsPriced() bool {
	return i.Price.IsPositive()
}
