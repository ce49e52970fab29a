// Package model defines the persisted JSON shape of the list state.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/domain/entity"
)

// ItemDocument is the stored JSON form of a shopping item. The field names
// are part of the persisted format and must not change.
type ItemDocument struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	Completed bool   `json:"completed"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes,omitempty"`
	Price     string `json:"price,omitempty"`
	DateAdded string `json:"dateAdded"`
}

// FromEntity converts a domain item to its stored form.
func FromEntity(it entity.Item) ItemDocument {
	doc := ItemDocument{
		ID:        it.ID.String(),
		Name:      it.Name,
		Category:  it.Category,
		Quantity:  it.Quantity,
		Unit:      it.Unit,
		Completed: it.Completed,
		Priority:  string(it.Priority),
		Notes:     it.Notes,
		DateAdded: it.DateAdded.Format(time.RFC3339Nano),
	}
	if !it.Price.IsZero() {
		doc.Price = it.Price.String()
	}
	return doc
}

// ToEntity converts a stored document back to a domain item. Fields that
// fail to parse are individually replaced with safe defaults so one bad
// field never discards the whole item.
func (d ItemDocument) ToEntity() entity.Item {
	it := entity.Item{
		Name:      d.Name,
		Category:  d.Category,
		Quantity:  d.Quantity,
		Unit:      d.Unit,
		Completed: d.Completed,
		Priority:  entity.Priority(d.Priority),
		Notes:     d.Notes,
		Price:     decimal.Zero,
	}

	id, err := uuid.Parse(d.ID)
	if err != nil {
		id = uuid.New()
	}
	it.ID = id

	if it.Quantity < 1 {
		it.Quantity = 1
	}
	if it.Unit == "" {
		it.Unit = entity.DefaultUnit
	}
	if !entity.IsValidPriority(it.Priority) {
		it.Priority = entity.PriorityMedium
	}

	if d.Price != "" {
		if price, err := decimal.NewFromString(d.Price); err == nil && !price.IsNegative() {
			it.Price = price
		}
	}

	dateAdded, err := time.Parse(time.RFC3339Nano, d.DateAdded)
	if err != nil {
		dateAdded = time.Now().UTC()
	}
	it.DateAdded = dateAdded

	return it
}
