// Package item contains shopping-list item use cases.
package item

import (
	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/domain/entity"
)

// ItemOutput represents an item in use case outputs.
type ItemOutput struct {
	ID        string
	Name      string
	Category  string
	Quantity  int
	Unit      string
	Completed bool
	Selected  bool
	Priority  string
	Notes     string
	Price     string // empty when the item has no price
	DateAdded string // RFC 3339
}

// CategoryGroupOutput is one category section of the grouped list view.
type CategoryGroupOutput struct {
	CategoryID   string
	CategoryName string
	Icon         string
	Color        string
	Items        []ItemOutput
}

func toItemOutput(it entity.Item, selected bool) ItemOutput {
	price := ""
	if !it.Price.IsZero() {
		price = it.Price.String()
	}
	return ItemOutput{
		ID:        it.ID.String(),
		Name:      it.Name,
		Category:  it.Category,
		Quantity:  it.Quantity,
		Unit:      it.Unit,
		Completed: it.Completed,
		Selected:  selected,
		Priority:  string(it.Priority),
		Notes:     it.Notes,
		Price:     price,
		DateAdded: it.DateAdded.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toGroupOutputs(s *store.ListStore, groups []store.CategoryGroup) []CategoryGroupOutput {
	out := make([]CategoryGroupOutput, 0, len(groups))
	for _, g := range groups {
		items := make([]ItemOutput, 0, len(g.Items))
		for _, it := range g.Items {
			items = append(items, toItemOutput(it, s.IsSelected(it.ID)))
		}
		out = append(out, CategoryGroupOutput{
			CategoryID:   g.Category.ID,
			CategoryName: g.Category.Name,
			Icon:         g.Category.Icon,
			Color:        g.Category.Color,
			Items:        items,
		})
	}
	return out
}
