// Package entity defines the core business entities for the domain layer.
package entity

// Category represents one entry of the fixed category reference table.
// Categories are read-only reference data; items reference them by name.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// DefaultBreakdownColor is used when an item's category name matches no
// reference entry.
const DefaultBreakdownColor = "#999999"

// categories is the fixed, ordered category table. Items store the Name
// field denormalized, so these names are part of the persisted format.
var categories = [...]Category{
	{ID: "1", Name: "Fruits & Vegetables", Icon: "🥕", Color: "#4CAF50"},
	{ID: "2", Name: "Meat & Seafood", Icon: "🥩", Color: "#F44336"},
	{ID: "3", Name: "Dairy & Eggs", Icon: "🥛", Color: "#2196F3"},
	{ID: "4", Name: "Bakery", Icon: "🍞", Color: "#FF9800"},
	{ID: "5", Name: "Pantry", Icon: "🥫", Color: "#795548"},
	{ID: "6", Name: "Frozen", Icon: "🧊", Color: "#00BCD4"},
	{ID: "7", Name: "Household", Icon: "🧽", Color: "#9C27B0"},
	{ID: "8", Name: "Personal Care", Icon: "🧴", Color: "#E91E63"},
}

// Categories returns the fixed category table in enumeration order.
// The returned slice is a copy; callers cannot mutate the reference data.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out[:], categories[:])
	return out
}

// CategoryByName looks up a category by its exact display name.
// Lookup may fail: items can carry stale or unknown category names, and
// callers must degrade gracefully when ok is false.
func CategoryByName(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// DefaultCategory returns the first category of the enumeration, used as
// the deterministic fallback wherever a lookup misses.
func DefaultCategory() Category {
	return categories[0]
}
