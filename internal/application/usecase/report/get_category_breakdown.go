package report

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/domain/entity"
)

// BreakdownEntry is one slice of the category spending breakdown.
type BreakdownEntry struct {
	CategoryName string
	Color        string
	Value        decimal.Decimal
	// Percentage is this category's share of total spending, in percent,
	// rounded to one decimal place.
	Percentage decimal.Decimal
	ItemCount  int
}

// GetCategoryBreakdownOutput represents the per-category spending breakdown.
type GetCategoryBreakdownOutput struct {
	TotalSpent decimal.Decimal
	Entries    []BreakdownEntry
}

// GetCategoryBreakdownUseCase aggregates priced items by category.
type GetCategoryBreakdownUseCase struct {
	store *store.ListStore
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase
// instance.
func NewGetCategoryBreakdownUseCase(s *store.ListStore) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{store: s}
}

// Execute sums spending per category over items that carry a positive price.
// Unpriced items are excluded entirely; categories with no priced items do
// not appear. Entries are sorted by value descending, name ascending on ties.
func (uc *GetCategoryBreakdownUseCase) Execute(_ context.Context) (*GetCategoryBreakdownOutput, error) {
	items := uc.store.Items()

	totals := make(map[string]*BreakdownEntry)
	totalSpent := decimal.Zero
	for _, it := range items {
		if !it.IsPriced() {
			continue
		}
		entry, ok := totals[it.Category]
		if !ok {
			entry = &BreakdownEntry{
				CategoryName: it.Category,
				Color:        categoryColor(it.Category),
				Value:        decimal.Zero,
			}
			totals[it.Category] = entry
		}
		entry.Value = entry.Value.Add(it.Price)
		entry.ItemCount++
		totalSpent = totalSpent.Add(it.Price)
	}

	entries := make([]BreakdownEntry, 0, len(totals))
	for _, entry := range totals {
		if totalSpent.IsPositive() {
			entry.Percentage = entry.Value.Div(totalSpent).Mul(decimal.NewFromInt(100)).Round(1)
		}
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Value.Equal(entries[j].Value) {
			return entries[i].Value.GreaterThan(entries[j].Value)
		}
		return entries[i].CategoryName < entries[j].CategoryName
	})

	return &GetCategoryBreakdownOutput{
		TotalSpent: totalSpent,
		Entries:    entries,
	}, nil
}

// categoryColor resolves the display color for a stored category name,
// falling back to a neutral gray for names no longer in the fixed set.
func categoryColor(name string) string {
	if category, ok := entity.CategoryByName(name); ok {
		return category.Color
	}
	return entity.DefaultBreakdownColor
}
