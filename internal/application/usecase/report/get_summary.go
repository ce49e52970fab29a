package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
)

// GetSummaryOutput is the headline statistics card for the list.
type GetSummaryOutput struct {
	TotalItems     int
	CompletedItems int
	PricedItems    int
	TotalSpent     decimal.Decimal
	// AveragePrice is the mean over priced items only, rounded to two
	// decimal places. Zero when nothing is priced.
	AveragePrice decimal.Decimal
	DailyBudget  decimal.Decimal
	OverBudget   bool
	// TopCategory is the name of the category with the highest spending,
	// empty when nothing is priced.
	TopCategory string
}

// GetSummaryUseCase computes the headline statistics for the list.
type GetSummaryUseCase struct {
	store     *store.ListStore
	breakdown *GetCategoryBreakdownUseCase
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(s *store.ListStore) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		store:     s,
		breakdown: NewGetCategoryBreakdownUseCase(s),
	}
}

// Execute computes the summary over the full, unfiltered collection.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	items, dailyBudget := uc.store.Snapshot()

	out := &GetSummaryOutput{
		TotalItems:   len(items),
		TotalSpent:   decimal.Zero,
		AveragePrice: decimal.Zero,
		DailyBudget:  dailyBudget,
	}
	for _, it := range items {
		if it.Completed {
			out.CompletedItems++
		}
		if it.IsPriced() {
			out.PricedItems++
		}
		out.TotalSpent = out.TotalSpent.Add(it.Price)
	}
	if out.PricedItems > 0 {
		out.AveragePrice = out.TotalSpent.Div(decimal.NewFromInt(int64(out.PricedItems))).Round(2)
	}
	out.OverBudget = dailyBudget.IsPositive() && out.TotalSpent.GreaterThan(dailyBudget)

	breakdown, err := uc.breakdown.Execute(ctx)
	if err != nil {
		return nil, err
	}
	if len(breakdown.Entries) > 0 {
		out.TopCategory = breakdown.Entries[0].CategoryName
	}
	return out, nil
}
