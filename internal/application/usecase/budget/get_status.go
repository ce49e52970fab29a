package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
)

// StatusOutput describes the daily budget against current spending.
type StatusOutput struct {
	DailyBudget decimal.Decimal
	TotalSpent  decimal.Decimal
	Remaining   decimal.Decimal
	OverBudget  bool
	// PercentUsed is spending as a share of the budget, in percent, rounded
	// to one decimal place. Zero when no budget is set.
	PercentUsed decimal.Decimal
}

// GetStatusUseCase reports the budget progress header.
type GetStatusUseCase struct {
	store *store.ListStore
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(s *store.ListStore) *GetStatusUseCase {
	return &GetStatusUseCase{store: s}
}

// Execute computes the current budget status.
func (uc *GetStatusUseCase) Execute(_ context.Context) (*StatusOutput, error) {
	return statusFor(uc.store), nil
}

func statusFor(s *store.ListStore) *StatusOutput {
	items, dailyBudget := s.Snapshot()

	spent := decimal.Zero
	for i := range items {
		spent = spent.Add(items[i].Price)
	}

	status := &StatusOutput{
		DailyBudget: dailyBudget,
		TotalSpent:  spent,
		Remaining:   dailyBudget.Sub(spent),
		OverBudget:  dailyBudget.IsPositive() && spent.GreaterThan(dailyBudget),
		PercentUsed: decimal.Zero,
	}
	if dailyBudget.IsPositive() {
		status.PercentUsed = spent.Div(dailyBudget).Mul(decimal.NewFromInt(100)).Round(1)
	} else {
		// Without a budget there is nothing to be "remaining" from.
		status.Remaining = decimal.Zero
	}
	return status
}
