package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
)

// RemoveBudgetUseCase clears the daily budget back to the unset state.
type RemoveBudgetUseCase struct {
	store *store.ListStore
}

// NewRemoveBudgetUseCase creates a new RemoveBudgetUseCase instance.
func NewRemoveBudgetUseCase(s *store.ListStore) *RemoveBudgetUseCase {
	return &RemoveBudgetUseCase{store: s}
}

// Execute resets the budget to zero, which disables budget gating, overrun
// flags and chart budget lines.
func (uc *RemoveBudgetUseCase) Execute(_ context.Context) (*StatusOutput, error) {
	uc.store.SetBudget(decimal.Zero)
	return statusFor(uc.store), nil
}
