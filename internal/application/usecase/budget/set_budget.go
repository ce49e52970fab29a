package budget

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting the daily budget.
type SetBudgetInput struct {
	Amount decimal.Decimal
}

// SetBudgetOutput represents the budget state after the update.
type SetBudgetOutput struct {
	Status *StatusOutput
}

// Notifier is notified when a budget change pushes spending over the limit.
type Notifier interface {
	NotifyIfCrossed(ctx context.Context, before, after, dailyBudget decimal.Decimal)
}

// SetBudgetUseCase overwrites the daily budget.
type SetBudgetUseCase struct {
	store    *store.ListStore
	notifier Notifier
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance. The notifier
// may be nil when budget alerts are not configured.
func NewSetBudgetUseCase(s *store.ListStore, notifier Notifier) *SetBudgetUseCase {
	return &SetBudgetUseCase{store: s, notifier: notifier}
}

// Execute validates and stores the new budget. Zero is accepted and means
// "no budget set"; negative amounts are rejected.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	spent := uc.store.TotalSpent()
	previous := uc.store.Budget()
	uc.store.SetBudget(input.Amount)

	// Lowering the budget below current spending is a crossing too: the
	// "before" total is compared against the new budget, so a total that was
	// within the old limit but above the new one triggers the alert.
	if uc.notifier != nil && !previous.Equal(input.Amount) {
		uc.notifier.NotifyIfCrossed(ctx, decimal.Zero, spent, input.Amount)
	}

	return &SetBudgetOutput{Status: statusFor(uc.store)}, nil
}
