package item

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/application/usecase/budget"
	"github.com/krigzlist/backend/internal/domain/entity"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// OverrunNotifier is notified after a mutation pushes total spending across
// the daily budget. Implementations must not block the caller.
type OverrunNotifier interface {
	NotifyIfCrossed(ctx context.Context, before, after, dailyBudget decimal.Decimal)
}

// AddItemInput represents the input for adding an item to the list.
type AddItemInput struct {
	Name     string
	Category string
	Quantity int
	Unit     string
	Priority string
	Notes    string
	Price    decimal.Decimal

	// Confirmed skips the pre-commit budget gate. The first attempt at an
	// addition that would exceed the budget is refused with a projection;
	// a confirmed retry commits it.
	Confirmed bool
}

// AddItemOutput represents the result of an addition attempt.
type AddItemOutput struct {
	Item *ItemOutput

	// RequiresConfirmation is true when the addition was withheld because it
	// would push total spending past the daily budget. Nothing was added.
	RequiresConfirmation bool
	ProjectedOverage     decimal.Decimal
}

// AddItemUseCase handles item creation, including the budget pre-commit gate.
type AddItemUseCase struct {
	store    *store.ListStore
	notifier OverrunNotifier
}

// NewAddItemUseCase creates a new AddItemUseCase instance. The notifier may
// be nil when budget alerts are not configured.
func NewAddItemUseCase(s *store.ListStore, notifier OverrunNotifier) *AddItemUseCase {
	return &AddItemUseCase{store: s, notifier: notifier}
}

// Execute validates the draft, runs the budget gate and appends the item.
func (uc *AddItemUseCase) Execute(ctx context.Context, input AddItemInput) (*AddItemOutput, error) {
	draft, err := draftFromInput(input.Name, input.Category, input.Quantity, input.Unit, input.Priority, input.Notes, input.Price)
	if err != nil {
		return nil, err
	}

	if !input.Confirmed {
		before := uc.store.TotalSpent()
		dailyBudget := uc.store.Budget()
		if exceeds, overage := budget.EvaluateAddition(before, draft.Price, dailyBudget); exceeds {
			return &AddItemOutput{
				RequiresConfirmation: true,
				ProjectedOverage:     overage,
			}, nil
		}
	}

	before := uc.store.TotalSpent()
	added := uc.store.Add(draft)
	uc.notifyCrossed(ctx, before)

	out := toItemOutput(added, false)
	return &AddItemOutput{Item: &out}, nil
}

func (uc *AddItemUseCase) notifyCrossed(ctx context.Context, before decimal.Decimal) {
	if uc.notifier == nil {
		return
	}
	uc.notifier.NotifyIfCrossed(ctx, before, uc.store.TotalSpent(), uc.store.Budget())
}

// draftFromInput normalizes raw input into an item draft, rejecting blank
// names and negative prices. Category falls back to the default category so
// every stored item belongs to a known section.
func draftFromInput(name, category string, quantity int, unit, priority, notes string, price decimal.Decimal) (entity.ItemDraft, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return entity.ItemDraft{}, domainerror.NewItemError(
			domainerror.ErrCodeItemNameRequired,
			"item name must not be empty",
			domainerror.ErrItemNameRequired,
		)
	}
	if price.IsNegative() {
		return entity.ItemDraft{}, domainerror.NewItemError(
			domainerror.ErrCodeNegativeItemPrice,
			"item price must not be negative",
			domainerror.ErrNegativeItemPrice,
		)
	}
	if strings.TrimSpace(category) == "" {
		category = entity.DefaultCategory().Name
	}
	return entity.ItemDraft{
		Name:     trimmed,
		Category: category,
		Quantity: quantity,
		Unit:     unit,
		Priority: entity.Priority(priority),
		Notes:    notes,
		Price:    price,
	}, nil
}
