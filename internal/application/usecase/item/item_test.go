package item

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/domain/entity"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

type noopSnapshotRepository struct{}

func (noopSnapshotRepository) Load(context.Context) ([]entity.Item, decimal.Decimal) {
	return nil, decimal.Zero
}

func (noopSnapshotRepository) Save(context.Context, []entity.Item, decimal.Decimal) error {
	return nil
}

func newStore() *store.ListStore {
	return store.NewListStore(noopSnapshotRepository{})
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    AddItemInput
		wantCode domainerror.ItemErrorCode
	}{
		{
			name:     "blank name is rejected",
			input:    AddItemInput{Name: "   "},
			wantCode: domainerror.ErrCodeItemNameRequired,
		},
		{
			name:     "negative price is rejected",
			input:    AddItemInput{Name: "Milk", Price: money("-1")},
			wantCode: domainerror.ErrCodeNegativeItemPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore()
			_, err := NewAddItemUseCase(s, nil).Execute(context.Background(), tt.input)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			var itemErr *domainerror.ItemError
			if !errors.As(err, &itemErr) {
				t.Fatalf("expected an ItemError, got %T", err)
			}
			if itemErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, itemErr.Code)
			}
			if len(s.Items()) != 0 {
				t.Error("expected the rejected item to not be stored")
			}
		})
	}
}

func TestAddItemAppliesDefaults(t *testing.T) {
	s := newStore()
	out, err := NewAddItemUseCase(s, nil).Execute(context.Background(), AddItemInput{
		Name:     "  Milk  ",
		Priority: "urgent",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	it := out.Item
	if it.Name != "Milk" {
		t.Errorf("expected trimmed name Milk, got %q", it.Name)
	}
	if it.Category != entity.DefaultCategory().Name {
		t.Errorf("expected default category, got %q", it.Category)
	}
	if it.Quantity != 1 || it.Unit != entity.DefaultUnit {
		t.Errorf("expected quantity 1 %s, got %d %s", entity.DefaultUnit, it.Quantity, it.Unit)
	}
	if it.Priority != string(entity.PriorityMedium) {
		t.Errorf("expected invalid priority to fall back to medium, got %s", it.Priority)
	}
	if it.Completed {
		t.Error("expected new items to start incomplete")
	}
	if it.Price != "" {
		t.Errorf("expected no price, got %q", it.Price)
	}
}

func TestAddItemBudgetGate(t *testing.T) {
	s := newStore()
	s.SetBudget(money("4"))
	uc := NewAddItemUseCase(s, nil)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, AddItemInput{Name: "Milk", Price: money("2")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Execute(ctx, AddItemInput{Name: "Bread", Price: money("3")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.RequiresConfirmation {
		t.Fatal("expected the overrunning addition to require confirmation")
	}
	if !out.ProjectedOverage.Equal(money("1")) {
		t.Errorf("expected projected overage 1, got %s", out.ProjectedOverage)
	}
	if len(s.Items()) != 1 {
		t.Fatalf("expected the gated item to not be stored, got %d items", len(s.Items()))
	}

	out, err = uc.Execute(ctx, AddItemInput{Name: "Bread", Price: money("3"), Confirmed: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RequiresConfirmation || out.Item == nil {
		t.Fatal("expected the confirmed addition to commit")
	}
	if len(s.Items()) != 2 {
		t.Errorf("expected 2 items after confirmation, got %d", len(s.Items()))
	}
}

func TestEditItemNotFound(t *testing.T) {
	s := newStore()
	_, err := NewEditItemUseCase(s, nil).Execute(context.Background(), EditItemInput{
		ID:   uuid.New(),
		Name: "Ghost",
	})

	var itemErr *domainerror.ItemError
	if !errors.As(err, &itemErr) || itemErr.Code != domainerror.ErrCodeItemNotFound {
		t.Fatalf("expected item-not-found error, got %v", err)
	}
}

func TestToggleItemRedirectsInSelectionMode(t *testing.T) {
	s := newStore()
	milk := s.Add(entity.ItemDraft{Name: "Milk"})
	bread := s.Add(entity.ItemDraft{Name: "Bread"})
	s.ToggleSelected(bread.ID)

	out, err := NewToggleItemUseCase(s).Execute(context.Background(), ToggleItemInput{ID: milk.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Redirected {
		t.Error("expected the tap to be redirected to selection")
	}
	if !out.Item.Selected {
		t.Error("expected the tapped item to become selected")
	}
	if out.Item.Completed {
		t.Error("expected the completion flag to stay untouched")
	}
}

func TestToggleItemFlipsCompletionOutsideSelectionMode(t *testing.T) {
	s := newStore()
	milk := s.Add(entity.ItemDraft{Name: "Milk"})

	out, err := NewToggleItemUseCase(s).Execute(context.Background(), ToggleItemInput{ID: milk.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Redirected || !out.Item.Completed {
		t.Errorf("expected a plain completion toggle, got redirected=%v completed=%v",
			out.Redirected, out.Item.Completed)
	}
}

func TestDeleteSelectedExitsSelectionMode(t *testing.T) {
	s := newStore()
	milk := s.Add(entity.ItemDraft{Name: "Milk"})
	s.Add(entity.ItemDraft{Name: "Bread"})
	s.ToggleSelected(milk.ID)

	out, err := NewDeleteSelectedUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", out.Deleted)
	}
	if s.InSelectionMode() {
		t.Error("expected selection mode to end after bulk delete")
	}
}

func TestListItemsGroupsAndCounts(t *testing.T) {
	s := newStore()
	s.Add(entity.ItemDraft{Name: "Apples", Category: "Fruits & Vegetables"})
	s.Add(entity.ItemDraft{Name: "Chicken", Category: "Meat & Seafood"})
	milk := s.Add(entity.ItemDraft{Name: "Milk", Category: "Dairy & Eggs"})
	s.ToggleCompleted(milk.ID)

	out, err := NewListItemsUseCase(s).Execute(context.Background(), ListItemsInput{ShowCompleted: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Groups) != 2 {
		t.Fatalf("expected 2 visible groups, got %d", len(out.Groups))
	}
	if out.Groups[0].CategoryName != "Fruits & Vegetables" || out.Groups[1].CategoryName != "Meat & Seafood" {
		t.Errorf("expected fixed category order, got [%s %s]",
			out.Groups[0].CategoryName, out.Groups[1].CategoryName)
	}
	if out.TotalCount != 3 || out.CompletedCount != 1 {
		t.Errorf("expected counters over the full collection, got total=%d completed=%d",
			out.TotalCount, out.CompletedCount)
	}
}
