package budget

import (
	"context"
	"errors"
	"testing"

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

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluateAddition(t *testing.T) {
	tests := []struct {
		name         string
		currentTotal string
		candidate    string
		dailyBudget  string
		wantExceeds  bool
		wantOverage  string
	}{
		{
			name:         "within budget",
			currentTotal: "2", candidate: "1", dailyBudget: "4",
			wantExceeds: false, wantOverage: "0",
		},
		{
			name:         "exactly at budget is allowed",
			currentTotal: "2", candidate: "2", dailyBudget: "4",
			wantExceeds: false, wantOverage: "0",
		},
		{
			name:         "crossing the budget reports the overage",
			currentTotal: "2", candidate: "3", dailyBudget: "4",
			wantExceeds: true, wantOverage: "1",
		},
		{
			name:         "zero budget never exceeds",
			currentTotal: "100", candidate: "50", dailyBudget: "0",
			wantExceeds: false, wantOverage: "0",
		},
		{
			name:         "unpriced candidate never trips the gate",
			currentTotal: "10", candidate: "0", dailyBudget: "4",
			wantExceeds: false, wantOverage: "0",
		},
		{
			name:         "fractional amounts",
			currentTotal: "3.50", candidate: "1.25", dailyBudget: "4.00",
			wantExceeds: true, wantOverage: "0.75",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exceeds, overage := EvaluateAddition(money(tt.currentTotal), money(tt.candidate), money(tt.dailyBudget))
			if exceeds != tt.wantExceeds {
				t.Errorf("expected exceeds=%v, got %v", tt.wantExceeds, exceeds)
			}
			if !overage.Equal(money(tt.wantOverage)) {
				t.Errorf("expected overage %s, got %s", tt.wantOverage, overage)
			}
		})
	}
}

func TestSetBudgetRejectsNegativeAmount(t *testing.T) {
	s := store.NewListStore(noopSnapshotRepository{})
	uc := NewSetBudgetUseCase(s, nil)

	_, err := uc.Execute(context.Background(), SetBudgetInput{Amount: money("-1")})
	if err == nil {
		t.Fatal("expected an error for a negative budget")
	}
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected a BudgetError, got %T", err)
	}
	if budgetErr.Code != domainerror.ErrCodeInvalidBudgetAmount {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidBudgetAmount, budgetErr.Code)
	}
	if !s.Budget().IsZero() {
		t.Errorf("expected budget to stay unset, got %s", s.Budget())
	}
}

func TestSetBudgetAcceptsZeroAsUnset(t *testing.T) {
	s := store.NewListStore(noopSnapshotRepository{})
	s.SetBudget(money("40"))

	out, err := NewSetBudgetUseCase(s, nil).Execute(context.Background(), SetBudgetInput{Amount: decimal.Zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Status.DailyBudget.IsZero() {
		t.Errorf("expected budget 0, got %s", out.Status.DailyBudget)
	}
}

func TestGetStatus(t *testing.T) {
	s := store.NewListStore(noopSnapshotRepository{})
	s.Add(entity.ItemDraft{Name: "Milk", Price: money("2")})
	s.Add(entity.ItemDraft{Name: "Bread", Price: money("3")})

	t.Run("over budget when spending passes the limit", func(t *testing.T) {
		s.SetBudget(money("4"))
		status, err := NewGetStatusUseCase(s).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !status.TotalSpent.Equal(money("5")) {
			t.Errorf("expected total spent 5, got %s", status.TotalSpent)
		}
		if !status.Remaining.Equal(money("-1")) {
			t.Errorf("expected remaining -1, got %s", status.Remaining)
		}
		if !status.OverBudget {
			t.Error("expected over-budget flag")
		}
		if !status.PercentUsed.Equal(money("125")) {
			t.Errorf("expected 125 percent used, got %s", status.PercentUsed)
		}
	})

	t.Run("zero budget is never over budget", func(t *testing.T) {
		s.SetBudget(decimal.Zero)
		status, err := NewGetStatusUseCase(s).Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.OverBudget {
			t.Error("expected no over-budget flag without a budget")
		}
		if !status.PercentUsed.IsZero() || !status.Remaining.IsZero() {
			t.Errorf("expected zeroed progress without a budget, got percent=%s remaining=%s",
				status.PercentUsed, status.Remaining)
		}
	})
}

func TestRemoveBudgetResetsToUnset(t *testing.T) {
	s := store.NewListStore(noopSnapshotRepository{})
	s.SetBudget(money("40"))

	status, err := NewRemoveBudgetUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !status.DailyBudget.IsZero() {
		t.Errorf("expected budget cleared, got %s", status.DailyBudget)
	}
}
