package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/application/store"
	"github.com/krigzlist/backend/internal/domain/entity"
	domainerror "github.com/krigzlist/backend/internal/domain/error"
)

// now is a fixed Wednesday so bucket boundaries are deterministic.
var testNow = time.Date(2025, time.June, 18, 15, 30, 0, 0, time.UTC)

type seededSnapshotRepository struct {
	items  []entity.Item
	budget decimal.Decimal
}

func (r seededSnapshotRepository) Load(context.Context) ([]entity.Item, decimal.Decimal) {
	return r.items, r.budget
}

func (r seededSnapshotRepository) Save(context.Context, []entity.Item, decimal.Decimal) error {
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func pricedItem(name, category, price string, dateAdded time.Time) entity.Item {
	return entity.Item{
		ID:        uuid.New(),
		Name:      name,
		Category:  category,
		Quantity:  1,
		Unit:      entity.DefaultUnit,
		Priority:  entity.PriorityMedium,
		Price:     money(price),
		DateAdded: dateAdded,
	}
}

func seededStore(budget string, items ...entity.Item) *store.ListStore {
	s := store.NewListStore(seededSnapshotRepository{items: items, budget: money(budget)})
	s.Hydrate(context.Background())
	return s
}

func TestParseTimeframe(t *testing.T) {
	for _, valid := range []string{"daily", "weekly", "monthly"} {
		if _, err := ParseTimeframe(valid); err != nil {
			t.Errorf("expected %q to parse, got %v", valid, err)
		}
	}

	_, err := ParseTimeframe("yearly")
	var reportErr *domainerror.ReportError
	if !errors.As(err, &reportErr) || reportErr.Code != domainerror.ErrCodeInvalidTimeframe {
		t.Fatalf("expected invalid-timeframe error, got %v", err)
	}
}

func TestDailyTrendsHasSevenDayBuckets(t *testing.T) {
	s := seededStore("4",
		pricedItem("Milk", "Dairy & Eggs", "2.50", testNow),
		pricedItem("Bread", "Bakery", "3.00", testNow.AddDate(0, 0, -2)),
		pricedItem("Old", "Bakery", "9.00", testNow.AddDate(0, 0, -10)),
	)
	uc := NewGetSpendingTrendsUseCase(s, func() time.Time { return testNow })

	out, err := uc.Execute(context.Background(), GetSpendingTrendsInput{Timeframe: TimeframeDaily})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Buckets) != 7 {
		t.Fatalf("expected 7 daily buckets, got %d", len(out.Buckets))
	}
	if out.Buckets[0].Label != "Thu" || out.Buckets[6].Label != "Wed" {
		t.Errorf("expected buckets Thu..Wed, got %s..%s", out.Buckets[0].Label, out.Buckets[6].Label)
	}
	if !out.Buckets[6].Value.Equal(money("2.50")) {
		t.Errorf("expected today's bucket to hold 2.50, got %s", out.Buckets[6].Value)
	}
	if !out.Buckets[4].Value.Equal(money("3.00")) {
		t.Errorf("expected Monday's bucket to hold 3.00, got %s", out.Buckets[4].Value)
	}
	for _, b := range out.Buckets {
		if !b.Budget.Equal(money("4")) {
			t.Errorf("expected daily budget line 4 on every bucket, got %s", b.Budget)
		}
	}
	// The item from ten days ago falls outside every bucket.
	total := decimal.Zero
	for _, b := range out.Buckets {
		total = total.Add(b.Value)
	}
	if !total.Equal(money("5.50")) {
		t.Errorf("expected bucketed total 5.50, got %s", total)
	}
}

func TestWeeklyTrendsHasFourMondayAlignedWeeks(t *testing.T) {
	s := seededStore("4",
		pricedItem("Milk", "Dairy & Eggs", "2.00", testNow),
		pricedItem("Bread", "Bakery", "5.00", testNow.AddDate(0, 0, -7)),
	)
	uc := NewGetSpendingTrendsUseCase(s, func() time.Time { return testNow })

	out, err := uc.Execute(context.Background(), GetSpendingTrendsInput{Timeframe: TimeframeWeekly})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Buckets) != 4 {
		t.Fatalf("expected 4 weekly buckets, got %d", len(out.Buckets))
	}

	// The current week starts on Monday June 16, 2025.
	last := out.Buckets[3]
	if last.Label != "Week 4" {
		t.Errorf("expected last bucket Week 4, got %s", last.Label)
	}
	if !last.Start.Equal(time.Date(2025, time.June, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected current week to start Monday June 16, got %s", last.Start)
	}
	if !last.Value.Equal(money("2.00")) {
		t.Errorf("expected current week value 2.00, got %s", last.Value)
	}
	if !out.Buckets[2].Value.Equal(money("5.00")) {
		t.Errorf("expected previous week value 5.00, got %s", out.Buckets[2].Value)
	}
	for _, b := range out.Buckets {
		if !b.Budget.Equal(money("28")) {
			t.Errorf("expected weekly budget line 28 (4 a day), got %s", b.Budget)
		}
	}
}

func TestMonthlyTrendsAlignsWindowsAndScopesToMonth(t *testing.T) {
	// June 1, 2025 is a Sunday, so the first window starts Monday May 26.
	s := seededStore("0",
		pricedItem("Sunday first", "Bakery", "1.00", time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)),
		pricedItem("Mid month", "Bakery", "2.00", time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)),
		pricedItem("May spillover", "Bakery", "4.00", time.Date(2025, time.May, 30, 10, 0, 0, 0, time.UTC)),
		pricedItem("Past the cap", "Bakery", "8.00", time.Date(2025, time.June, 25, 10, 0, 0, 0, time.UTC)),
	)
	uc := NewGetSpendingTrendsUseCase(s, func() time.Time { return testNow })

	out, err := uc.Execute(context.Background(), GetSpendingTrendsInput{Timeframe: TimeframeMonthly})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Buckets) != 4 {
		t.Fatalf("expected 4 monthly windows, got %d", len(out.Buckets))
	}
	if !out.Buckets[0].Start.Equal(time.Date(2025, time.May, 26, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first window to start Monday May 26, got %s", out.Buckets[0].Start)
	}
	// June 1 lands in the first window; the May 30 item shares that window
	// but belongs to the previous month and is excluded.
	if !out.Buckets[0].Value.Equal(money("1.00")) {
		t.Errorf("expected first window value 1.00, got %s", out.Buckets[0].Value)
	}
	if !out.Buckets[2].Value.Equal(money("2.00")) {
		t.Errorf("expected third window value 2.00, got %s", out.Buckets[2].Value)
	}
	// June 25 falls past the fourth window and is dropped by the cap.
	total := decimal.Zero
	for _, b := range out.Buckets {
		total = total.Add(b.Value)
	}
	if !total.Equal(money("3.00")) {
		t.Errorf("expected windowed total 3.00, got %s", total)
	}
}

func TestMaxAxisValue(t *testing.T) {
	t.Run("scales the peak with headroom", func(t *testing.T) {
		buckets := []Bucket{
			{Value: money("10"), Budget: money("4")},
			{Value: money("2"), Budget: money("4")},
		}
		if got := MaxAxisValue(buckets); !got.Equal(money("12")) {
			t.Errorf("expected axis max 12, got %s", got)
		}
	})

	t.Run("budget line can set the peak", func(t *testing.T) {
		buckets := []Bucket{{Value: money("5"), Budget: money("20")}}
		if got := MaxAxisValue(buckets); !got.Equal(money("24")) {
			t.Errorf("expected axis max 24, got %s", got)
		}
	})

	t.Run("empty chart falls back to the default ceiling", func(t *testing.T) {
		buckets := []Bucket{{Value: decimal.Zero, Budget: decimal.Zero}}
		if got := MaxAxisValue(buckets); !got.Equal(money("100")) {
			t.Errorf("expected axis max 100, got %s", got)
		}
	})
}

func TestCategoryBreakdown(t *testing.T) {
	s := seededStore("0",
		pricedItem("Milk", "Dairy & Eggs", "2.00", testNow),
		pricedItem("Cheese", "Dairy & Eggs", "4.00", testNow),
		pricedItem("Bread", "Bakery", "6.00", testNow),
		pricedItem("Mystery", "Discontinued Aisle", "2.00", testNow),
		entity.Item{ID: uuid.New(), Name: "Napkins", Category: "Household", Quantity: 1,
			Unit: entity.DefaultUnit, Priority: entity.PriorityMedium, DateAdded: testNow},
	)

	out, err := NewGetCategoryBreakdownUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.TotalSpent.Equal(money("14.00")) {
		t.Errorf("expected total spent 14.00, got %s", out.TotalSpent)
	}
	if len(out.Entries) != 3 {
		t.Fatalf("expected 3 entries (unpriced Household excluded), got %d", len(out.Entries))
	}

	first := out.Entries[0]
	if first.CategoryName != "Bakery" && first.CategoryName != "Dairy & Eggs" {
		t.Fatalf("unexpected leading entry %s", first.CategoryName)
	}
	// Bakery and Dairy & Eggs both total 6.00; the tie breaks by name.
	if out.Entries[0].CategoryName != "Bakery" || out.Entries[1].CategoryName != "Dairy & Eggs" {
		t.Errorf("expected [Bakery, Dairy & Eggs] at the top, got [%s, %s]",
			out.Entries[0].CategoryName, out.Entries[1].CategoryName)
	}
	if !out.Entries[0].Percentage.Equal(money("42.9")) {
		t.Errorf("expected 42.9 percent for Bakery, got %s", out.Entries[0].Percentage)
	}
	if out.Entries[1].ItemCount != 2 {
		t.Errorf("expected 2 dairy items, got %d", out.Entries[1].ItemCount)
	}

	last := out.Entries[2]
	if last.CategoryName != "Discontinued Aisle" {
		t.Fatalf("expected the unknown category last, got %s", last.CategoryName)
	}
	if last.Color != entity.DefaultBreakdownColor {
		t.Errorf("expected neutral fallback color, got %s", last.Color)
	}
}

func TestSummary(t *testing.T) {
	completedMilk := pricedItem("Milk", "Dairy & Eggs", "2.00", testNow)
	completedMilk.Completed = true

	s := seededStore("5",
		completedMilk,
		pricedItem("Bread", "Bakery", "4.00", testNow),
		entity.Item{ID: uuid.New(), Name: "Napkins", Category: "Household", Quantity: 1,
			Unit: entity.DefaultUnit, Priority: entity.PriorityMedium, DateAdded: testNow},
	)

	out, err := NewGetSummaryUseCase(s).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.TotalItems != 3 || out.CompletedItems != 1 || out.PricedItems != 2 {
		t.Errorf("unexpected counts: total=%d completed=%d priced=%d",
			out.TotalItems, out.CompletedItems, out.PricedItems)
	}
	if !out.TotalSpent.Equal(money("6.00")) {
		t.Errorf("expected total spent 6.00, got %s", out.TotalSpent)
	}
	if !out.AveragePrice.Equal(money("3.00")) {
		t.Errorf("expected average price 3.00 over priced items, got %s", out.AveragePrice)
	}
	if !out.OverBudget {
		t.Error("expected over-budget flag with 6.00 spent against a 5 budget")
	}
	if out.TopCategory != "Bakery" {
		t.Errorf("expected top category Bakery, got %s", out.TopCategory)
	}
}
