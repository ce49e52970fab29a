package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/domain/entity"
)

const (
	testItemsKey  = "shoppingItems"
	testBudgetKey = "dailyBudget"
)

func newTestRepository(t *testing.T) (*RedisSnapshotRepository, *miniredis.Miniredis) {
	t.Helper()
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisSnapshotRepository(client, testItemsKey, testBudgetKey), mini
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	original := *entity.NewItem(entity.ItemDraft{
		Name:     "Milk",
		Category: "Dairy & Eggs",
		Quantity: 2,
		Unit:     "l",
		Priority: entity.PriorityHigh,
		Notes:    "lactose free",
		Price:    decimal.RequireFromString("2.50"),
	})
	budget := decimal.RequireFromString("40")

	if err := repo.Save(ctx, []entity.Item{original}, budget); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	items, loadedBudget := repo.Load(ctx)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.ID != original.ID {
		t.Errorf("id changed across the round trip: %s -> %s", original.ID, got.ID)
	}
	if got.Name != "Milk" || got.Category != "Dairy & Eggs" || got.Notes != "lactose free" {
		t.Errorf("unexpected fields after round trip: %+v", got)
	}
	if got.Quantity != 2 || got.Unit != "l" || got.Priority != entity.PriorityHigh {
		t.Errorf("unexpected quantity/unit/priority after round trip: %+v", got)
	}
	if !got.Price.Equal(original.Price) {
		t.Errorf("price changed across the round trip: %s -> %s", original.Price, got.Price)
	}
	if !got.DateAdded.Equal(original.DateAdded) {
		t.Errorf("date changed across the round trip: %s -> %s", original.DateAdded, got.DateAdded)
	}
	if !loadedBudget.Equal(budget) {
		t.Errorf("budget changed across the round trip: %s -> %s", budget, loadedBudget)
	}
}

func TestLoadFromEmptyStoreStartsEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	items, budget := repo.Load(context.Background())
	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if !budget.IsZero() {
		t.Errorf("expected zero budget, got %s", budget)
	}
}

func TestLoadDegradesOnMalformedData(t *testing.T) {
	tests := []struct {
		name   string
		items  string
		budget string
	}{
		{name: "items not json", items: "{{{", budget: "40"},
		{name: "budget not a number", items: "[]", budget: "a lot"},
		{name: "negative budget", items: "[]", budget: "-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mini := newTestRepository(t)
			mini.Set(testItemsKey, tt.items)
			mini.Set(testBudgetKey, tt.budget)

			items, budget := repo.Load(context.Background())
			if tt.items == "{{{" && len(items) != 0 {
				t.Errorf("expected malformed items to load empty, got %d", len(items))
			}
			if tt.budget != "40" && !budget.IsZero() {
				t.Errorf("expected malformed budget to load as zero, got %s", budget)
			}
		})
	}
}

func TestLoadRepairsBadItemFields(t *testing.T) {
	repo, mini := newTestRepository(t)
	mini.Set(testItemsKey, `[{
		"id": "not-a-uuid",
		"name": "Mystery",
		"category": "Pantry",
		"quantity": 0,
		"unit": "",
		"completed": false,
		"priority": "urgent",
		"price": "-3",
		"dateAdded": "yesterday"
	}]`)

	items, _ := repo.Load(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected the damaged item to survive, got %d items", len(items))
	}
	got := items[0]
	if got.ID == uuid.Nil {
		t.Error("expected a fresh id for the unparsable one")
	}
	if got.Quantity != 1 || got.Unit != entity.DefaultUnit {
		t.Errorf("expected quantity/unit defaults, got %d %q", got.Quantity, got.Unit)
	}
	if got.Priority != entity.PriorityMedium {
		t.Errorf("expected priority fallback, got %s", got.Priority)
	}
	if !got.Price.IsZero() {
		t.Errorf("expected negative price to reset to unpriced, got %s", got.Price)
	}
	if time.Since(got.DateAdded) > time.Minute {
		t.Errorf("expected an unparsable date to reset to now, got %s", got.DateAdded)
	}
}
