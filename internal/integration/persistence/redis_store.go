// Package persistence implements the snapshot repository over Redis.
//
// The whole list state lives under two string keys: one holding the item
// collection as a JSON array and one holding the daily budget as a plain
// decimal string. The two keys are written independently; there is no
// transaction across them.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/krigzlist/backend/internal/domain/entity"
	"github.com/krigzlist/backend/internal/integration/persistence/model"
)

// RedisSnapshotRepository stores the list state in Redis.
type RedisSnapshotRepository struct {
	client    *redis.Client
	itemsKey  string
	budgetKey string
}

// NewRedisSnapshotRepository creates a new RedisSnapshotRepository instance.
func NewRedisSnapshotRepository(client *redis.Client, itemsKey, budgetKey string) *RedisSnapshotRepository {
	return &RedisSnapshotRepository{
		client:    client,
		itemsKey:  itemsKey,
		budgetKey: budgetKey,
	}
}

// Load reads both keys and converts them back to domain state. Absent keys,
// unreachable Redis and malformed payloads all degrade to an empty list and
// a zero budget; the condition is logged but never fails startup.
func (r *RedisSnapshotRepository) Load(ctx context.Context) ([]entity.Item, decimal.Decimal) {
	return r.loadItems(ctx), r.loadBudget(ctx)
}

func (r *RedisSnapshotRepository) loadItems(ctx context.Context) []entity.Item {
	raw, err := r.client.Get(ctx, r.itemsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		slog.Warn("Failed to load items from storage, starting empty",
			"key", r.itemsKey, "error", err)
		return nil
	}

	var docs []model.ItemDocument
	if err := json.Unmarshal([]byte(raw), &docs); err != nil {
		slog.Warn("Stored items are not valid JSON, starting empty",
			"key", r.itemsKey, "error", err)
		return nil
	}

	items := make([]entity.Item, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.ToEntity())
	}
	return items
}

func (r *RedisSnapshotRepository) loadBudget(ctx context.Context) decimal.Decimal {
	raw, err := r.client.Get(ctx, r.budgetKey).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero
	}
	if err != nil {
		slog.Warn("Failed to load budget from storage, treating as unset",
			"key", r.budgetKey, "error", err)
		return decimal.Zero
	}

	budget, err := decimal.NewFromString(raw)
	if err != nil || budget.IsNegative() {
		slog.Warn("Stored budget is not a valid amount, treating as unset",
			"key", r.budgetKey, "value", raw)
		return decimal.Zero
	}
	return budget
}

// Save writes both keys concurrently. Either write can fail on its own; the
// first error is returned for logging and the other write still completes.
func (r *RedisSnapshotRepository) Save(ctx context.Context, items []entity.Item, budget decimal.Decimal) error {
	docs := make([]model.ItemDocument, 0, len(items))
	for _, it := range items {
		docs = append(docs, model.FromEntity(it))
	}
	payload, err := json.Marshal(docs)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.client.Set(gctx, r.itemsKey, payload, 0).Err()
	})
	g.Go(func() error {
		return r.client.Set(gctx, r.budgetKey, budget.String(), 0).Err()
	})
	return g.Wait()
}
