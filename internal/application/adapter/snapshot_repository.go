// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/krigzlist/backend/internal/domain/entity"
)

// SnapshotRepository defines the persistence contract for the list state.
// The backing store is a string-keyed key-value store holding two entries:
// the serialized item collection and the serialized daily budget.
type SnapshotRepository interface {
	// Load retrieves the persisted item collection and daily budget.
	// It never returns an error: absent or malformed data degrades to an
	// empty collection and a zero budget so a corrupt store can never
	// prevent startup.
	Load(ctx context.Context) ([]entity.Item, decimal.Decimal)

	// Save persists the item collection and the daily budget as two
	// independent best-effort writes. A partial failure is possible and is
	// not rolled back; the returned error is informational only and the
	// in-memory state stays authoritative for the session.
	Save(ctx context.Context, items []entity.Item, budget decimal.Decimal) error
}
