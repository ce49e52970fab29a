package sync

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/krigzlist/backend/internal/domain/entity"
)

// Mirror writes list snapshots into the relational database.
type Mirror struct {
	db *gorm.DB
}

// NewMirror creates a new Mirror instance and prepares its tables.
func NewMirror(db *gorm.DB) (*Mirror, error) {
	if err := db.AutoMigrate(&MirroredItem{}, &MirrorState{}); err != nil {
		return nil, fmt.Errorf("failed to migrate mirror tables: %w", err)
	}
	return &Mirror{db: db}, nil
}

// ReplaceSnapshot overwrites the mirrored rows with the given snapshot in a
// single transaction, so readers never observe a half-written list.
func (m *Mirror) ReplaceSnapshot(items []entity.Item, budget decimal.Decimal, revision uint64) error {
	rows := make([]MirroredItem, 0, len(items))
	for _, it := range items {
		price := ""
		if !it.Price.IsZero() {
			price = it.Price.String()
		}
		rows = append(rows, MirroredItem{
			ID:        it.ID.String(),
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			Completed: it.Completed,
			Priority:  string(it.Priority),
			Notes:     it.Notes,
			Price:     price,
			DateAdded: it.DateAdded,
		})
	}

	return m.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&MirroredItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear mirrored items: %w", err)
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("failed to insert mirrored items: %w", err)
			}
		}

		state := MirrorState{
			ID:          1,
			Revision:    revision,
			DailyBudget: budget.String(),
			MirroredAt:  time.Now().UTC(),
		}
		if err := tx.Save(&state).Error; err != nil {
			return fmt.Errorf("failed to update mirror state: %w", err)
		}
		return nil
	})
}
