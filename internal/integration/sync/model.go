// Package sync mirrors the list state into a relational database so other
// tools can query it with SQL. The mirror is strictly downstream: nothing is
// ever read back from it into the list.
package sync

import "time"

// MirroredItem is the relational row for one shopping item.
type MirroredItem struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"not null"`
	Category  string `gorm:"not null;index"`
	Quantity  int    `gorm:"not null"`
	Unit      string `gorm:"not null"`
	Completed bool   `gorm:"not null"`
	Priority  string `gorm:"not null"`
	Notes     string
	// Price is the decimal string form; empty means the item is unpriced.
	Price     string
	DateAdded time.Time `gorm:"not null;index"`
}

// TableName overrides the GORM table name.
func (MirroredItem) TableName() string {
	return "mirrored_items"
}

// MirrorState is the single-row table recording what the mirror holds.
type MirrorState struct {
	ID          uint   `gorm:"primaryKey"`
	Revision    uint64 `gorm:"not null"`
	DailyBudget string `gorm:"not null"`
	MirroredAt  time.Time
}

// TableName overrides the GORM table name.
func (MirrorState) TableName() string {
	return "mirror_state"
}
