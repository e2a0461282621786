package models

import (
	"time"

	"gorm.io/datatypes"
)

// Database model for the key-value entries.
// Durable side of the store, Redis only mirrors it when the layered driver is used.
type KVEntry struct {
	Key       string         `gorm:"column:key;primaryKey;autoIncrement:false"`
	Value     datatypes.JSON `gorm:"column:value;type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;not null"`
}

// TableName pins the table created by the migrations.
func (KVEntry) TableName() string {
	return "kv_entries"
}
