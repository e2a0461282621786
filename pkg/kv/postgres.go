package kv

import (
	"context"
	"encoding/json"
	"fitconsole/pkg/database/models"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostgresStore persists the entries on the kv_entries table.
type PostgresStore struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresStore creates a store over an open connection.
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db, now: time.Now}
}

// Set upserts the key.
func (ps *PostgresStore) Set(ctx context.Context, key string, value any) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	entry := &models.KVEntry{
		Key:       key,
		Value:     datatypes.JSON(data),
		UpdatedAt: ps.now(),
	}

	// Upsert the key.
	err = ps.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return fmt.Errorf("couldn't set key %s: %w", key, err)
	}

	return nil
}

// GetByPrefix returns the matching entries ordered by key.
func (ps *PostgresStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	var rows []*models.KVEntry

	err := ps.db.WithContext(ctx).
		Where(`"key" LIKE ? ESCAPE '\'`, escapeLike(prefix)+"%").
		Order(`"key"`).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("couldn't scan prefix %s: %w", prefix, err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{Key: row.Key, Value: json.RawMessage(row.Value)})
	}

	return entries, nil
}

// escapeLike escapes the LIKE wildcards so the prefix is matched literally.
func escapeLike(prefix string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(prefix)
}
