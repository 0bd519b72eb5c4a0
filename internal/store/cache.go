package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow holds one whole collection serialized as a JSON array,
// keyed by collection name. Read-modify-write: callers re-read before
// mutating; there is no row-level transactionality here.
type collectionRow struct {
	Name      string    `gorm:"primaryKey;size:64;column:name"`
	Payload   []byte    `gorm:"type:blob;column:payload"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;column:updated_at"`
}

func (collectionRow) TableName() string { return "collections" }

type Cache struct{ db *gorm.DB }

func NewCache(db *gorm.DB) (*Cache, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// ReadAll returns the cached collection, or an empty slice when the
// collection has never been written.
func (c *Cache) ReadAll(ctx context.Context, collection string) ([]json.RawMessage, error) {
	var row collectionRow
	err := c.db.WithContext(ctx).First(&row, "name = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var out []json.RawMessage
	if err := json.Unmarshal(row.Payload, &out); err != nil {
		return nil, fmt.Errorf("cache payload for %s: %w", collection, err)
	}
	return out, nil
}

// ReplaceAll overwrites the collection with the given records.
func (c *Cache) ReplaceAll(ctx context.Context, collection string, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	row := collectionRow{Name: collection, Payload: payload}
	return c.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&row).Error
}

// Apply performs a row-level op against the cached collection.
// Update and delete locate the record by its collection id field; an
// update for an id that is not cached is a no-op.
func (c *Cache) Apply(ctx context.Context, op Op, collection string, record any, id string) error {
	records, err := c.ReadAll(ctx, collection)
	if err != nil {
		return err
	}

	switch op {
	case OpCreate:
		raw, err := json.Marshal(record)
		if err != nil {
			return err
		}
		records = append(records, raw)
	case OpUpdate:
		raw, err := json.Marshal(record)
		if err != nil {
			return err
		}
		key := idKeyFor(collection)
		for i, r := range records {
			if recordID(r, key) == id {
				records[i] = raw
				break
			}
		}
	case OpDelete:
		key := idKeyFor(collection)
		kept := records[:0]
		for _, r := range records {
			if recordID(r, key) != id {
				kept = append(kept, r)
			}
		}
		records = kept
	default:
		return fmt.Errorf("unknown store op %q", op)
	}

	return c.ReplaceAll(ctx, collection, records)
}

func recordID(raw json.RawMessage, key string) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return ""
	}
	var s string
	if err := json.Unmarshal(fields[key], &s); err != nil {
		return ""
	}
	return s
}
