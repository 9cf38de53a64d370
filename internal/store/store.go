// Package store is the Record Store: each collection is kept as one JSON
// array under its name, and every write replaces the whole collection.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"financehub/internal/models"
)

// Backend reads and writes serialized collections.
type Backend interface {
	// Get returns the stored payload; found is false when the collection
	// has never been written.
	Get(ctx context.Context, name models.CollectionName) (payload []byte, found bool, err error)
	// Put replaces the stored payload.
	Put(ctx context.Context, name models.CollectionName, payload []byte) error
}

// Store is a Backend on top of the collections table.
type Store struct {
	db *gorm.DB
}

// New creates a Store using db.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get implements Backend.
func (s *Store) Get(ctx context.Context, name models.CollectionName) ([]byte, bool, error) {
	var rec models.CollectionRecord
	err := s.db.WithContext(ctx).Where("name = ?", name).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection %s: %w", name, err)
	}
	return []byte(rec.Payload), true, nil
}

// Put implements Backend. The row is created on first write.
func (s *Store) Put(ctx context.Context, name models.CollectionName, payload []byte) error {
	rec := models.CollectionRecord{Name: name, Payload: string(payload), UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save collection %s: %w", name, err)
	}
	return nil
}

// LoadCollection decodes a collection. An absent collection is an empty
// list with found set to false.
func LoadCollection[T any](ctx context.Context, b Backend, name models.CollectionName) ([]T, bool, error) {
	payload, found, err := b.Get(ctx, name)
	if err != nil {
		return nil, false, err
	}
	items := []T{}
	if !found {
		return items, false, nil
	}
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, true, fmt.Errorf("decode collection %s: %w", name, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// SaveCollection encodes and stores a whole collection.
func SaveCollection[T any](ctx context.Context, b Backend, name models.CollectionName, items []T) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	return b.Put(ctx, name, payload)
}
