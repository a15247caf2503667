package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned by point reads against an absent document.
var ErrNotFound = errors.New("document not found")

// document is the single backing table for every collection in the store.
// A collection is addressed by its slash-joined path ("rooms",
// "rooms/Oak/days", "rooms/Oak/days/2024-05-01/bookings"); a document by
// (path, key). Deleting a document does not touch rows under its
// sub-collection paths.
type document struct {
	Path      string    `gorm:"column:path;primaryKey"`
	Key       string    `gorm:"column:key;primaryKey"`
	Data      []byte    `gorm:"column:data"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (document) TableName() string { return "documents" }

// Store provides hierarchical document collections over a relational backend.
// Point reads are primary-key lookups; List is a path-equality scan.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}
	return &Store{db: db}, nil
}

// Collection addresses a top-level collection.
func (s *Store) Collection(name string) Collection {
	return Collection{store: s, path: name}
}

type Collection struct {
	store *Store
	path  string
}

func (c Collection) Path() string { return c.path }

// Doc addresses a document by caller-chosen key.
func (c Collection) Doc(key string) Doc {
	return Doc{store: c.store, path: c.path, key: key}
}

// Add writes a document under a freshly generated opaque key and returns it.
func (c Collection) Add(ctx context.Context, fields any) (string, error) {
	key := uuid.NewString()
	if err := c.Doc(key).Set(ctx, fields); err != nil {
		return "", err
	}
	return key, nil
}

// List returns snapshots of every document in the collection. Order is not
// part of the contract.
func (c Collection) List(ctx context.Context) ([]Snapshot, error) {
	var rows []document
	tx := c.store.db.WithContext(ctx).Where("path = ?", c.path).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, Snapshot{Key: row.Key, data: row.Data})
	}
	return out, nil
}

type Doc struct {
	store *Store
	path  string
	key   string
}

func (d Doc) Key() string { return d.key }

// Collection addresses a sub-collection nested under this document.
func (d Doc) Collection(name string) Collection {
	return Collection{
		store: d.store,
		path:  strings.Join([]string{d.path, d.key, name}, "/"),
	}
}

// Set marshals fields and writes the document, overwriting any existing one
// under the same key (last writer wins).
func (d Doc) Set(ctx context.Context, fields any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	row := document{Path: d.path, Key: d.key, Data: data}
	return d.store.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}

// Get unmarshals the document into out, or reports ErrNotFound.
func (d Doc) Get(ctx context.Context, out any) error {
	var row document
	tx := d.store.db.WithContext(ctx).
		Where("path = ? AND key = ?", d.path, d.key).
		First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return tx.Error
	}
	return json.Unmarshal(row.Data, out)
}

// Exists reports whether the document is present without decoding it.
func (d Doc) Exists(ctx context.Context) (bool, error) {
	var n int64
	tx := d.store.db.WithContext(ctx).
		Model(&document{}).
		Where("path = ? AND key = ?", d.path, d.key).
		Count(&n)
	if tx.Error != nil {
		return false, tx.Error
	}
	return n > 0, nil
}

// Update merges the given fields into the stored document. The read-merge-
// write runs in a transaction so concurrent updates to the same document do
// not drop each other's fields.
func (d Doc) Update(ctx context.Context, fields map[string]any) error {
	return d.store.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row document
		if err := tx.Where("path = ? AND key = ?", d.path, d.key).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		merged := map[string]any{}
		if len(row.Data) > 0 {
			if err := json.Unmarshal(row.Data, &merged); err != nil {
				return err
			}
		}
		for k, v := range fields {
			merged[k] = v
		}
		data, err := json.Marshal(merged)
		if err != nil {
			return err
		}
		return tx.Model(&document{}).
			Where("path = ? AND key = ?", d.path, d.key).
			Update("data", data).Error
	})
}

// Delete removes the document. Deleting an absent document is not an error.
// Documents in sub-collections under this document are left in place.
func (d Doc) Delete(ctx context.Context) error {
	return d.store.db.WithContext(ctx).
		Where("path = ? AND key = ?", d.path, d.key).
		Delete(&document{}).Error
}

// Snapshot is one listed document: its storage key plus raw fields.
type Snapshot struct {
	Key  string
	data []byte
}

func (s Snapshot) Decode(out any) error {
	return json.Unmarshal(s.data, out)
}
