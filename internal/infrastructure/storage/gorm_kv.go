package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rodamoinho/recibos-api/internal/domain/repository"
)

// KVEntry is the row backing one persisted key.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Value     []byte    `gorm:"type:bytes"`
	UpdatedAt time.Time
}

// TableName returns the table name for persisted entries.
func (KVEntry) TableName() string {
	return "kv_entries"
}

type gormKV struct {
	db *gorm.DB
}

// NewGormKV creates the durable KVStore backed by the database.
func NewGormKV(db *gorm.DB) repository.KVStore {
	return &gormKV{db: db}
}

func (s *gormKV) Get(ctx context.Context, key string) ([]byte, error) {
	var entry KVEntry
	err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (s *gormKV) Set(ctx context.Context, key string, value []byte) error {
	entry := KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *gormKV) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&KVEntry{}, "key = ?", key).Error
}
