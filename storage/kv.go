package storage

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/friends-cafe/cafe-api/models"
)

// KV reads and writes JSON values in the storage-record table, one row per
// key with the whole value replaced on write. Failures are logged and become
// no-ops returning safe defaults; nothing here is fatal.
type KV struct {
	db *gorm.DB
}

func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// Get unmarshals the value under key into out. Returns false when the key is
// absent or the stored value is unreadable.
func (kv *KV) Get(key string, out any) bool {
	var rec models.StorageRecord
	if err := kv.db.First(&rec, "key = ?", key).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("❌ Failed to read %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(rec.Value), out); err != nil {
		log.Printf("❌ Corrupt value under %s: %v", key, err)
		return false
	}
	return true
}

// Put serializes v and upserts it under key.
func (kv *KV) Put(key string, v any) bool {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("❌ Failed to encode %s: %v", key, err)
		return false
	}
	rec := models.StorageRecord{Key: key, Value: string(data)}
	err = kv.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		log.Printf("❌ Failed to write %s: %v", key, err)
		return false
	}
	return true
}

// Delete removes key. Deleting a missing key is fine.
func (kv *KV) Delete(key string) {
	if err := kv.db.Delete(&models.StorageRecord{}, "key = ?", key).Error; err != nil {
		log.Printf("❌ Failed to delete %s: %v", key, err)
	}
}

// Has reports whether key exists, without decoding its value.
func (kv *KV) Has(key string) bool {
	var n int64
	if err := kv.db.Model(&models.StorageRecord{}).Where("key = ?", key).Count(&n).Error; err != nil {
		log.Printf("❌ Failed to check %s: %v", key, err)
		return false
	}
	return n > 0
}

// Keys lists all stored keys with the given prefix. The admin session
// inspection endpoint uses this.
func (kv *KV) Keys(prefix string) []string {
	var keys []string
	err := kv.db.Model(&models.StorageRecord{}).
		Where("key LIKE ?", prefix+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		log.Printf("❌ Failed to list keys under %s: %v", prefix, err)
		return nil
	}
	return keys
}
