package models

import "time"

// StorageRecord is one entry in the key/value store: a namespaced key holding
// a JSON-encoded value. Sessions, carts and receipts all live in this table,
// mirroring the browser local-storage schema the data originally came from.
type StorageRecord struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time
}
