package entity

import (
	"time"
)

// IdempotencyKey stores a processed write request so a retried save (for
// example a double-submitted invoice) replays the original response instead
// of creating a second record.
type IdempotencyKey struct {
	ID           uint      `gorm:"primaryKey"`
	Key          string    `gorm:"uniqueIndex;size:255;not null"`
	Endpoint     string    `gorm:"size:255;not null"`
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
