package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog records one domain action with JSON snapshots of the state
// before and after. Writes are best-effort and must never interrupt
// the action being audited.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	EntityType string         `gorm:"size:32;not null;index" json:"entity_type"`
	EntityID   uint           `gorm:"not null;index" json:"entity_id"`
	Action     string         `gorm:"size:32;not null" json:"action"`
	UserID     *uint          `json:"user_id"`
	OldData    datatypes.JSON `json:"old_data"`
	NewData    datatypes.JSON `json:"new_data"`
	CreatedAt  time.Time      `json:"created_at"`
}
