package models

import "time"

type BlockType string

const (
	BlockTypeGeneral     BlockType = "general"
	BlockTypeFunction    BlockType = "function"
	BlockTypeNonFunction BlockType = "nonfunction"
)

type BlockPriority string

const (
	BlockPriorityUrgent BlockPriority = "urgent"
	BlockPriorityNormal BlockPriority = "normal"
)

// Block is a discussion thread attached to a form, optionally scoped
// to a single line item via TargetID. LastMessageAt and ReminderSent
// drive the reminder scheduler.
type Block struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	FormID        uint          `gorm:"not null;index" json:"form_id"`
	Type          BlockType     `gorm:"type:varchar(16);not null" json:"type"`
	TargetID      *uint         `json:"target_id"`
	Priority      BlockPriority `gorm:"type:varchar(16);not null;default:'normal'" json:"status"`
	LastMessageAt *time.Time    `json:"last_message_at"`
	ReminderSent  bool          `gorm:"not null;default:false" json:"-"`
	CreatedAt     time.Time     `json:"created_at"`

	Messages []Message `gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE" json:"-"`
}
