package models

import "time"

type Message struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BlockID     uint      `gorm:"not null;index" json:"block_id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	TextContent string    `gorm:"type:text;not null" json:"text_content"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Files []File `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE" json:"files,omitempty"`
}
