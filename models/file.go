package models

import "time"

// File is an attachment on a message. StoragePath is the object key in
// the MinIO bucket.
type File struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MessageID   uint      `gorm:"not null;index" json:"message_id"`
	FileName    string    `gorm:"size:128;not null" json:"file_name"`
	FileType    string    `gorm:"size:32;not null" json:"file_type"`
	FileSize    int64     `gorm:"not null" json:"file_size"`
	StoragePath string    `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
}
