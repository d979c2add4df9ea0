package models

import "time"

type NonFunctionLevel string

const (
	NonFunctionLevelBasic    NonFunctionLevel = "basic"
	NonFunctionLevelStandard NonFunctionLevel = "standard"
	NonFunctionLevelStrict   NonFunctionLevel = "strict"
)

// NonFunction is a non-functional requirement line item of a form.
type NonFunction struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	FormID      uint             `gorm:"not null;index" json:"form_id"`
	Name        string           `gorm:"size:128;not null" json:"name"`
	Level       NonFunctionLevel `gorm:"type:varchar(16);not null" json:"level"`
	Description string           `gorm:"type:text;not null" json:"description"`
	Status      FormStatus       `gorm:"type:varchar(16);not null;default:'preview'" json:"status"`
	Changed     bool             `gorm:"not null;default:false" json:"is_changed"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
