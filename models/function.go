package models

import "time"

type FunctionChoice string

const (
	FunctionChoiceLightweight FunctionChoice = "lightweight"
	FunctionChoiceCommercial  FunctionChoice = "commercial"
	FunctionChoiceEnterprise  FunctionChoice = "enterprise"
)

// Function is a functional requirement line item of a form.
type Function struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	FormID      uint           `gorm:"not null;index" json:"form_id"`
	Name        string         `gorm:"size:128;not null" json:"name"`
	Choice      FunctionChoice `gorm:"type:varchar(16);not null" json:"choice"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Status      FormStatus     `gorm:"type:varchar(16);not null;default:'preview'" json:"status"`
	Changed     bool           `gorm:"not null;default:false" json:"is_changed"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
