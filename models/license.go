package models

import "time"

type LicenseStatus string

const (
	LicenseStatusUnused  LicenseStatus = "unused"
	LicenseStatusActive  LicenseStatus = "active"
	LicenseStatusExpired LicenseStatus = "expired"
	LicenseStatusRevoked LicenseStatus = "revoked"
)

// License grants its activator a role (client or developer). One key,
// one activation.
type License struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	LicenseKey  string        `gorm:"size:128;not null;unique" json:"license_key"`
	Role        UserRole      `gorm:"type:varchar(16);not null" json:"role"`
	Status      LicenseStatus `gorm:"type:varchar(16);not null;default:'unused'" json:"status"`
	UserID      *uint         `json:"user_id"`
	ActivatedAt *time.Time    `json:"activated_at"`
	ExpiresAt   *time.Time    `json:"expires_at"`
	User        *User         `gorm:"foreignKey:UserID" json:"-"`
}
