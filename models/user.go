package models

import "time"

type UserRole string

const (
	UserRoleClient    UserRole = "client"
	UserRoleDeveloper UserRole = "developer"
	UserRoleAdmin     UserRole = "admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:128;not null;unique" json:"email"`
	PasswordHash string    `gorm:"size:256;not null" json:"-"`
	DisplayName  string    `gorm:"size:32;not null" json:"display_name"`
	Role         *UserRole `gorm:"type:varchar(16)" json:"role"`
	IsActive     bool      `gorm:"not null;default:false" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds an activated role.
func (u *User) HasRole(role UserRole) bool {
	return u.Role != nil && *u.Role == role
}
