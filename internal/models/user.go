package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a dashboard user profile record. Credentials live in
// AuthUser; this row is the public profile written on registration.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Username   string     `gorm:"size:64;not null;uniqueIndex:idx_users_username" json:"username"`
	Email      string     `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	IsVerified bool       `gorm:"default:false" json:"is_verified"`
	CreatedAt  time.Time  `json:"created_at"`
	LastLogin  *time.Time `json:"last_login,omitempty"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}
