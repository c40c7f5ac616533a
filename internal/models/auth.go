package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the provider-side identity holding credentials. It is
// separate from the User profile row: registration creates the
// identity first and the profile second.
type AuthUser struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primarykey" json:"id"`
	Email               string     `gorm:"size:255;not null;uniqueIndex:idx_auth_users_email" json:"email"`
	PasswordHash        string     `gorm:"size:255;not null" json:"-"`
	Username            string     `gorm:"size:64;not null" json:"username"`
	IsVerified          bool       `gorm:"default:false" json:"is_verified"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
	LastLogin           *time.Time `json:"last_login,omitempty"`
}

// TableName specifies the table name
func (AuthUser) TableName() string {
	return "auth_users"
}

// UserSession is a server-side session record backing an issued token.
// Only the SHA-256 hash of the token is stored.
type UserSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_user_sessions_user_id" json:"user_id"`
	TokenHash string    `gorm:"size:64;not null;uniqueIndex:idx_user_sessions_token_hash" json:"-"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	UserAgent string    `gorm:"size:255" json:"user_agent,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `gorm:"index:idx_user_sessions_expires_at" json:"expires_at"`
}

// TableName specifies the table name
func (UserSession) TableName() string {
	return "user_sessions"
}
