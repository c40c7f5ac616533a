package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserStatRecord is a periodic snapshot of a user's dashboard figures,
// written by the worker so balance history survives wallet churn.
type UserStatRecord struct {
	ID           uint            `gorm:"primarykey" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_user_stat_records_user_id" json:"user_id"`
	WalletCount  int             `json:"wallet_count"`
	ActiveBots   int             `json:"active_bots"`
	TotalBalance decimal.Decimal `gorm:"type:numeric(20,9)" json:"total_balance"`
	RecordedAt   time.Time       `gorm:"index:idx_user_stat_records_recorded_at" json:"recorded_at"`
}

// TableName specifies the table name
func (UserStatRecord) TableName() string {
	return "user_stat_records"
}

// AuthEvent is an audit record of an authentication action, persisted
// by the worker from the auth event queue.
type AuthEvent struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_auth_events_user_id" json:"user_id"`
	Event     string    `gorm:"size:32;not null" json:"event"`
	Email     string    `gorm:"size:255" json:"email"`
	IPAddress string    `gorm:"size:45" json:"ip_address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name
func (AuthEvent) TableName() string {
	return "auth_events"
}
