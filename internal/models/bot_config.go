package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BotType tags the strategy family a bot belongs to
type BotType string

const (
	BotTypeVolume   BotType = "volume"
	BotTypeSniper   BotType = "sniper"
	BotTypeStrategy BotType = "strategy"
)

// BotConfig represents a user-owned trading bot configuration. The
// config payload is opaque to the dashboard.
type BotConfig struct {
	ID         uuid.UUID      `gorm:"type:uuid;primarykey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index:idx_bot_configs_user_id" json:"user_id"`
	BotType    BotType        `gorm:"size:32;not null" json:"bot_type"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	IsActive   bool           `gorm:"default:false" json:"is_active"`
	ConfigJSON json.RawMessage `gorm:"type:jsonb" json:"config_json"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	LastRun    *time.Time     `json:"last_run,omitempty"`
}

// TableName specifies the table name
func (BotConfig) TableName() string {
	return "bot_configs"
}
