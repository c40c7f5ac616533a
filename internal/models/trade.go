package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeType is the direction of a trade
type TradeType string

const (
	TradeTypeBuy  TradeType = "buy"
	TradeTypeSell TradeType = "sell"
)

// TradeStatus tags the lifecycle of a trade record
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "pending"
	TradeStatusExecuted  TradeStatus = "executed"
	TradeStatusConfirmed TradeStatus = "confirmed"
	TradeStatusFailed    TradeStatus = "failed"
	TradeStatusCancelled TradeStatus = "cancelled"
)

// Trade represents a persisted trade record. trade.WalletID must
// reference a wallet owned by the same user.
type Trade struct {
	ID            uuid.UUID        `gorm:"type:uuid;primarykey" json:"id"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index:idx_trades_user_id" json:"user_id"`
	WalletID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_trades_wallet_id" json:"wallet_id"`
	TokenAddress  string           `gorm:"size:64;not null" json:"token_address"`
	TokenSymbol   string           `gorm:"size:32" json:"token_symbol,omitempty"`
	TradeType     TradeType        `gorm:"size:8;not null" json:"trade_type"`
	SolAmount     decimal.Decimal  `gorm:"type:numeric(20,9);not null" json:"sol_amount"`
	TokenAmount   *decimal.Decimal `gorm:"type:numeric(30,9)" json:"token_amount,omitempty"`
	PricePerToken *decimal.Decimal `gorm:"type:numeric(30,18)" json:"price_per_token,omitempty"`
	Status        TradeStatus      `gorm:"size:16;default:pending" json:"status"`
	CreatedAt     time.Time        `gorm:"index:idx_trades_created_at" json:"created_at"`
	ExecutedAt    *time.Time       `json:"executed_at,omitempty"`
	ConfirmedAt   *time.Time       `json:"confirmed_at,omitempty"`
}

// TableName specifies the table name
func (Trade) TableName() string {
	return "trades"
}
