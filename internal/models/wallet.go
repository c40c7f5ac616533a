package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType tags how a wallet is used
type WalletType string

const (
	WalletTypeTrading WalletType = "trading"
	WalletTypeHolding WalletType = "holding"
	WalletTypeBurner  WalletType = "burner"
)

// Wallet represents a user-owned Solana wallet snapshot. Balances are
// written by the data store side; the dashboard only reads them.
type Wallet struct {
	ID                uuid.UUID       `gorm:"type:uuid;primarykey" json:"id"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_wallets_user_id" json:"user_id"`
	Name              string          `gorm:"size:100;not null" json:"name"`
	PublicKey         string          `gorm:"size:64;not null;uniqueIndex:idx_wallets_public_key" json:"public_key"`
	WalletType        WalletType      `gorm:"size:32;default:trading" json:"wallet_type"`
	SolBalance        decimal.Decimal `gorm:"type:numeric(20,9);default:0" json:"sol_balance"`
	IsActive          bool            `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	LastBalanceUpdate *time.Time      `json:"last_balance_update,omitempty"`
}

// TableName specifies the table name
func (Wallet) TableName() string {
	return "wallets"
}
