package store

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cerberuschain/internal/models"
)

// UserStore reads and writes user profile records. Login timestamps
// are maintained by the session provider, not through this interface.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}

// WalletStore reads and writes wallet records.
type WalletStore interface {
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error)
	Insert(ctx context.Context, wallet *models.Wallet) error
	SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error
}

// TradeStore reads and writes trade records.
type TradeStore interface {
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trade, error)
	Insert(ctx context.Context, trade *models.Trade) error
	Cancel(ctx context.Context, id, userID uuid.UUID) error
}

// BotConfigStore reads and writes bot configuration records.
type BotConfigStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BotConfig, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.BotConfig, error)
	Insert(ctx context.Context, cfg *models.BotConfig) error
	SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error
	Touch(ctx context.Context, id, userID uuid.UUID) error
}

// StatStore writes periodic per-user stat snapshots.
type StatStore interface {
	Insert(ctx context.Context, rec *models.UserStatRecord) error
}

// Store bundles the per-collection stores over one database handle.
type Store struct {
	Users   UserStore
	Wallets WalletStore
	Trades  TradeStore
	Bots    BotConfigStore
	Stats   StatStore
}

// New builds a Store backed by the given gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{
		Users:   &gormUserStore{db: db},
		Wallets: &gormWalletStore{db: db},
		Trades:  &gormTradeStore{db: db},
		Bots:    &gormBotConfigStore{db: db},
		Stats:   &gormStatStore{db: db},
	}
}
