package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cerberuschain/internal/models"
)

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormUserStore) Insert(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormUserStore) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).Model(&models.User{}).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

type gormWalletStore struct {
	db *gorm.DB
}

func (s *gormWalletStore) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	var wallets []models.Wallet
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&wallets).Error; err != nil {
		return nil, err
	}
	return wallets, nil
}

func (s *gormWalletStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := s.db.WithContext(ctx).First(&wallet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *gormWalletStore) Insert(ctx context.Context, wallet *models.Wallet) error {
	return s.db.WithContext(ctx).Create(wallet).Error
}

func (s *gormWalletStore) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error {
	res := s.db.WithContext(ctx).Model(&models.Wallet{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type gormTradeStore struct {
	db *gorm.DB
}

func (s *gormTradeStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (s *gormTradeStore) Insert(ctx context.Context, trade *models.Trade) error {
	return s.db.WithContext(ctx).Create(trade).Error
}

// Cancel only applies while the trade is still pending.
func (s *gormTradeStore) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Trade{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, models.TradeStatusPending).
		Update("status", models.TradeStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type gormBotConfigStore struct {
	db *gorm.DB
}

func (s *gormBotConfigStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BotConfig, error) {
	var configs []models.BotConfig
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}

func (s *gormBotConfigStore) GetByID(ctx context.Context, id uuid.UUID) (*models.BotConfig, error) {
	var cfg models.BotConfig
	if err := s.db.WithContext(ctx).First(&cfg, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *gormBotConfigStore) Insert(ctx context.Context, cfg *models.BotConfig) error {
	return s.db.WithContext(ctx).Create(cfg).Error
}

func (s *gormBotConfigStore) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error {
	res := s.db.WithContext(ctx).Model(&models.BotConfig{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormBotConfigStore) Touch(ctx context.Context, id, userID uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.BotConfig{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("last_run", time.Now())
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type gormStatStore struct {
	db *gorm.DB
}

func (s *gormStatStore) Insert(ctx context.Context, rec *models.UserStatRecord) error {
	return s.db.WithContext(ctx).Create(rec).Error
}
