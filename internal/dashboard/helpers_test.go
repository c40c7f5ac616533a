package dashboard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

var errReadFailed = errors.New("read failed")

type fakeUserStore struct {
	user  *models.User
	err   error
	calls int
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *fakeUserStore) Insert(ctx context.Context, user *models.User) error { return nil }

func (s *fakeUserStore) ListIDs(ctx context.Context) ([]uuid.UUID, error) { return nil, nil }

type fakeWalletStore struct {
	wallets []models.Wallet
	err     error
	calls   int
}

func (s *fakeWalletStore) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.wallets, nil
}

func (s *fakeWalletStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Wallet, error) {
	return nil, errReadFailed
}

func (s *fakeWalletStore) Insert(ctx context.Context, wallet *models.Wallet) error { return nil }

func (s *fakeWalletStore) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error {
	return nil
}

type fakeTradeStore struct {
	trades []models.Trade
	err    error
	calls  int
	limit  int
}

func (s *fakeTradeStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trade, error) {
	s.calls++
	s.limit = limit
	if s.err != nil {
		return nil, s.err
	}
	if len(s.trades) > limit {
		return s.trades[:limit], nil
	}
	return s.trades, nil
}

func (s *fakeTradeStore) Insert(ctx context.Context, trade *models.Trade) error { return nil }

func (s *fakeTradeStore) Cancel(ctx context.Context, id, userID uuid.UUID) error { return nil }

type fakeBotStore struct {
	bots  []models.BotConfig
	err   error
	calls int
}

func (s *fakeBotStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BotConfig, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.bots, nil
}

func (s *fakeBotStore) GetByID(ctx context.Context, id uuid.UUID) (*models.BotConfig, error) {
	return nil, errReadFailed
}

func (s *fakeBotStore) Insert(ctx context.Context, cfg *models.BotConfig) error { return nil }

func (s *fakeBotStore) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error {
	return nil
}

func (s *fakeBotStore) Touch(ctx context.Context, id, userID uuid.UUID) error { return nil }

type fakeStatStore struct{}

func (s *fakeStatStore) Insert(ctx context.Context, rec *models.UserStatRecord) error { return nil }

func fakeStore(users *fakeUserStore, wallets *fakeWalletStore, trades *fakeTradeStore, bots *fakeBotStore) *store.Store {
	return &store.Store{
		Users:   users,
		Wallets: wallets,
		Trades:  trades,
		Bots:    bots,
		Stats:   &fakeStatStore{},
	}
}
