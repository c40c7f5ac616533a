package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// TradeHistoryLimit caps the trade read. The overview's trade count is
// therefore an undercount once a user passes this many trades; a
// separate count query would be needed for a lifetime total.
const TradeHistoryLimit = 10

// Snapshot is the set of entity collections loaded for one session.
// It is held until sign-out and never reloaded on tab switches.
type Snapshot struct {
	Profile *models.User       `json:"profile"`
	Wallets []models.Wallet    `json:"wallets"`
	Trades  []models.Trade     `json:"trades"`
	Bots    []models.BotConfig `json:"bots"`
}

// Loader fetches a user's profile and owned entities. The four reads
// are independent: a failed read leaves its slot empty and the others
// still populate, so the dashboard renders partial data instead of an
// error screen.
type Loader struct {
	store *store.Store
}

// NewLoader builds a Loader over the given store.
func NewLoader(st *store.Store) *Loader {
	return &Loader{store: st}
}

// Load issues the four reads concurrently and returns once all of them
// have settled. Each read writes a disjoint slot. When the context is
// cancelled before the join completes the result is discarded and the
// context error returned.
func (l *Loader) Load(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	snap := &Snapshot{
		Wallets: []models.Wallet{},
		Trades:  []models.Trade{},
		Bots:    []models.BotConfig{},
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		profile, err := l.store.Users.GetByID(ctx, userID)
		if err != nil {
			log.Warnf("Failed to load profile for %s: %v", userID, err)
			return
		}
		snap.Profile = profile
	}()

	go func() {
		defer wg.Done()
		wallets, err := l.store.Wallets.ListActiveByUser(ctx, userID)
		if err != nil {
			log.Warnf("Failed to load wallets for %s: %v", userID, err)
			return
		}
		snap.Wallets = wallets
	}()

	go func() {
		defer wg.Done()
		trades, err := l.store.Trades.ListRecentByUser(ctx, userID, TradeHistoryLimit)
		if err != nil {
			log.Warnf("Failed to load trades for %s: %v", userID, err)
			return
		}
		snap.Trades = trades
	}()

	go func() {
		defer wg.Done()
		bots, err := l.store.Bots.ListByUser(ctx, userID)
		if err != nil {
			log.Warnf("Failed to load bot configs for %s: %v", userID, err)
			return
		}
		snap.Bots = bots
	}()

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}
