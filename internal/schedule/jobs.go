package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/dashboard"
	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// Start registers the maintenance jobs and starts the scheduler.
func Start(provider *auth.GormProvider, st *store.Store) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		PurgeSessions(provider)
	})
	c.AddFunc("@every 15m", func() {
		if err := RecordUserStats(st); err != nil {
			log.Errorf("> Failed to record user stats: %v", err)
		}
	})

	c.Start()
	return c
}

// PurgeSessions deletes expired and revoked sessions.
func PurgeSessions(provider *auth.GormProvider) {
	n, err := provider.PurgeExpiredSessions(context.Background())
	if err != nil {
		log.Errorf("> Failed to purge sessions: %v", err)
		return
	}
	if n > 0 {
		log.Infof("> Purged %d expired sessions", n)
	}
}

// RecordUserStats writes a stat snapshot per user so balance history
// survives wallet churn.
func RecordUserStats(st *store.Store) error {
	ctx := context.Background()

	ids, err := st.Users.ListIDs(ctx)
	if err != nil {
		return err
	}
	log.Infof("> Recording stats for %d users", len(ids))

	now := time.Now()
	for _, id := range ids {
		wallets, err := st.Wallets.ListActiveByUser(ctx, id)
		if err != nil {
			log.Warnf("> Failed to load wallets for %s: %v", id, err)
			continue
		}
		bots, err := st.Bots.ListByUser(ctx, id)
		if err != nil {
			log.Warnf("> Failed to load bot configs for %s: %v", id, err)
			continue
		}

		rec := models.UserStatRecord{
			UserID:       id,
			WalletCount:  len(wallets),
			ActiveBots:   dashboard.ActiveBotCount(bots),
			TotalBalance: dashboard.TotalBalance(wallets),
			RecordedAt:   now,
		}
		if err := st.Stats.Insert(ctx, &rec); err != nil {
			log.Warnf("> Failed to insert stat record for %s: %v", id, err)
		}
	}
	return nil
}
