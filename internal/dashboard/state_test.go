package dashboard

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cerberuschain/internal/models"
)

func TestStateMachine(t *testing.T) {
	t.Run("Starts In Auth Loading", func(t *testing.T) {
		m := NewStateMachine()
		assert.Equal(t, PhaseAuthLoading, m.Phase())
		assert.Equal(t, TabOverview, m.Tab())
		assert.Nil(t, m.Snapshot())
	})

	t.Run("Authenticated Opens On Overview", func(t *testing.T) {
		m := NewStateMachine()
		m.SelectTab(TabBots)
		m.OnAuthenticated()

		assert.Equal(t, PhaseAuthenticated, m.Phase())
		assert.Equal(t, TabOverview, m.Tab())
	})

	t.Run("Tab Switch Requires Authentication", func(t *testing.T) {
		m := NewStateMachine()
		require.Error(t, m.SelectTab(TabTrades))

		m.OnAuthenticated()
		require.NoError(t, m.SelectTab(TabTrades))
		assert.Equal(t, TabTrades, m.Tab())
	})

	t.Run("Unknown Tab Is Rejected", func(t *testing.T) {
		m := NewStateMachine()
		m.OnAuthenticated()
		assert.Error(t, m.SelectTab(Tab("settings")))
		assert.Equal(t, TabOverview, m.Tab())
	})

	t.Run("Sign Out Drops Snapshot And Resets Tab", func(t *testing.T) {
		m := NewStateMachine()
		epoch := m.OnAuthenticated()
		require.True(t, m.ApplySnapshot(epoch, &Snapshot{}))
		require.NoError(t, m.SelectTab(TabWallets))

		m.OnSignOut()
		assert.Equal(t, PhaseUnauthenticated, m.Phase())
		assert.Equal(t, TabOverview, m.Tab())
		assert.Nil(t, m.Snapshot())
	})

	t.Run("Stale Snapshot After Sign Out Is Discarded", func(t *testing.T) {
		m := NewStateMachine()
		epoch := m.OnAuthenticated()
		m.OnSignOut()

		assert.False(t, m.ApplySnapshot(epoch, &Snapshot{}))
		assert.Nil(t, m.Snapshot())
	})

	t.Run("Stale Snapshot After Re-Authentication Is Discarded", func(t *testing.T) {
		m := NewStateMachine()
		first := m.OnAuthenticated()
		second := m.OnAuthenticated()

		assert.False(t, m.ApplySnapshot(first, &Snapshot{}))
		assert.True(t, m.ApplySnapshot(second, &Snapshot{}))
	})
}

func TestServiceOpen(t *testing.T) {
	userID := uuid.New()

	t.Run("Loads Once Per Session", func(t *testing.T) {
		users := &fakeUserStore{user: &models.User{ID: userID, Username: "hydra"}}
		wallets := &fakeWalletStore{wallets: sampleWallets(userID, 1)}
		svc := NewService(NewLoader(fakeStore(users, wallets, &fakeTradeStore{}, &fakeBotStore{})))

		m, err := svc.Open(context.Background(), "token-1", userID)
		require.NoError(t, err)
		require.NotNil(t, m.Snapshot())
		assert.Equal(t, 1, users.calls)
	})

	t.Run("Tab Switch Does Not Reload", func(t *testing.T) {
		users := &fakeUserStore{user: &models.User{ID: userID}}
		wallets := &fakeWalletStore{wallets: sampleWallets(userID, 2)}
		svc := NewService(NewLoader(fakeStore(users, wallets, &fakeTradeStore{}, &fakeBotStore{})))

		m, err := svc.Open(context.Background(), "token-1", userID)
		require.NoError(t, err)
		require.NoError(t, m.SelectTab(TabWallets))

		again, err := svc.Open(context.Background(), "token-1", userID)
		require.NoError(t, err)
		assert.Same(t, m, again)
		assert.Equal(t, TabWallets, again.Tab())
		assert.Equal(t, 1, users.calls)
		assert.Equal(t, 1, wallets.calls)
	})

	t.Run("Concurrent First Requests Load Once", func(t *testing.T) {
		users := &fakeUserStore{user: &models.User{ID: userID}}
		svc := NewService(NewLoader(fakeStore(users, &fakeWalletStore{}, &fakeTradeStore{}, &fakeBotStore{})))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Open(context.Background(), "token-1", userID)
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, users.calls)
	})

	t.Run("Close Forgets The Session", func(t *testing.T) {
		users := &fakeUserStore{user: &models.User{ID: userID}}
		svc := NewService(NewLoader(fakeStore(users, &fakeWalletStore{}, &fakeTradeStore{}, &fakeBotStore{})))

		m, err := svc.Open(context.Background(), "token-1", userID)
		require.NoError(t, err)

		svc.Close("token-1")
		assert.Equal(t, PhaseUnauthenticated, m.Phase())

		_, err = svc.Open(context.Background(), "token-1", userID)
		require.NoError(t, err)
		assert.Equal(t, 2, users.calls)
	})
}

func TestBuildTabView(t *testing.T) {
	userID := uuid.New()
	snap := &Snapshot{
		Profile: &models.User{ID: userID, Username: "hydra"},
		Wallets: sampleWallets(userID, 2),
		Trades:  sampleTrades(userID, 8),
		Bots:    []models.BotConfig{{ID: uuid.New(), UserID: userID, IsActive: true}},
	}

	machine := func() *StateMachine {
		m := NewStateMachine()
		epoch := m.OnAuthenticated()
		m.ApplySnapshot(epoch, snap)
		return m
	}

	t.Run("Overview Carries Stats And Recent Activity", func(t *testing.T) {
		view := BuildTabView(machine(), TabOverview)

		require.NotNil(t, view.Stats)
		assert.Equal(t, 2, view.Stats.WalletCount)
		assert.Equal(t, 8, view.Stats.TradeCount)
		assert.Equal(t, 1, view.Stats.ActiveBots)
		assert.NotEmpty(t, view.BalanceLabel)
		assert.Len(t, view.Trades, 5)
		assert.Empty(t, view.Wallets)
	})

	t.Run("Entity Tabs Carry Only Their Slice", func(t *testing.T) {
		view := BuildTabView(machine(), TabWallets)
		assert.Len(t, view.Wallets, 2)
		assert.Nil(t, view.Stats)

		view = BuildTabView(machine(), TabTrades)
		assert.Len(t, view.Trades, 8)

		view = BuildTabView(machine(), TabBots)
		assert.Len(t, view.Bots, 1)
	})

	t.Run("Unauthenticated View Is Bare", func(t *testing.T) {
		m := NewStateMachine()
		m.OnUnauthenticated()

		view := BuildView(m)
		assert.Equal(t, PhaseUnauthenticated, view.Phase)
		assert.Nil(t, view.Profile)
		assert.Nil(t, view.Stats)
	})
}
