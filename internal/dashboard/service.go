package dashboard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"cerberuschain/internal/models"
)

// Service keeps one StateMachine per session token. A snapshot is
// loaded when the session opens and reused for every tab until
// sign-out.
type Service struct {
	loader   *Loader
	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// sessionEntry serializes the initial load so concurrent first
// requests for a session load exactly once.
type sessionEntry struct {
	machine *StateMachine
	loadMu  sync.Mutex
}

// NewService builds the dashboard service.
func NewService(loader *Loader) *Service {
	return &Service{
		loader:   loader,
		sessions: make(map[string]*sessionEntry),
	}
}

// Open authenticates the machine for the session and loads its
// snapshot. Safe to call again for a known session: the existing
// snapshot is kept and no reload happens.
func (s *Service) Open(ctx context.Context, token string, userID uuid.UUID) (*StateMachine, error) {
	s.mu.Lock()
	e, ok := s.sessions[token]
	if !ok {
		e = &sessionEntry{machine: NewStateMachine()}
		s.sessions[token] = e
	}
	s.mu.Unlock()

	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	m := e.machine
	if m.Phase() == PhaseAuthenticated && m.Snapshot() != nil {
		return m, nil
	}

	epoch := m.OnAuthenticated()
	snap, err := s.loader.Load(ctx, userID)
	if err != nil {
		return m, err
	}
	m.ApplySnapshot(epoch, snap)
	return m, nil
}

// Close signs the session's machine out and forgets it. Loader results
// still in flight are discarded by the epoch guard.
func (s *Service) Close(token string) {
	s.mu.Lock()
	e, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()
	if ok {
		e.machine.OnSignOut()
	}
}

// View is the rendered state of the active tab.
type View struct {
	Phase        Phase              `json:"phase"`
	Tab          Tab                `json:"tab"`
	Stats        *Stats             `json:"stats,omitempty"`
	BalanceLabel string             `json:"total_balance_display,omitempty"`
	Profile      *models.User       `json:"profile,omitempty"`
	Wallets      []models.Wallet    `json:"wallets,omitempty"`
	Trades       []models.Trade     `json:"trades,omitempty"`
	Bots         []models.BotConfig `json:"bots,omitempty"`
}

// BuildView renders the machine's active tab from its snapshot.
func BuildView(m *StateMachine) View {
	return BuildTabView(m, m.Tab())
}

// BuildTabView renders the named tab from the machine's snapshot
// without changing the active tab.
func BuildTabView(m *StateMachine, tab Tab) View {
	view := View{Phase: m.Phase(), Tab: tab}
	if view.Phase != PhaseAuthenticated {
		return view
	}

	snap := m.Snapshot()
	if snap == nil {
		return view
	}
	view.Profile = snap.Profile

	switch view.Tab {
	case TabOverview:
		stats := Aggregate(snap)
		view.Stats = &stats
		view.BalanceLabel = FormatSOL(stats.TotalBalance)
		// Overview shows the five most recent trades as activity.
		recent := snap.Trades
		if len(recent) > 5 {
			recent = recent[:5]
		}
		view.Trades = recent
	case TabWallets:
		view.Wallets = snap.Wallets
	case TabTrades:
		view.Trades = snap.Trades
	case TabBots:
		view.Bots = snap.Bots
	}
	return view
}
