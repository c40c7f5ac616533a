package dashboard

import (
	"fmt"
	"sync"
)

// Phase is the top-level dashboard UI state.
type Phase string

const (
	// PhaseAuthLoading is the initial state until restore settles.
	PhaseAuthLoading     Phase = "auth_loading"
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticated   Phase = "authenticated"
)

// Tab selects which aggregated view is rendered while authenticated.
type Tab string

const (
	TabOverview Tab = "overview"
	TabWallets  Tab = "wallets"
	TabTrades   Tab = "trades"
	TabBots     Tab = "bots"
)

// ValidTab reports whether t names a dashboard tab.
func ValidTab(t Tab) bool {
	switch t {
	case TabOverview, TabWallets, TabTrades, TabBots:
		return true
	}
	return false
}

// StateMachine holds the dashboard state. Every change is an explicit
// event; there are no implicit side effects. The epoch guards against
// a late loader result landing after sign-out.
type StateMachine struct {
	mu       sync.Mutex
	phase    Phase
	tab      Tab
	snapshot *Snapshot
	epoch    uint64
}

// NewStateMachine starts in AuthLoading until restore settles.
func NewStateMachine() *StateMachine {
	return &StateMachine{phase: PhaseAuthLoading, tab: TabOverview}
}

// Phase returns the current phase.
func (s *StateMachine) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Tab returns the active tab.
func (s *StateMachine) Tab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// Snapshot returns the applied snapshot, nil while loading.
func (s *StateMachine) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// OnAuthenticated records a successful restore/signIn/signUp: the
// dashboard opens on the overview tab. The returned epoch must be
// passed to ApplySnapshot so stale loads can be discarded.
func (s *StateMachine) OnAuthenticated() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseAuthenticated
	s.tab = TabOverview
	s.snapshot = nil
	s.epoch++
	return s.epoch
}

// OnUnauthenticated records restore settling without a session.
func (s *StateMachine) OnUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseUnauthenticated
	s.snapshot = nil
	s.epoch++
}

// OnSignOut invalidates the session state and drops the snapshot.
func (s *StateMachine) OnSignOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseUnauthenticated
	s.tab = TabOverview
	s.snapshot = nil
	s.epoch++
}

// SelectTab changes only the tab. It never triggers a reload: the
// snapshot is loaded once per session.
func (s *StateMachine) SelectTab(tab Tab) error {
	if !ValidTab(tab) {
		return fmt.Errorf("unknown tab %q", tab)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAuthenticated {
		return fmt.Errorf("not authenticated")
	}
	s.tab = tab
	return nil
}

// ApplySnapshot attaches a loaded snapshot. The result is discarded
// when the machine left the authenticated phase or re-authenticated
// since the load started; returns false when discarded.
func (s *StateMachine) ApplySnapshot(epoch uint64, snap *Snapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAuthenticated || s.epoch != epoch {
		return false
	}
	s.snapshot = snap
	return true
}
