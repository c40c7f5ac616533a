package auth

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"cerberuschain/internal/models"
	"cerberuschain/internal/store"
)

// AuthEventQueue is the queue auth events are published to when a
// publisher is configured.
const AuthEventQueue = "auth_events"

// EventPublisher publishes auth events to a queue. Matches the
// messaging publisher; nil disables publishing.
type EventPublisher interface {
	Publish(queueName string, message interface{}) error
}

// AuthEventMessage is the payload published on register/login.
type AuthEventMessage struct {
	UserID string    `json:"user_id"`
	Event  string    `json:"event"`
	Email  string    `json:"email"`
	At     time.Time `json:"at"`
}

// SessionManager owns authentication state. Form input is validated
// locally before anything reaches the provider.
type SessionManager struct {
	provider  Provider
	users     store.UserStore
	publisher EventPublisher
}

// NewSessionManager builds a SessionManager. publisher may be nil.
func NewSessionManager(provider Provider, users store.UserStore, publisher EventPublisher) *SessionManager {
	return &SessionManager{provider: provider, users: users, publisher: publisher}
}

// SignIn validates the form and authenticates against the provider.
// Provider failures come back as *AuthError with the provider message.
func (m *SessionManager) SignIn(ctx context.Context, email, password string) (*Session, error) {
	if err := ValidateSignIn(email, password); err != nil {
		return nil, err
	}

	session, err := m.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}

	m.publish(session, "login")
	return session, nil
}

// SignUp validates the registration form, creates the provider
// identity and then the User record. A failed User record write after
// the identity exists is a warning, not a sign-up failure: the session
// is already established.
func (m *SessionManager) SignUp(ctx context.Context, username, email, password, confirmPassword string) (*Session, error) {
	if err := ValidateRegistration(username, email, password, confirmPassword); err != nil {
		return nil, err
	}

	session, err := m.provider.SignUp(ctx, email, password, Metadata{Username: username})
	if err != nil {
		return nil, err
	}

	profile := models.User{
		ID:         session.UserID,
		Username:   username,
		Email:      email,
		IsVerified: false,
	}
	if err := m.users.Insert(ctx, &profile); err != nil {
		log.Warnf("User record insert failed after identity creation, continuing: %v", err)
	}

	m.publish(session, "register")
	return session, nil
}

// SignOut invalidates the session. Local state is cleared regardless
// of the remote call's outcome, so this never fails for the caller.
func (m *SessionManager) SignOut(ctx context.Context, session *Session) {
	if session == nil {
		return
	}
	if err := m.provider.SignOut(ctx, session.Token); err != nil {
		log.Warnf("Remote session invalidation failed: %v", err)
	}
}

// Restore looks up an existing valid session for the token. A missing
// or invalid session yields (nil, nil): unauthenticated, not an error.
func (m *SessionManager) Restore(ctx context.Context, token string) (*Session, error) {
	return m.provider.GetSession(ctx, token)
}

func (m *SessionManager) publish(session *Session, event string) {
	if m.publisher == nil {
		return
	}
	msg := AuthEventMessage{
		UserID: session.UserID.String(),
		Event:  event,
		Email:  session.Email,
		At:     time.Now(),
	}
	if err := m.publisher.Publish(AuthEventQueue, msg); err != nil {
		log.Warnf("Failed to publish %s event: %v", event, err)
	}
}
