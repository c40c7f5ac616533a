package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cerberuschain/internal/models"
)

// Session is the ephemeral proof of authentication binding a token to
// a user identifier.
type Session struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Metadata is the opaque sign-up metadata attached to a new identity.
type Metadata struct {
	Username string `json:"username"`
}

// Provider is the credential-based session provider behind
// SessionManager. Errors carry human-readable messages which are
// surfaced to the user verbatim.
type Provider interface {
	SignUp(ctx context.Context, email, password string, metadata Metadata) (*Session, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, token string) error
	// GetSession returns (nil, nil) when no valid session exists.
	GetSession(ctx context.Context, token string) (*Session, error)
}

// Claims are the JWT claims issued per session.
type Claims struct {
	Username  string `json:"username"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// GormProvider implements Provider over auth_users/user_sessions with
// bcrypt credentials and JWT session tokens.
type GormProvider struct {
	db       *gorm.DB
	secret   []byte
	tokenTTL time.Duration
}

// NewGormProvider builds the production provider.
func NewGormProvider(db *gorm.DB, secret string, tokenTTL time.Duration) *GormProvider {
	return &GormProvider{db: db, secret: []byte(secret), tokenTTL: tokenTTL}
}

// SignUp creates a new identity and an initial session.
func (p *GormProvider) SignUp(ctx context.Context, email, password string, metadata Metadata) (*Session, error) {
	var existing models.AuthUser
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, NewAuthError("User already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewAuthError("Unable to process registration")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewAuthError("Unable to process registration")
	}

	user := models.AuthUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Username:     metadata.Username,
		IsVerified:   false,
	}
	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, NewAuthError("Unable to process registration")
	}

	return p.issueSession(ctx, &user)
}

// SignInWithPassword verifies credentials and opens a session.
func (p *GormProvider) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	var user models.AuthUser
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NewAuthError("Invalid login credentials")
	}
	if err != nil {
		return nil, NewAuthError("Authentication service unavailable")
	}

	if user.LockedUntil != nil && user.LockedUntil.After(time.Now()) {
		return nil, NewAuthError("Account is temporarily locked")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		p.db.WithContext(ctx).Model(&user).
			Update("failed_login_attempts", gorm.Expr("failed_login_attempts + 1"))
		return nil, NewAuthError("Invalid login credentials")
	}

	now := time.Now()
	p.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"failed_login_attempts": 0,
		"last_login":            now,
	})
	// Login timestamps on the profile row are owned by the store side.
	p.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("last_login", now)

	return p.issueSession(ctx, &user)
}

// SignOut invalidates the session backing the token.
func (p *GormProvider) SignOut(ctx context.Context, token string) error {
	return p.db.WithContext(ctx).Model(&models.UserSession{}).
		Where("token_hash = ?", hashToken(token)).
		Update("is_active", false).Error
}

// GetSession validates the token and returns the live session, or
// (nil, nil) when the token is absent, malformed, expired or revoked.
func (p *GormProvider) GetSession(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}

	var session models.UserSession
	err = p.db.WithContext(ctx).
		Where("token_hash = ? AND is_active = ? AND expires_at > ?", hashToken(token), true, time.Now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, NewAuthError("Authentication service unavailable")
	}

	var user models.AuthUser
	if err := p.db.WithContext(ctx).First(&user, "id = ?", session.UserID).Error; err != nil {
		return nil, nil
	}

	return &Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// PurgeExpiredSessions deletes expired and revoked sessions. Used by
// the maintenance worker.
func (p *GormProvider) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	res := p.db.WithContext(ctx).
		Where("expires_at < ? OR is_active = ?", time.Now(), false).
		Delete(&models.UserSession{})
	return res.RowsAffected, res.Error
}

func (p *GormProvider) issueSession(ctx context.Context, user *models.AuthUser) (*Session, error) {
	now := time.Now()
	expiresAt := now.Add(p.tokenTTL)
	sessionID := uuid.New()

	claims := Claims{
		Username:  user.Username,
		SessionID: sessionID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return nil, NewAuthError("Failed to generate token")
	}

	record := models.UserSession{
		ID:        sessionID,
		UserID:    user.ID,
		TokenHash: hashToken(token),
		IsActive:  true,
		ExpiresAt: expiresAt,
	}
	if err := p.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, NewAuthError("Failed to create session")
	}

	return &Session{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
