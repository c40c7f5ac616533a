package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/middleware"
	"cerberuschain/internal/models"
)

type fakeBotConfigStore struct {
	bot          *models.BotConfig
	setActiveErr error
	touches      int
	touchedID    uuid.UUID
	lastActive   bool
}

func (s *fakeBotConfigStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BotConfig, error) {
	return nil, nil
}

func (s *fakeBotConfigStore) GetByID(ctx context.Context, id uuid.UUID) (*models.BotConfig, error) {
	if s.bot == nil || s.bot.ID != id {
		return nil, gormNotFound()
	}
	return s.bot, nil
}

func (s *fakeBotConfigStore) Insert(ctx context.Context, cfg *models.BotConfig) error { return nil }

func (s *fakeBotConfigStore) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) error {
	s.lastActive = active
	return s.setActiveErr
}

func (s *fakeBotConfigStore) Touch(ctx context.Context, id, userID uuid.UUID) error {
	s.touches++
	s.touchedID = id
	return nil
}

func testContext(t *testing.T, session *auth.Session, method, body string, id uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	c.Set(middleware.SessionKey, session)
	return c, w
}

func TestBotConfigSetActive(t *testing.T) {
	userID := uuid.New()
	session := &auth.Session{UserID: userID, Token: "token-1"}
	botID := uuid.New()

	t.Run("Activation Stamps Last Run", func(t *testing.T) {
		bots := &fakeBotConfigStore{}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodPut, `{"is_active":true}`, botID)
		h.SetActive(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, bots.lastActive)
		assert.Equal(t, 1, bots.touches)
		assert.Equal(t, botID, bots.touchedID)
	})

	t.Run("Deactivation Leaves Last Run Alone", func(t *testing.T) {
		bots := &fakeBotConfigStore{}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodPut, `{"is_active":false}`, botID)
		h.SetActive(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, bots.lastActive)
		assert.Zero(t, bots.touches)
	})

	t.Run("Missing Bot Does Not Stamp", func(t *testing.T) {
		bots := &fakeBotConfigStore{setActiveErr: gormNotFound()}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodPut, `{"is_active":true}`, botID)
		h.SetActive(c)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Zero(t, bots.touches)
	})
}

func TestBotConfigStatus(t *testing.T) {
	userID := uuid.New()
	session := &auth.Session{UserID: userID, Token: "token-1"}
	lastRun := time.Date(2025, time.June, 21, 14, 30, 0, 0, time.UTC)

	t.Run("Reports Running With Last Run", func(t *testing.T) {
		botID := uuid.New()
		bots := &fakeBotConfigStore{bot: &models.BotConfig{
			ID:       botID,
			UserID:   userID,
			Name:     "volume-1",
			BotType:  models.BotTypeVolume,
			IsActive: true,
			LastRun:  &lastRun,
		}}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodGet, "", botID)
		h.Status(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"running"`)
		assert.Contains(t, w.Body.String(), `"last_run"`)
	})

	t.Run("Reports Stopped When Inactive", func(t *testing.T) {
		botID := uuid.New()
		bots := &fakeBotConfigStore{bot: &models.BotConfig{ID: botID, UserID: userID}}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodGet, "", botID)
		h.Status(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"stopped"`)
	})

	t.Run("Hides Other Users Bots", func(t *testing.T) {
		botID := uuid.New()
		bots := &fakeBotConfigStore{bot: &models.BotConfig{ID: botID, UserID: uuid.New()}}
		h := NewBotConfigHandler(bots)

		c, w := testContext(t, session, http.MethodGet, "", botID)
		h.Status(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
