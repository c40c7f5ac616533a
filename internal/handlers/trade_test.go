package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cerberuschain/internal/auth"
	"cerberuschain/internal/models"
)

func gormNotFound() error { return gorm.ErrRecordNotFound }

type fakeTradeStore struct {
	cancelErr       error
	cancelledID     uuid.UUID
	cancelledUserID uuid.UUID
}

func (s *fakeTradeStore) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Trade, error) {
	return nil, nil
}

func (s *fakeTradeStore) Insert(ctx context.Context, trade *models.Trade) error { return nil }

func (s *fakeTradeStore) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	s.cancelledID = id
	s.cancelledUserID = userID
	return s.cancelErr
}

func TestTradeCancel(t *testing.T) {
	userID := uuid.New()
	session := &auth.Session{UserID: userID, Token: "token-1"}

	t.Run("Cancels A Pending Trade", func(t *testing.T) {
		tradeID := uuid.New()
		trades := &fakeTradeStore{}
		h := NewTradeHandler(trades, nil)

		c, w := testContext(t, session, http.MethodPost, "", tradeID)
		h.Cancel(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Trade cancelled successfully")
		assert.Equal(t, tradeID, trades.cancelledID)
		assert.Equal(t, userID, trades.cancelledUserID)
	})

	t.Run("Non-Pending Trade Reports Not Found", func(t *testing.T) {
		trades := &fakeTradeStore{cancelErr: gorm.ErrRecordNotFound}
		h := NewTradeHandler(trades, nil)

		c, w := testContext(t, session, http.MethodPost, "", uuid.New())
		h.Cancel(c)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Trade not found or cannot be cancelled")
	})

	t.Run("Invalid ID Is Rejected", func(t *testing.T) {
		trades := &fakeTradeStore{}
		h := NewTradeHandler(trades, nil)

		c, w := testContext(t, session, http.MethodPost, "", uuid.New())
		c.Params = nil
		h.Cancel(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, uuid.Nil, trades.cancelledID)
	})
}
