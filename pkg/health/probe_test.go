package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCheck(t *testing.T) {
	t.Run("Decodes Health Payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"healthy","service":"cerberus-hydra-backend","version":"0.1.0","timestamp":"2025-06-21T14:30:00Z"}`))
		}))
		defer srv.Close()

		status, err := NewProbe(srv.URL).Check(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "healthy", status.Status)
		assert.Equal(t, "cerberus-hydra-backend", status.Service)
		assert.Equal(t, "0.1.0", status.Version)
	})

	t.Run("Unreachable Backend Is A Network Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		_, err := NewProbe(srv.URL).Check(context.Background())
		require.Error(t, err)

		var netErr *NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("Non-200 Is A Network Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := NewProbe(srv.URL).Check(context.Background())
		require.Error(t, err)

		var netErr *NetworkError
		assert.True(t, errors.As(err, &netErr))
	})

	t.Run("Malformed Payload Is A Network Error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>not json</html>"))
		}))
		defer srv.Close()

		_, err := NewProbe(srv.URL).Check(context.Background())
		require.Error(t, err)

		var netErr *NetworkError
		assert.True(t, errors.As(err, &netErr))
	})
}

func TestProbeCheckCard(t *testing.T) {
	t.Run("Connected Card Shows Status And Version", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"healthy","service":"cerberus-hydra-backend","version":"0.1.0"}`))
		}))
		defer srv.Close()

		card := NewProbe(srv.URL).CheckCard(context.Background())
		assert.True(t, card.Connected)
		assert.Equal(t, "Status: healthy, Version: 0.1.0", card.Display)
	})

	t.Run("Failure Card Shows Connection Failed", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		card := NewProbe(srv.URL).CheckCard(context.Background())
		assert.False(t, card.Connected)
		assert.Nil(t, card.Status)
		assert.Equal(t, ConnectionFailed, card.Display)
	})
}
