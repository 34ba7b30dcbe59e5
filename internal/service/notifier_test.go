package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPNotifier(t *testing.T) {
	ctx := context.Background()
	adminID := int64(99)

	t.Run("NotifyUser posts to messages endpoint", func(t *testing.T) {
		var gotPath string
		var gotMsg gatewayMessage

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewNotifier(server.URL, adminID)
		require.NoError(t, notifier.NotifyUser(ctx, 42, "hello"))

		assert.Equal(t, "/api/messages", gotPath)
		assert.Equal(t, int64(42), gotMsg.UserID)
		assert.Equal(t, "hello", gotMsg.Text)
	})

	t.Run("NotifyAdmin targets the admin id", func(t *testing.T) {
		var gotMsg gatewayMessage

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMsg))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewNotifier(server.URL, adminID)
		require.NoError(t, notifier.NotifyAdmin(ctx, "order placed"))

		assert.Equal(t, adminID, gotMsg.UserID)
	})

	t.Run("SendPayload posts to deliveries endpoint", func(t *testing.T) {
		var gotPath string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		notifier := NewNotifier(server.URL, adminID)
		require.NoError(t, notifier.SendPayload(ctx, 42, "code: ABCD-1234"))

		assert.Equal(t, "/api/deliveries", gotPath)
	})

	t.Run("Non-2xx status is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		notifier := NewNotifier(server.URL, adminID)
		assert.Error(t, notifier.NotifyUser(ctx, 42, "hello"))
	})

	t.Run("Unreachable gateway is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		server.Close()

		notifier := NewNotifier(server.URL, adminID)
		assert.Error(t, notifier.NotifyUser(ctx, 42, "hello"))
	})
}
