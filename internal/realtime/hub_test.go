package realtime

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bizops-dashboard/internal/events"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Len() == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHubBroadcastsEvents(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)

	hub.Publish(context.Background(), events.Event{Resource: "vendors", Action: events.ActionCreated, ID: 7, Brand: "blorcs"})

	var got events.Event
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "vendors", got.Resource)
	assert.Equal(t, events.ActionCreated, got.Action)
	assert.Equal(t, uint(7), got.ID)
}

func TestHubFiltersByBrand(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv, "?brand=technova")
	waitForClients(t, hub, 1)

	hub.Publish(context.Background(), events.Event{Resource: "vendors", Action: events.ActionCreated, ID: 1, Brand: "blorcs"})
	hub.Publish(context.Background(), events.Event{Resource: "stores", Action: events.ActionDeleted, ID: 2, Brand: "technova"})

	var got events.Event
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, "stores", got.Resource)
	assert.Equal(t, uint(2), got.ID)
}

func TestHubDropsDisconnectedClients(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	defer srv.Close()

	conn := dial(t, srv, "")
	waitForClients(t, hub, 1)
	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}
