package network

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Count() == n }, 2*time.Second, 5*time.Millisecond)
}

func TestHub_PublishReachesClient(t *testing.T) {
	hub := NewHub(DefaultConfig(), nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv.URL)
	waitClients(t, hub, 1)

	hub.Publish(Snapshot{
		Frame:    7,
		Level:    "level1",
		Score:    250,
		Player:   &PlayerView{X: 50, Y: 75, Health: 45, Max: 50, Charge: 3},
		Entities: []EntityView{{Kind: "turtle", X: 10, Y: 20}},
	})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(7), got.Frame)
	assert.Equal(t, 250, got.Score)
	require.NotNil(t, got.Player)
	assert.Equal(t, 45, got.Player.Health)
	require.Len(t, got.Entities, 1)
	assert.Equal(t, "turtle", got.Entities[0].Kind)
	assert.Equal(t, uint64(1), hub.Published())
}

func TestHub_NoClientsSkipsEncode(t *testing.T) {
	hub := NewHub(nil, nil)
	hub.Publish(Snapshot{Frame: 1})
	assert.Zero(t, hub.Published())
}

func TestHub_FullQueueDrops(t *testing.T) {
	hub := NewHub(nil, nil)
	c := &client{send: make(chan []byte, 1), done: make(chan struct{})}
	hub.clients[c] = struct{}{}

	hub.Publish(Snapshot{Frame: 1})
	hub.Publish(Snapshot{Frame: 2})
	hub.Publish(Snapshot{Frame: 3})

	assert.Equal(t, uint64(3), hub.Published())
	assert.Equal(t, uint64(2), hub.Dropped())
	assert.Len(t, c.send, 1)
	assert.Contains(t, string(<-c.send), `"frame":1`)
}

func TestHub_MaxClients(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxClients = 1
	hub := NewHub(cfg, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	dialHub(t, srv.URL)
	waitClients(t, hub, 1)

	_, resp, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHub_CloseDisconnects(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv.URL)
	waitClients(t, hub, 1)

	hub.Close()
	assert.Zero(t, hub.Count())

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)

	hub.Publish(Snapshot{Frame: 1})
	assert.Zero(t, hub.Published())
}

func TestHub_ClientLeaves(t *testing.T) {
	hub := NewHub(nil, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dialHub(t, srv.URL)
	waitClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitClients(t, hub, 0)
}

func TestServer_ServeUntilCancel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "127.0.0.1:0"
	hub := NewHub(cfg, nil)

	srv, err := Listen(cfg, hub)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	dialHub(t, "http://"+srv.Addr()+"/ws")
	waitClients(t, hub, 1)

	resp, err := http.Get("http://" + srv.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Zero(t, hub.Count())
}

func TestListen_BadAddress(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Address = "256.0.0.1:bad"
	_, err := Listen(cfg, NewHub(cfg, nil))
	assert.Error(t, err)
}
