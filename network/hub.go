package network

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/vape/log"
)

// client is one connected spectator with its own bounded send queue
type client struct {
	conn *websocket.Conn
	addr string
	send chan []byte
	done chan struct{}
	once sync.Once
}

// Hub fans simulation snapshots out to websocket spectators
// Publish never blocks the simulation: a slow client loses frames instead
type Hub struct {
	config   *Config
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*client]struct{}
	closed  bool

	published atomic.Uint64
	dropped   atomic.Uint64
}

// NewHub creates a hub; a nil config selects DefaultConfig
func NewHub(cfg *Config, logger *log.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.Nop()
	}
	return &Hub{
		config: cfg,
		logger: logger.With(log.String("component", "spectator")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Spectators are read-only, any origin may watch
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and streams snapshots until either side closes
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	refuse := h.closed || (h.config.MaxClients > 0 && len(h.clients) >= h.config.MaxClients)
	h.mu.RUnlock()
	if refuse {
		http.Error(w, "spectator limit reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already replied with an HTTP error
		h.logger.Debug("upgrade failed", log.Err(err))
		return
	}

	c := &client{
		conn: conn,
		addr: conn.RemoteAddr().String(),
		send: make(chan []byte, h.config.SendQueueSize),
		done: make(chan struct{}),
	}
	if !h.register(c) {
		conn.Close()
		return
	}
	h.logger.Info("spectator joined", log.String("addr", c.addr))

	go h.writeLoop(c)
	h.readLoop(c)
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) unregister(c *client) {
	c.once.Do(func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		close(c.done)
		deadline := time.Now().Add(h.config.WriteTimeout)
		msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "")
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, deadline)
		c.conn.Close()
		h.logger.Info("spectator left", log.String("addr", c.addr))
	})
}

// readLoop drains control frames; spectators have nothing to say
func (h *Hub) readLoop(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(h.config.PongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(h.config.PongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop is the only writer of data frames on the connection
func (h *Hub) writeLoop(c *client) {
	ping := time.NewTicker(h.config.PongTimeout * 9 / 10)
	defer ping.Stop()
	defer h.unregister(c)

	for {
		select {
		case <-c.done:
			return

		case data := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Debug("spectator write failed", log.String("addr", c.addr), log.Err(err))
				return
			}

		case <-ping.C:
			deadline := time.Now().Add(h.config.WriteTimeout)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return
			}
		}
	}
}

// Publish encodes the snapshot once and queues it on every client
func (h *Hub) Publish(s Snapshot) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.clients) == 0 {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		h.logger.Error("encode snapshot", log.Err(err))
		return
	}

	h.published.Add(1)
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Count returns the number of connected spectators
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Published returns frames encoded for at least one client
func (h *Hub) Published() uint64 { return h.published.Load() }

// Dropped returns per-client frames discarded on a full queue
func (h *Hub) Dropped() uint64 { return h.dropped.Load() }

// Close disconnects every spectator and refuses new ones
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.unregister(c)
	}
}
