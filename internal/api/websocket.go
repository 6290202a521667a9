package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // single-household app served to its own UI
	},
}

// notification is the wire form of one toast message.
type notification struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Hub fans coordinator notifications out to every connected UI client. The
// display timing (auto-dismiss and so on) is the client's concern.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
	log     zerolog.Logger
}

// NewHub creates an empty hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients: make(map[*wsClient]struct{}),
		log:     log,
	}
}

// Broadcast sends each notification string to every connected client.
// Clients with full buffers are skipped rather than blocked on.
func (h *Hub) Broadcast(messages []string) {
	if len(messages) == 0 {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, msg := range messages {
		data, err := json.Marshal(notification{Type: "notification", Message: msg})
		if err != nil {
			continue
		}
		for client := range h.clients {
			select {
			case client.send <- data:
			default:
				h.log.Warn().Msg("websocket buffer full, dropping notification")
			}
		}
	}
}

func (h *Hub) register(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

// wsClient maintains one websocket connection with the UI.
type wsClient struct {
	conn *websocket.Conn
	send chan []byte
	hub  *Hub
}

// handleWebSocket upgrades the connection and starts the pumps.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &wsClient{
		conn: conn,
		send: make(chan []byte, 256),
		hub:  s.hub,
	}
	s.hub.register(client)

	go client.writePump()
	go client.readPump()
}

// readPump drains client messages; the stream is one-way, so incoming
// payloads are discarded, but the pump keeps pong handling alive and tears
// the client down on close.
func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Warn().Err(err).Msg("websocket read error")
			}
			break
		}
	}
}

// writePump delivers queued notifications and keeps the connection alive
// with periodic pings.
func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
