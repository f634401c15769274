package inspect

import (
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
)

// sendBuffer is the per-client outbound queue length. Clients that fall
// this far behind are dropped rather than allowed to stall the hub.
const sendBuffer = 64

// hub fans broadcast messages out to connected websocket clients.
type hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*client]bool
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func newHub(logger *slog.Logger) *hub {
	return &hub{
		logger:  logger,
		clients: make(map[*client]bool),
	}
}

// add registers conn and starts its pumps.
func (h *hub) add(conn *websocket.Conn) {
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	go h.writePump(c)
	go h.readPump(c)
}

// broadcast queues msg for every client, dropping clients whose queue is
// full.
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
			h.logger.Warn("dropping slow inspector client")
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// remove unregisters c if still present.
func (h *hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c] {
		delete(h.clients, c)
		close(c.send)
	}
}

// closeAll disconnects every client.
func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// writePump writes queued messages until the client's queue is closed.
func (h *hub) writePump(c *client) {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			h.remove(c)
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readPump discards inbound messages; the stream is one-directional.
// A read error means the client went away.
func (h *hub) readPump(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				h.logger.Debug("inspector client read error", "error", err)
			}
			h.remove(c)
			return
		}
	}
}
