package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/Ko-stant/dungeon-layout-engine/internal/protocol"
)

const writeTimeout = 3 * time.Second

// Hub fans layout patches out to every connected viewer. Connections
// that fail a write are dropped on the spot.
type Hub struct {
	mu       sync.Mutex
	sequence uint64
	clients  map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Len reports the current viewer count.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// BroadcastPatch wraps the payload in a PatchEnvelope with the next
// sequence number and sends it to every client.
func (h *Hub) BroadcastPatch(patchType string, payload any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.sequence++
	message, err := json.Marshal(protocol.PatchEnvelope{
		Sequence: h.sequence,
		Type:     patchType,
		Payload:  payload,
	})
	if err != nil {
		return err
	}

	for conn := range h.clients {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.clients, conn)
		}
	}
	return nil
}
