// Package realtime pushes collection-change events to connected clients so
// screens can refetch and recompute their derived views. The event only
// names the collection that changed; clients pull fresh data over the
// regular API.
package realtime

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ChangeEvent names a collection whose contents changed
type ChangeEvent struct {
	Collection string    `json:"collection"` // teachers, operations, payments, expenses
	Timestamp  time.Time `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Hub struct {
	clients    map[*websocket.Conn]bool
	clientsMux sync.Mutex
	broadcast  chan ChangeEvent
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan ChangeEvent, 64),
	}
	go h.handleBroadcast()
	return h
}

// Notify queues a change event for every connected client. Never blocks a
// request: when the buffer is full the event is dropped, clients will
// catch up on their next refetch.
func (h *Hub) Notify(collection string) {
	select {
	case h.broadcast <- ChangeEvent{Collection: collection, Timestamp: time.Now()}:
	default:
	}
}

// HandleWebSocket upgrades the connection and keeps it registered until
// the client goes away
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("[Realtime] WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			h.clientsMux.Lock()
			delete(h.clients, conn)
			h.clientsMux.Unlock()
			break
		}
	}
}

func (h *Hub) handleBroadcast() {
	for event := range h.broadcast {
		h.clientsMux.Lock()
		for client := range h.clients {
			if err := client.WriteJSON(event); err != nil {
				client.Close()
				delete(h.clients, client)
			}
		}
		h.clientsMux.Unlock()
	}
}
