package websocket

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan any
}

// Hub keeps one set of connected clients per room and fans events out
// to them. Delivery is best-effort: a slow or dead client is dropped,
// never waited on.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*client]struct{})}
}

// Broadcast sends event to every client joined to room.
func (h *Hub) Broadcast(room string, event any) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- event:
		default:
			// Buffer full, the writer goroutine will clean up on close.
		}
	}
}

func (h *Hub) join(room string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*client]struct{})
	}
	h.rooms[room][c] = struct{}{}
}

func (h *Hub) leave(room string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms[room], c)
	if len(h.rooms[room]) == 0 {
		delete(h.rooms, room)
	}
}

// Serve upgrades the request and pumps room events to the socket until
// either side goes away. Inbound messages are discarded; the socket is
// notification-only.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, room string) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Failed to upgrade websocket:", err)
		return
	}

	c := &client{conn: ws, send: make(chan any, 16)}
	h.join(room, c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			h.leave(room, c)
			ws.Close()
			return
		case event := <-c.send:
			if err := ws.WriteJSON(event); err != nil {
				h.leave(room, c)
				ws.Close()
				return
			}
		}
	}
}
