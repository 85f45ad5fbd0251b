package ws

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/vnkhanh/study-assistant-backend/logger"
)

const sendBuffer = 256

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans record events out to every connected client.
type Hub struct {
	clients map[*websocket.Conn]*Client
	mu      sync.RWMutex
	log     *logger.Logger
}

// RecordEvent is sent whenever a record is stored.
type RecordEvent struct {
	Type       string `json:"type"`
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*Client),
		log:     log,
	}
}

func (h *Hub) Register(conn *websocket.Conn) *Client {
	h.mu.Lock()
	defer h.mu.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, sendBuffer),
	}
	h.clients[conn] = client
	return client
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client, ok := h.clients[conn]; ok {
		close(client.Send)
		delete(h.clients, conn)
	}
}

// Broadcast queues data for every client. Slow clients drop the message.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// RecordCreated matches store.CreateHook.
func (h *Hub) RecordCreated(collection, id string) {
	data, err := json.Marshal(RecordEvent{Type: "record_created", Collection: collection, ID: id})
	if err != nil {
		h.log.Warn("marshal record event", "error", err)
		return
	}
	h.Broadcast(data)
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) readPump(conn *websocket.Conn) {
	defer h.Unregister(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) writePump(client *Client) {
	defer func() {
		client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
		client.Conn.Close()
	}()
	for msg := range client.Send {
		if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
