package wshub

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/coder/websocket"

	"reactiontest/internal/events"
)

// Message types sent by the play surface.
const (
	TypeStart   = "start"
	TypeRestart = "restart"
	TypeResize  = "resize"
	TypeHit     = "hit"
)

// ClientMessage is the JSON structure received from clients. Ms is the
// reaction time the client measured for a hit, from paint to pointer press.
type ClientMessage struct {
	Type string  `json:"t"`
	Kind string  `json:"k,omitempty"`
	W    float64 `json:"w,omitempty"`
	H    float64 `json:"h,omitempty"`
	Ms   float64 `json:"ms,omitempty"`
}

// ServerMessage is the JSON structure sent to clients.
type ServerMessage struct {
	Type   string             `json:"t"`
	State  *events.StateEvent `json:"s,omitempty"`
	Status string             `json:"m,omitempty"`
}

// Client represents a single WebSocket connection in the hub.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{ID: id, Conn: conn, Send: make(chan []byte, 16)}
}

// WritePump reads from the Send channel and writes to the WebSocket connection.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				c.Conn.Close(websocket.StatusNormalClosure, "session closed")
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// ReadPump decodes client messages and hands them to handle until the
// connection or ctx ends.
func (c *Client) ReadPump(ctx context.Context, handle func(ClientMessage)) error {
	for {
		_, data, err := c.Conn.Read(ctx)
		if err != nil {
			return err
		}
		msg, err := DecodeClientMessage(data)
		if err != nil {
			log.Printf("[WS] %s: %v\n", c.ID, err)
			continue
		}
		handle(msg)
	}
}

func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("decoding client message: %w", err)
	}
	if msg.Type == "" {
		return ClientMessage{}, fmt.Errorf("client message without type")
	}
	return msg, nil
}

// Hub manages the WebSocket connections of one session.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	closed  bool
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
	}
}

// Register adds a client to the hub. It reports false once the hub is closed.
func (h *Hub) Register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.ID] = c
	return true
}

// Unregister removes a client and closes its Send channel.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[id]; ok {
		close(c.Send)
		delete(h.clients, id)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends data to every client. Non-blocking: drops if channel full.
func (h *Hub) Broadcast(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		select {
		case c.Send <- data:
		default:
			// Drop message if channel full
		}
	}
}

// Close unregisters every client; their write pumps close the connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for id, c := range h.clients {
		close(c.Send)
		delete(h.clients, id)
	}
}
