package ws

import (
	"encoding/json"
	"log"
	"sync"

	"remedyai/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgResultReady MessageType = "result_ready"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections for survey sessions. A session usually
// has one listener: the client sitting on the loading screen waiting for
// the triage result. Events for sessions nobody listens on are dropped.
type Hub struct {
	// sessionID -> connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *sessionMessage
}

// Connection represents one subscribed WebSocket client
type Connection struct {
	SessionID string
	Send      chan []byte
	Hub       *Hub
}

type sessionMessage struct {
	SessionID string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *sessionMessage, 64),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SessionID] == nil {
				h.conns[conn.SessionID] = make(map[*Connection]bool)
			}
			h.conns[conn.SessionID][conn] = true
			h.mu.Unlock()
			log.Printf("Listener connected to session %s", conn.SessionID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.conns[conn.SessionID]; ok && subs[conn] {
				delete(subs, conn)
				close(conn.Send)
				if len(subs) == 0 {
					delete(h.conns, conn.SessionID)
				}
				log.Printf("Listener disconnected from session %s", conn.SessionID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Message)
			for conn := range h.conns[msg.SessionID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// ResultReady pushes the triage report to the session's listeners
// (implements service.Notifier). Without a listener this is a no-op.
func (h *Hub) ResultReady(sessionID string, report *model.TriageReport) {
	data, _ := json.Marshal(report)
	h.broadcast <- &sessionMessage{
		SessionID: sessionID,
		Message: &Message{
			Type:    MsgResultReady,
			Payload: data,
		},
	}
}
