package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgConnected         MessageType = "connected"
	MsgAnalysisCompleted MessageType = "analysis_completed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans scoring events out to the dashboards of one organization
type Hub struct {
	// organizationID -> live connections
	orgConns map[string]map[*Connection]struct{}

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
}

// Connection represents a WebSocket connection
type Connection struct {
	OrganizationID string
	AnalystID      string
	Send           chan []byte
	Hub            *Hub
}

// BroadcastMessage is a message for every dashboard of an organization
type BroadcastMessage struct {
	OrganizationID string
	Message        *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		orgConns:   make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.orgConns[conn.OrganizationID] == nil {
				h.orgConns[conn.OrganizationID] = make(map[*Connection]struct{})
			}
			h.orgConns[conn.OrganizationID][conn] = struct{}{}
			h.mu.Unlock()
			log.Printf("Analyst %s subscribed to org %s", conn.AnalystID, conn.OrganizationID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.orgConns[conn.OrganizationID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.orgConns, conn.OrganizationID)
					}
					log.Printf("Analyst %s unsubscribed from org %s", conn.AnalystID, conn.OrganizationID)
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				log.Printf("marshal %s message: %v", msg.Message.Type, err)
				continue
			}
			h.mu.RLock()
			for conn := range h.orgConns[msg.OrganizationID] {
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

// BroadcastToOrganization sends a message to every dashboard of
// organizationID (implements service.Broadcaster)
func (h *Hub) BroadcastToOrganization(organizationID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("marshal %s payload: %v", msgType, err)
		return
	}
	h.broadcast <- &BroadcastMessage{
		OrganizationID: organizationID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}

// ConnectionCount returns the number of live dashboards for organizationID.
func (h *Hub) ConnectionCount(organizationID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.orgConns[organizationID])
}
