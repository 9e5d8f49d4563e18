package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgAnalyticsUpdated  MessageType = "analytics_updated"
	MsgInsightsGenerated MessageType = "insights_generated"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections, keyed by survey id. Several
// admin dashboards may watch the same survey at once.
type Hub struct {
	conns map[string]map[*Connection]bool // surveyID -> connections

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *broadcastMessage

	log *zap.Logger
}

// Connection represents one subscribed dashboard
type Connection struct {
	SurveyID string
	AdminID  string
	Send     chan []byte
	Hub      *Hub
}

type broadcastMessage struct {
	surveyID string
	message  *Message
}

// NewHub creates a new WebSocket hub
func NewHub(log *zap.Logger) *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *broadcastMessage, 256),
		log:        log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.SurveyID] == nil {
				h.conns[conn.SurveyID] = make(map[*Connection]bool)
			}
			h.conns[conn.SurveyID][conn] = true
			h.mu.Unlock()
			h.log.Info("dashboard connected",
				zap.String("surveyId", conn.SurveyID), zap.String("adminId", conn.AdminID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.SurveyID]; ok && conns[conn] {
				delete(conns, conn)
				close(conn.Send)
				if len(conns) == 0 {
					delete(h.conns, conn.SurveyID)
				}
			}
			h.mu.Unlock()
			h.log.Info("dashboard disconnected",
				zap.String("surveyId", conn.SurveyID), zap.String("adminId", conn.AdminID))

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.message)
			for conn := range h.conns[msg.surveyID] {
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

// BroadcastToAdmins sends a message to every dashboard watching a survey
// (implements service.Broadcaster)
func (h *Hub) BroadcastToAdmins(surveyID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.Warn("failed to marshal broadcast payload", zap.Error(err))
		return
	}
	h.broadcast <- &broadcastMessage{
		surveyID: surveyID,
		message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
