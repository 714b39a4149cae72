// Package ws provides a websocket chat transport. Each connection is bound
// to one session; inbound text messages run through the same turn
// orchestration as the REST and SSE surfaces.
package ws

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	chatservice "github.com/mindscan-ai/mindscan/backend/internal/service/chat"
	"github.com/mindscan-ai/mindscan/backend/internal/service/turn"
)

// Handler upgrades chat connections and pumps turns.
type Handler struct {
	chatSvc  *chatservice.Service
	turnSvc  *turn.Service
	upgrader websocket.Upgrader
}

// New creates a websocket chat handler.
func New(chatSvc *chatservice.Service, turnSvc *turn.Service) *Handler {
	return &Handler{
		chatSvc: chatSvc,
		turnSvc: turnSvc,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	SessionID string      `json:"sessionId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	if _, err := h.chatSvc.GetSession(r.Context(), sessionID); err != nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read error for session=%s: %v", sessionID, err)
			}
			return
		}

		var inbound inboundMessage
		if err := json.Unmarshal(raw, &inbound); err != nil {
			h.send(conn, outgoingMessage{Type: "error", SessionID: sessionID, Error: "invalid message envelope"})
			continue
		}

		if inbound.Type != "chat" {
			h.send(conn, outgoingMessage{Type: "error", SessionID: sessionID, Error: "unsupported message type"})
			continue
		}

		result, err := h.turnSvc.HandleTurn(r.Context(), sessionID, inbound.Text)
		if err != nil {
			h.send(conn, outgoingMessage{Type: "error", SessionID: sessionID, Error: err.Error()})
			continue
		}

		h.send(conn, outgoingMessage{Type: "turn", SessionID: sessionID, Data: result})
	}
}

func (h *Handler) send(conn *websocket.Conn, msg outgoingMessage) {
	msg.Timestamp = time.Now().UnixMilli()
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed: %v", err)
	}
}
