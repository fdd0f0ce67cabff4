package websocket

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/service/game"
	"github.com/lazygeek007/connect-four/pkg/token"
)

const (
	readDeadline = 60 * time.Second
	pingInterval = 30 * time.Second
)

// Handler upgrades requests on the game socket endpoint and runs the
// per-connection message loop.
type Handler struct {
	ConnManager *ConnectionManager
	Manager     *game.SessionManager
	Secret      string
	upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sm *game.SessionManager, secret string, allowedOrigins []string) *Handler {
	return &Handler{
		ConnManager: cm,
		Manager:     sm,
		Secret:      secret,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				log.Printf("[WS] Rejected origin: %s", origin)
				return false
			},
		},
	}
}

// ServeHTTP upgrades the connection and manages its lifecycle.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WS] Upgrade error: %v", err)
		return
	}
	defer conn.Close()

	// Read deadline to detect stale connections, renewed on pong.
	conn.SetReadDeadline(time.Now().Add(readDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	// Keep-alive pinger. Exits once a write fails, which happens
	// shortly after the connection closes.
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for range ticker.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	// The first message must be a join carrying the session token.
	var joinMsg ClientMessage
	if err := conn.ReadJSON(&joinMsg); err != nil {
		log.Printf("[WS] Read error during join: %v", err)
		return
	}
	if joinMsg.Type != "join" || joinMsg.Token == "" {
		log.Printf("[WS] Missing join or token")
		conn.WriteJSON(ServerMessage{Type: "error", Message: "first message must be a join with a token"})
		return
	}

	claims, err := token.Validate(h.Secret, joinMsg.Token)
	if err != nil {
		log.Printf("[WS] Invalid token during join: %v", err)
		conn.WriteJSON(ServerMessage{Type: "error", Message: "invalid or expired token"})
		return
	}
	sessionID := claims.SessionID

	session, err := h.Manager.Get(context.Background(), sessionID)
	if err != nil {
		log.Printf("[WS] Join failed for session %s: %v", sessionID, err)
		conn.WriteJSON(ServerMessage{Type: "error", Message: "session not found"})
		return
	}

	h.ConnManager.Add(sessionID, conn)
	defer func() {
		log.Printf("[WS] Connection closed for session %s", sessionID)
		h.ConnManager.RemoveIfMatching(sessionID, conn)
	}()

	log.Printf("[WS] Connection initialized for session %s", sessionID)

	state := session.State()
	h.ConnManager.Send(sessionID, ServerMessage{
		Type:      "joined",
		SessionID: sessionID,
		Opponent:  session.BotName(),
		State:     &state,
	})

	for {
		var msg ClientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[WS] Session %s disconnected unexpectedly: %v", sessionID, err)
			}
			break
		}
		conn.SetReadDeadline(time.Now().Add(readDeadline))

		h.processMessage(sessionID, msg)
	}
}

// processMessage routes specific actions.
func (h *Handler) processMessage(sessionID string, msg ClientMessage) {
	switch msg.Type {
	case "move":
		report, err := h.Manager.PlayHumanMove(context.Background(), sessionID, msg.Column)
		if err != nil {
			h.ConnManager.Send(sessionID, ServerMessage{Type: "error", Message: err.Error()})
			return
		}

		h.ConnManager.Send(sessionID, ServerMessage{
			Type:         "move_made",
			HumanMove:    report.HumanMove,
			ComputerMove: report.ComputerMove,
			State:        &report.State,
		})

		if report.State.Phase == domain.PhaseGameOver {
			h.ConnManager.Send(sessionID, ServerMessage{
				Type:   "game_over",
				Winner: report.Outcome.Winner,
				Reason: reasonFor(report.Outcome),
				State:  &report.State,
			})
		}

	case "state":
		session, err := h.Manager.Get(context.Background(), sessionID)
		if err != nil {
			h.ConnManager.Send(sessionID, ServerMessage{Type: "error", Message: "session not found"})
			return
		}
		state := session.State()
		h.ConnManager.Send(sessionID, ServerMessage{Type: "state", State: &state})

	case "join":
		h.ConnManager.Send(sessionID, ServerMessage{Type: "error", Message: "already joined"})

	default:
		h.ConnManager.Send(sessionID, ServerMessage{Type: "error", Message: "unknown message type"})
	}
}

func reasonFor(outcome domain.Outcome) string {
	if outcome.Status == domain.StatusDraw {
		return "draw"
	}
	return "connect_four"
}
