package websocket

import (
	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/service/game"
)

// ClientMessage is what the browser sends over the socket. The first
// message must be a join carrying the session token; after that the
// client sends moves and state requests.
type ClientMessage struct {
	Type   string `json:"type"` // "join", "move", "state"
	Token  string `json:"token,omitempty"`
	Column int    `json:"column"`
}

// ServerMessage is what the server pushes back.
type ServerMessage struct {
	Type         string              `json:"type"` // "joined", "move_made", "state", "game_over", "error"
	SessionID    string              `json:"session_id,omitempty"`
	Opponent     string              `json:"opponent,omitempty"`
	HumanMove    *game.MovePlacement `json:"human_move,omitempty"`
	ComputerMove *game.MovePlacement `json:"computer_move,omitempty"`
	State        *domain.GameState   `json:"state,omitempty"`
	Winner       domain.PlayerID     `json:"winner,omitempty"`
	Reason       string              `json:"reason,omitempty"`
	Message      string              `json:"message,omitempty"`
}
