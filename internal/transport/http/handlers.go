package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/service/game"
	"github.com/lazygeek007/connect-four/internal/transport/http/middleware"
	"github.com/lazygeek007/connect-four/pkg/token"
)

// GameHandler handles the game session endpoints.
type GameHandler struct {
	Manager      *game.SessionManager
	Secret       string
	TokenTTL     time.Duration
	DefaultDepth int
}

func NewGameHandler(manager *game.SessionManager, secret string, tokenTTL time.Duration, defaultDepth int) *GameHandler {
	return &GameHandler{Manager: manager, Secret: secret, TokenTTL: tokenTTL, DefaultDepth: defaultDepth}
}

type createGameRequest struct {
	Difficulty    string `json:"difficulty"`
	Depth         int    `json:"depth"`
	ComputerFirst bool   `json:"computer_first"`
}

type createGameResponse struct {
	SessionID  string           `json:"session_id"`
	Token      string           `json:"token"`
	Opponent   string           `json:"opponent"`
	Difficulty string           `json:"difficulty"`
	Depth      int              `json:"depth"`
	State      domain.GameState `json:"state"`
}

// CreateGame handles POST /api/game. An empty body starts a default
// medium game with the human moving first.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Depth == 0 {
		// Server-wide SEARCH_DEPTH override, 0 when unset.
		req.Depth = h.DefaultDepth
	}

	session, err := h.Manager.Create(r.Context(), game.CreateOptions{
		Difficulty:    req.Difficulty,
		Depth:         req.Depth,
		ComputerFirst: req.ComputerFirst,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	sessionToken, err := token.Generate(h.Secret, session.SessionID, h.TokenTTL)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, createGameResponse{
		SessionID:  session.SessionID,
		Token:      sessionToken,
		Opponent:   session.BotName(),
		Difficulty: string(session.Difficulty),
		Depth:      session.Depth,
		State:      session.State(),
	})
}

type gameStateResponse struct {
	SessionID string           `json:"session_id"`
	Opponent  string           `json:"opponent"`
	State     domain.GameState `json:"state"`
}

// GetGame handles GET /api/game/{id}.
func (h *GameHandler) GetGame(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}

	session, err := h.Manager.Get(r.Context(), sessionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gameStateResponse{
		SessionID: session.SessionID,
		Opponent:  session.BotName(),
		State:     session.State(),
	})
}

type playMoveRequest struct {
	Column *int `json:"column"`
}

// PlayMove handles POST /api/game/{id}/move. The response carries the
// human placement, the computer's reply when one was played, and the
// full state afterwards.
func (h *GameHandler) PlayMove(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}

	var req playMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Column == nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "column is required"})
		return
	}

	report, err := h.Manager.PlayHumanMove(r.Context(), sessionID, *req.Column)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// DeleteGame handles DELETE /api/game/{id}.
func (h *GameHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.authorizedSession(w, r)
	if !ok {
		return
	}

	if err := h.Manager.Remove(r.Context(), sessionID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *GameHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":          "ok",
		"active_sessions": h.Manager.Count(),
	})
}

// authorizedSession checks that the session in the URL is the one the
// Bearer token was issued for.
func (h *GameHandler) authorizedSession(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := mux.Vars(r)["id"]
	if sessionID == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "missing session id"})
		return "", false
	}

	if middleware.GetSessionID(r.Context()) != sessionID {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "token does not match session"})
		return "", false
	}

	return sessionID, true
}
