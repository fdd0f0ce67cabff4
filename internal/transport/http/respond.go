package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/lazygeek007/connect-four/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("[HTTP] Error encoding response: %v", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusFor(err), errorResponse{Error: err.Error(), Code: codeFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIllegalMove),
		errors.Is(err, domain.ErrInvalidDifficulty),
		errors.Is(err, domain.ErrInvalidBoard),
		errors.Is(err, domain.ErrInvalidState):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrGameOver),
		errors.Is(err, domain.ErrNotHumanTurn),
		errors.Is(err, domain.ErrNotComputerTurn),
		errors.Is(err, domain.ErrNoLegalMove):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// codeFor gives clients a stable machine-readable name for each error
// kind, independent of the human-readable message.
func codeFor(err error) string {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return "session_not_found"
	case errors.Is(err, domain.ErrIllegalMove):
		return "illegal_move"
	case errors.Is(err, domain.ErrInvalidDifficulty):
		return "invalid_difficulty"
	case errors.Is(err, domain.ErrInvalidBoard):
		return "invalid_board"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrGameOver):
		return "game_over"
	case errors.Is(err, domain.ErrNotHumanTurn):
		return "not_human_turn"
	case errors.Is(err, domain.ErrNotComputerTurn):
		return "not_computer_turn"
	case errors.Is(err, domain.ErrNoLegalMove):
		return "no_legal_move"
	default:
		return "internal_error"
	}
}
