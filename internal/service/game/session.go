package game

import (
	"sync"
	"time"

	"github.com/lazygeek007/connect-four/internal/domain"
	"github.com/lazygeek007/connect-four/internal/repository"
	"github.com/lazygeek007/connect-four/internal/service/bot"
)

// GameSession wraps one live human-versus-computer match. All access to
// the underlying Game goes through the session mutex, and a mutation
// either fully applies or leaves the game exactly as it was.
type GameSession struct {
	SessionID  string
	Game       *domain.Game
	Difficulty bot.Difficulty
	Depth      int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	mu         sync.Mutex
}

// MovePlacement records where a single token landed.
type MovePlacement struct {
	Column int             `json:"column"`
	Row    int             `json:"row"`
	Player domain.PlayerID `json:"player"`
}

// MoveReport is the result of one full turn exchange. ComputerMove is
// nil when the human's move ended the game, and HumanMove is nil when
// the computer opened the game.
type MoveReport struct {
	HumanMove    *MovePlacement   `json:"human_move,omitempty"`
	ComputerMove *MovePlacement   `json:"computer_move,omitempty"`
	Outcome      domain.Outcome   `json:"outcome"`
	State        domain.GameState `json:"state"`
}

// BotName returns the display name of the computer opponent.
func (gs *GameSession) BotName() string {
	return domain.GetBotName(string(gs.Difficulty))
}

// State returns a snapshot of the game under the session lock.
func (gs *GameSession) State() domain.GameState {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.State()
}

// Render returns the text picture of the current board.
func (gs *GameSession) Render() string {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return domain.Render(gs.Game.Board)
}

func (gs *GameSession) IsOver() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.Game.IsOver()
}

// LastTouched returns when the session last changed.
func (gs *GameSession) LastTouched() time.Time {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.UpdatedAt
}

// Snapshot builds the persisted form of the session.
func (gs *GameSession) Snapshot() *repository.GameSnapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return &repository.GameSnapshot{
		SessionID:  gs.SessionID,
		Game:       gs.Game.State(),
		Difficulty: string(gs.Difficulty),
		Depth:      gs.Depth,
		CreatedAt:  gs.CreatedAt,
		UpdatedAt:  gs.UpdatedAt,
	}
}

// PlayHumanMove applies the human's move and, if the game is still
// running, immediately computes and applies the computer's reply. An
// illegal column is rejected before anything changes so the caller can
// re-prompt.
func (gs *GameSession) PlayHumanMove(column int) (*MoveReport, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	row, outcome, err := gs.Game.ApplyHumanMove(column)
	if err != nil {
		return nil, err
	}
	gs.UpdatedAt = time.Now()

	report := &MoveReport{
		HumanMove: &MovePlacement{Column: column, Row: row, Player: gs.Game.Human},
		Outcome:   outcome,
	}

	if !gs.Game.IsOver() {
		computerMove, computerOutcome, err := gs.playComputerTurnLocked()
		if err != nil {
			return nil, err
		}
		report.ComputerMove = computerMove
		report.Outcome = computerOutcome
	}

	report.State = gs.Game.State()
	return report, nil
}

// AdvanceComputer plays the computer's move when it is the computer's
// turn: the opening move of a computer-first game, or a reply that was
// interrupted before it got applied.
func (gs *GameSession) AdvanceComputer() (*MoveReport, error) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.Game.Phase != domain.PhaseComputerThinking {
		return nil, domain.ErrNotComputerTurn
	}

	computerMove, outcome, err := gs.playComputerTurnLocked()
	if err != nil {
		return nil, err
	}
	gs.UpdatedAt = time.Now()

	return &MoveReport{
		ComputerMove: computerMove,
		Outcome:      outcome,
		State:        gs.Game.State(),
	}, nil
}

// playComputerTurnLocked runs the search and applies the chosen column.
// Caller must hold gs.mu with the game in the computer_thinking phase.
func (gs *GameSession) playComputerTurnLocked() (*MovePlacement, domain.Outcome, error) {
	column, err := bot.BestMove(gs.Game.Board, gs.Game.Computer, gs.Depth)
	if err != nil {
		return nil, domain.Outcome{Status: gs.Game.Status, Winner: gs.Game.Winner}, err
	}

	row, outcome, err := gs.Game.ApplyComputerMove(column)
	if err != nil {
		return nil, outcome, err
	}

	return &MovePlacement{Column: column, Row: row, Player: gs.Game.Computer}, outcome, nil
}
