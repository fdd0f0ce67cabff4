package domain

type PlayerID int

const (
	Empty   PlayerID = 0
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other player, or Empty for anything that is not
// a player.
func Opponent(player PlayerID) PlayerID {
	switch player {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Phase is where the turn cycle currently stands, seen from the human
// player's side of the table.
type Phase string

const (
	PhaseAwaitingHuman    Phase = "awaiting_human_move"
	PhaseComputerThinking Phase = "computer_thinking"
	PhaseGameOver         Phase = "game_over"
)

// Outcome is the result of inspecting a board position: still active,
// won by Winner, or drawn.
type Outcome struct {
	Status GameStatus `json:"status"`
	Winner PlayerID   `json:"winner"`
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrIllegalMove       Error = "illegal move"
	ErrNoLegalMove       Error = "no legal move"
	ErrInvalidPlayer     Error = "invalid player"
	ErrInvalidBoard      Error = "invalid board"
	ErrInvalidState      Error = "invalid game state"
	ErrGameOver          Error = "game is over"
	ErrNotHumanTurn      Error = "not the human's turn"
	ErrNotComputerTurn   Error = "not the computer's turn"
	ErrSessionNotFound   Error = "session not found"
	ErrInvalidDifficulty Error = "invalid difficulty"
)

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}
