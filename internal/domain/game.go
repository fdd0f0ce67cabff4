package domain

// Game is the authoritative state of one human-versus-computer match.
// Player1 always moves first, and either seat may hold the computer.
type Game struct {
	Board      *Board
	Human      PlayerID
	Computer   PlayerID
	Current    PlayerID
	Phase      Phase
	Status     GameStatus
	Winner     PlayerID
	MoveCount  int
	LastColumn int
	LastRow    int
}

func NewGame(computer PlayerID) (*Game, error) {
	if computer != Player1 && computer != Player2 {
		return nil, ErrInvalidPlayer
	}
	g := &Game{
		Board:      NewBoard(),
		Human:      Opponent(computer),
		Computer:   computer,
		Current:    Player1,
		Status:     StatusActive,
		Winner:     Empty,
		LastColumn: -1,
		LastRow:    -1,
	}
	g.Phase = phaseFor(g.Current, computer)
	return g, nil
}

// ApplyHumanMove drops the human's token in column. Outside the human's
// turn the call is rejected, and an illegal column leaves the game
// exactly as it was so the caller can re-prompt.
func (g *Game) ApplyHumanMove(column int) (int, Outcome, error) {
	if g.Phase == PhaseGameOver {
		return -1, g.outcome(), ErrGameOver
	}
	if g.Phase != PhaseAwaitingHuman {
		return -1, g.outcome(), ErrNotHumanTurn
	}
	return g.applyMove(g.Human, column)
}

// ApplyComputerMove mirrors ApplyHumanMove for the computer's turn.
func (g *Game) ApplyComputerMove(column int) (int, Outcome, error) {
	if g.Phase == PhaseGameOver {
		return -1, g.outcome(), ErrGameOver
	}
	if g.Phase != PhaseComputerThinking {
		return -1, g.outcome(), ErrNotComputerTurn
	}
	return g.applyMove(g.Computer, column)
}

func (g *Game) applyMove(player PlayerID, column int) (int, Outcome, error) {
	row, err := g.Board.DropToken(column, player)
	if err != nil {
		return -1, g.outcome(), err
	}

	g.MoveCount++
	g.LastColumn = column
	g.LastRow = row

	outcome := g.Board.OutcomeAfter(column, row)
	switch outcome.Status {
	case StatusWon:
		g.Status = StatusWon
		g.Winner = outcome.Winner
		g.Phase = PhaseGameOver
	case StatusDraw:
		g.Status = StatusDraw
		g.Phase = PhaseGameOver
	default:
		g.Current = Opponent(player)
		g.Phase = phaseFor(g.Current, g.Computer)
	}
	return row, outcome, nil
}

func (g *Game) IsOver() bool {
	return g.Phase == PhaseGameOver
}

func (g *Game) outcome() Outcome {
	return Outcome{Status: g.Status, Winner: g.Winner}
}

func phaseFor(current, computer PlayerID) Phase {
	if current == computer {
		return PhaseComputerThinking
	}
	return PhaseAwaitingHuman
}

// GameState is the serializable snapshot of a Game.
type GameState struct {
	Cells      [][]PlayerID `json:"cells"` // row 0 is the bottom row
	Computer   PlayerID     `json:"computer"`
	Current    PlayerID     `json:"current"`
	Phase      Phase        `json:"phase"`
	Status     GameStatus   `json:"status"`
	Winner     PlayerID     `json:"winner"`
	MoveCount  int          `json:"move_count"`
	LastColumn int          `json:"last_column"`
	LastRow    int          `json:"last_row"`
}

func (g *Game) State() GameState {
	return GameState{
		Cells:      g.Board.Cells(),
		Computer:   g.Computer,
		Current:    g.Current,
		Phase:      g.Phase,
		Status:     g.Status,
		Winner:     g.Winner,
		MoveCount:  g.MoveCount,
		LastColumn: g.LastColumn,
		LastRow:    g.LastRow,
	}
}

// RestoreGame rebuilds a Game from a stored snapshot, revalidating the
// board invariants and the phase, status and turn pairing. The move
// count is rederived from the cells.
func RestoreGame(state GameState) (*Game, error) {
	board, err := RestoreBoard(state.Cells)
	if err != nil {
		return nil, err
	}
	if state.Computer != Player1 && state.Computer != Player2 {
		return nil, ErrInvalidPlayer
	}

	g := &Game{
		Board:      board,
		Human:      Opponent(state.Computer),
		Computer:   state.Computer,
		Current:    state.Current,
		Phase:      state.Phase,
		Status:     state.Status,
		Winner:     state.Winner,
		MoveCount:  board.MoveCount(),
		LastColumn: state.LastColumn,
		LastRow:    state.LastRow,
	}

	switch state.Phase {
	case PhaseGameOver:
		if state.Status == StatusActive {
			return nil, ErrInvalidState
		}
		if state.Status == StatusWon && state.Winner != Player1 && state.Winner != Player2 {
			return nil, ErrInvalidState
		}
	case PhaseAwaitingHuman:
		if state.Status != StatusActive || state.Current != g.Human {
			return nil, ErrInvalidState
		}
	case PhaseComputerThinking:
		if state.Status != StatusActive || state.Current != g.Computer {
			return nil, ErrInvalidState
		}
	default:
		return nil, ErrInvalidState
	}
	return g, nil
}
