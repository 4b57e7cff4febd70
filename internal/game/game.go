package game

// Symbol is a player's marker on the board.
type Symbol string

const (
	SymbolX    Symbol = "X"
	SymbolO    Symbol = "O"
	SymbolNone Symbol = ""
)

// Board is a 3x3 grid in row-major order. An empty cell holds SymbolNone.
type Board [9]Symbol

// winningLines enumerates the 3 rows, 3 columns and 2 diagonals.
// Order matters for Winner: the first completed line wins.
var winningLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// Winner returns the symbol occupying a completed line, if any.
func Winner(b Board) (Symbol, bool) {
	for _, line := range winningLines {
		a := b[line[0]]
		if a != SymbolNone && a == b[line[1]] && a == b[line[2]] {
			return a, true
		}
	}
	return SymbolNone, false
}

// State is the game portion of a room: who plays, whose turn it is,
// and what the board looks like.
type State struct {
	Board   Board
	Players [2]string
	Symbols map[string]Symbol
	Current string
	Active  bool
}

// Start begins a fresh game between two players. The first player
// receives X and moves first.
func (s *State) Start(first, second string) {
	s.Board = Board{}
	s.Players = [2]string{first, second}
	s.Symbols = map[string]Symbol{first: SymbolX, second: SymbolO}
	s.Current = first
	s.Active = true
}

// MoveStatus classifies the outcome of Apply.
type MoveStatus int

const (
	// MoveRejected means the move was invalid and the state is unchanged.
	MoveRejected MoveStatus = iota
	// MoveContinue means the move was placed and the turn passed on.
	MoveContinue
	// MoveWin means the move completed a line and ended the game.
	MoveWin
)

// MoveResult carries the outcome of Apply. Winner is set only for MoveWin.
type MoveResult struct {
	Status MoveStatus
	Winner Symbol
}

// Apply places username's symbol at index. It rejects without touching
// the board when the game is inactive, the index is out of range, it is
// not username's turn, or the cell is occupied. A winning placement
// deactivates the game; otherwise the turn passes to the other player.
func (s *State) Apply(username string, index int) MoveResult {
	if !s.Active {
		return MoveResult{Status: MoveRejected}
	}
	if index < 0 || index > 8 {
		return MoveResult{Status: MoveRejected}
	}
	if s.Current != username {
		return MoveResult{Status: MoveRejected}
	}
	if s.Board[index] != SymbolNone {
		return MoveResult{Status: MoveRejected}
	}

	s.Board[index] = s.Symbols[username]

	if winner, ok := Winner(s.Board); ok {
		s.Active = false
		return MoveResult{Status: MoveWin, Winner: winner}
	}

	if s.Current == s.Players[0] {
		s.Current = s.Players[1]
	} else {
		s.Current = s.Players[0]
	}
	return MoveResult{Status: MoveContinue}
}
