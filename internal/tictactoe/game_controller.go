package tictactoe

import "github.com/rocketscienceinc/minigames/internal/entity"

type Snapshot struct {
	Board   entity.Board   `json:"board"`
	Turn    entity.Mark    `json:"turn"`
	Outcome entity.Outcome `json:"outcome"`
}

// Game is a single tic-tac-toe round. It is not safe for concurrent use.
type Game struct {
	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome
}

func NewGame() *Game {
	game := &Game{}
	game.Reset()

	return game
}

// Reset - empties the board and gives the first move to X.
func (that *Game) Reset() {
	that.board = entity.Board{}
	that.turn = entity.MarkX
	that.outcome = entity.Outcome{Status: entity.StatusOngoing}
}

// Place - puts the current mark at position. Returns false and changes nothing if the move is not allowed.
func (that *Game) Place(position int) bool {
	if !that.canPlace(position) {
		return false
	}

	that.board[position] = that.turn
	that.updateGameStatus()

	return true
}

// canPlace - checks if the move is valid.
func (that *Game) canPlace(position int) bool {
	if that.outcome.IsFinished() {
		return false
	}

	if position < 0 || position >= len(that.board) {
		return false
	}

	return that.board[position] == entity.MarkEmpty
}

// updateGameStatus - checks the game status after a move.
func (that *Game) updateGameStatus() {
	that.outcome = that.board.DetermineOutcome()

	// the turn stays with the last mover once the round is over
	if !that.outcome.IsFinished() {
		that.turn = that.turn.Opponent()
	}
}

// AvailableCells - empty cells in index order.
func (that *Game) AvailableCells() []int {
	cells := make([]int, 0, len(that.board))
	for i, cell := range that.board {
		if cell == entity.MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   that.board,
		Turn:    that.turn,
		Outcome: that.outcome,
	}
}

func (that *Game) Turn() entity.Mark {
	return that.turn
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

func (that *Game) IsFinished() bool {
	return that.outcome.IsFinished()
}
