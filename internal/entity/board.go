package entity

// Mark is the content of a single tic-tac-toe cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWon     Status = "won"
	StatusDraw    Status = "draw"
)

const BoardSize = 9

// WinCombos - all winning triples: rows, then columns, then diagonals. The order is the scan order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

type Board [BoardSize]Mark

// Outcome of a round. Winner and Line are only meaningful when Status is StatusWon.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
	Line   [3]int `json:"line,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status != StatusOngoing
}

// WinningLine - returns the first triple, in WinCombos order, whose three cells hold the same mark.
func (that *Board) WinningLine() (Mark, [3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != MarkEmpty && a == b && b == c {
			return a, combo, true
		}
	}

	return MarkEmpty, [3]int{}, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

// DetermineOutcome - a win takes precedence over a full board.
func (that *Board) DetermineOutcome() Outcome {
	if winner, line, ok := that.WinningLine(); ok {
		return Outcome{Status: StatusWon, Winner: winner, Line: line}
	}

	// the game will continue until all the squares are full
	if that.IsFull() {
		return Outcome{Status: StatusDraw}
	}

	return Outcome{Status: StatusOngoing}
}
