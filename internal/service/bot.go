package service

import (
	"github.com/rocketscienceinc/minigames/internal/apperror"
	"github.com/rocketscienceinc/minigames/internal/pkg"
	"github.com/rocketscienceinc/minigames/internal/tictactoe"
)

type BotService interface {
	MakeTurn(game *tictactoe.Game) (int, error)
}

type botService struct {
	rng pkg.RNG
}

func NewBotService(rng pkg.RNG) BotService {
	return &botService{rng: rng}
}

// MakeTurn - places the current mark on a random empty cell and returns that cell.
func (that *botService) MakeTurn(game *tictactoe.Game) (int, error) {
	if game.IsFinished() {
		return 0, apperror.ErrGameFinished
	}

	// an unfinished board always has an empty cell
	availableCells := game.AvailableCells()
	chosenCell := availableCells[that.rng.Intn(len(availableCells))]
	game.Place(chosenCell)

	return chosenCell, nil
}
