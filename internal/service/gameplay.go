package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/minigames/internal/entity"
	"github.com/rocketscienceinc/minigames/internal/memory"
	"github.com/rocketscienceinc/minigames/internal/tictactoe"
)

var ErrSolverStuck = errors.New("solver has no tile to reveal")

type GamePlayService interface {
	PlayMemory(ctx context.Context, session MemorySession, solver *MemorySolver) (memory.Snapshot, error)
	PlayTicTacToe(ctx context.Context, game *tictactoe.Game) (entity.Outcome, error)
}

// MemorySession is the part of session.MemorySession the autoplayer needs.
type MemorySession interface {
	Reveal(position int) (memory.RevealResult, memory.Snapshot, error)
	Snapshot() memory.Snapshot
	Settled() <-chan struct{}
}

type gamePlayService struct {
	logger *slog.Logger

	botX BotService
	botO BotService
}

func NewGamePlayService(logger *slog.Logger, botX, botO BotService) GamePlayService {
	return &gamePlayService{
		logger: logger.With("component", "gameplay"),
		botX:   botX,
		botO:   botO,
	}
}

// PlayMemory - reveals tiles chosen by the solver until the game is complete, waiting out every mismatch.
func (that *gamePlayService) PlayMemory(ctx context.Context, session MemorySession, solver *MemorySolver) (memory.Snapshot, error) {
	log := that.logger.With("method", "PlayMemory")

	snapshot := session.Snapshot()
	for !snapshot.Complete {
		if err := ctx.Err(); err != nil {
			return snapshot, fmt.Errorf("memory game interrupted: %w", err)
		}

		select {
		case <-ctx.Done():
			return snapshot, fmt.Errorf("memory game interrupted: %w", ctx.Err())
		case <-session.Settled():
		}

		snapshot = session.Snapshot()

		position := solver.Pick(snapshot.Tiles)
		if position == entity.NoTile {
			return snapshot, ErrSolverStuck
		}

		result, revealed, err := session.Reveal(position)
		if err != nil {
			return snapshot, fmt.Errorf("failed to reveal tile: %w", err)
		}

		snapshot = revealed
		solver.Observe(snapshot.Tiles)

		log.Debug("solver move", "position", position, "result", result.String())
	}

	return snapshot, nil
}

// PlayTicTacToe - lets the two bots alternate until the round is over.
func (that *gamePlayService) PlayTicTacToe(ctx context.Context, game *tictactoe.Game) (entity.Outcome, error) {
	log := that.logger.With("method", "PlayTicTacToe")

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return game.Outcome(), fmt.Errorf("tic-tac-toe game interrupted: %w", err)
		}

		bot := that.botX
		if game.Turn() == entity.MarkO {
			bot = that.botO
		}

		mark := game.Turn()
		cell, err := bot.MakeTurn(game)
		if err != nil {
			return game.Outcome(), fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.Debug("bot move", "mark", mark, "cell", cell)
	}

	return game.Outcome(), nil
}
