package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/minigames/internal/config"
	"github.com/rocketscienceinc/minigames/internal/memory"
	"github.com/rocketscienceinc/minigames/internal/pkg"
	"github.com/rocketscienceinc/minigames/internal/service"
	"github.com/rocketscienceinc/minigames/internal/session"
	"github.com/rocketscienceinc/minigames/internal/tictactoe"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	err := Play(ctx, logger, clock.New(), pkg.NewRNG(), conf)
	if errors.Is(err, context.Canceled) {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	return err
}

// Play - runs the configured self-play rounds of both games.
func Play(ctx context.Context, logger *slog.Logger, clk clock.Clock, rng pkg.RNG, conf *config.Config) error {
	log := logger.With("component", "app")

	gameplay := service.NewGamePlayService(logger, service.NewBotService(rng), service.NewBotService(rng))

	for round := 1; round <= conf.Memory.Rounds; round++ {
		if err := playMemoryRound(ctx, logger, clk, rng, gameplay, conf); err != nil {
			return fmt.Errorf("memory round %d: %w", round, err)
		}
	}

	for round := 1; round <= conf.TicTacToe.Rounds; round++ {
		outcome, err := gameplay.PlayTicTacToe(ctx, tictactoe.NewGame())
		if err != nil {
			return fmt.Errorf("tic-tac-toe round %d: %w", round, err)
		}

		log.Info("tic-tac-toe round finished",
			"round", round,
			"status", outcome.Status,
			"winner", outcome.Winner,
			"line", outcome.Line,
		)
	}

	return nil
}

func playMemoryRound(
	ctx context.Context,
	logger *slog.Logger,
	clk clock.Clock,
	rng pkg.RNG,
	gameplay service.GamePlayService,
	conf *config.Config,
) error {
	sess := session.NewMemorySession(logger, clk, memory.NewEngine(rng), session.MemoryOptions{
		SettleDelay:  conf.Memory.SettleDelay,
		TickInterval: conf.Memory.TickInterval,
	})
	defer sess.Close()

	if _, err := sess.NewGame(conf.Memory.PairCount()); err != nil {
		return err
	}

	snapshot, err := gameplay.PlayMemory(ctx, sess, service.NewMemorySolver(rng))
	if err != nil {
		return err
	}

	logger.Info("memory round finished",
		"component", "app",
		"session", sess.ID(),
		"difficulty", conf.Memory.Difficulty,
		"moves", snapshot.Stats.MoveCount,
		"elapsed", snapshot.Stats.ElapsedSeconds,
		"score", snapshot.Stats.Score,
		"stars", snapshot.Stars,
	)

	return nil
}
