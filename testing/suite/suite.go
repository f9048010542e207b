package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/minigames/internal/pkg"
)

const (
	maxWaitDuration = 10 * time.Second
	seed            = 20241015
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Clock *clock.Mock
	RNG   pkg.RNG
}

// New - builds the shared fixture: a debug JSON logger, a mock clock that only moves when told to,
// and a deterministic RNG.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Clock:  clock.NewMock(),
		RNG:    pkg.NewSeededRNG(seed),
	}
}

// Advance - moves the mock clock forward one step at a time so every timer due in the window fires.
func (that *Suite) Advance(step time.Duration, steps int) {
	that.Helper()

	for range steps {
		that.Clock.Add(step)
	}
}
