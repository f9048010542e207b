package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/rocketscienceinc/minigames/internal/apperror"
	"github.com/rocketscienceinc/minigames/internal/memory"
	"github.com/rocketscienceinc/minigames/internal/pkg"
)

const (
	DefaultSettleDelay  = time.Second
	DefaultTickInterval = time.Second
)

type MemoryOptions struct {
	// SettleDelay is how long a mismatched pair stays face up.
	SettleDelay time.Duration
	// TickInterval is the period of the elapsed-seconds clock.
	TickInterval time.Duration
	// OnChange receives a snapshot after every mutation. It is called without the session lock held.
	OnChange func(memory.Snapshot)
}

// MemorySession drives a memory.Engine from a clock: the 1 Hz elapsed timer and the settle delay
// that hides mismatched tiles. Every callback is bound to the game that scheduled it and does nothing
// once a newer game has been dealt.
type MemorySession struct {
	mu sync.Mutex

	id     string
	logger *slog.Logger
	clock  clock.Clock
	engine *memory.Engine

	settleDelay  time.Duration
	tickInterval time.Duration
	onChange     func(memory.Snapshot)

	generation  uint64
	settleTimer *clock.Timer
	stopTicker  context.CancelFunc
	settled     chan struct{}
	closed      bool
}

func NewMemorySession(logger *slog.Logger, clk clock.Clock, engine *memory.Engine, opts MemoryOptions) *MemorySession {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}

	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}

	id := pkg.GenerateSessionID()

	settled := make(chan struct{})
	close(settled)

	return &MemorySession{
		id:     id,
		logger: logger.With("component", "memory-session", "session", id),
		clock:  clk,
		engine: engine,

		settleDelay:  opts.SettleDelay,
		tickInterval: opts.TickInterval,
		onChange:     opts.OnChange,

		settled: settled,
	}
}

func (that *MemorySession) ID() string {
	return that.id
}

// NewGame - cancels everything pending from the previous game and deals a new one.
func (that *MemorySession) NewGame(pairCount int) (memory.Snapshot, error) {
	log := that.logger.With("method", "NewGame")

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return memory.Snapshot{}, apperror.ErrSessionClosed
	}

	that.cancelPendingLocked()
	generation := that.generation

	snapshot, err := that.engine.NewGame(pairCount)
	that.mu.Unlock()

	if err != nil {
		return memory.Snapshot{}, fmt.Errorf("failed to deal memory game: %w", err)
	}

	log.Debug("game dealt", "pairs", pairCount, "generation", generation)
	that.notify(snapshot)

	return snapshot, nil
}

// Reveal - flips a tile and schedules whatever the result needs: the elapsed timer after the first
// reveal, the settle delay after a mismatch. The snapshot is taken atomically with the reveal.
func (that *MemorySession) Reveal(position int) (memory.RevealResult, memory.Snapshot, error) {
	log := that.logger.With("method", "Reveal")

	that.mu.Lock()
	if that.closed {
		that.mu.Unlock()
		return memory.RevealIgnored, memory.Snapshot{}, apperror.ErrSessionClosed
	}

	result, err := that.engine.Reveal(position)
	if err != nil {
		that.mu.Unlock()
		return memory.RevealIgnored, memory.Snapshot{}, fmt.Errorf("failed to reveal tile %d: %w", position, err)
	}

	if that.engine.TimerRunning() && that.stopTicker == nil {
		that.startTickerLocked()
	}

	switch result {
	case memory.RevealMismatch:
		that.scheduleSettleLocked()
	case memory.RevealComplete:
		that.stopTickerLocked()
	}

	snapshot := that.engine.Snapshot()
	that.mu.Unlock()

	if result == memory.RevealIgnored {
		return result, snapshot, nil
	}

	log.Debug("tile revealed", "position", position, "result", result.String(), "moves", snapshot.Stats.MoveCount)

	if result == memory.RevealComplete {
		log.Info("game complete",
			"moves", snapshot.Stats.MoveCount,
			"seconds", snapshot.Stats.ElapsedSeconds,
			"score", snapshot.Stats.Score,
			"stars", snapshot.Stars,
		)
	}

	that.notify(snapshot)

	return result, snapshot, nil
}

// Settled - returns a channel that is closed once no mismatch is waiting to be hidden.
func (that *MemorySession) Settled() <-chan struct{} {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.settled
}

func (that *MemorySession) Snapshot() memory.Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Snapshot()
}

// Close - cancels pending callbacks. The session rejects further games and reveals.
func (that *MemorySession) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.cancelPendingLocked()
	that.closed = true
}

func (that *MemorySession) cancelPendingLocked() {
	that.generation++

	if that.settleTimer != nil {
		that.settleTimer.Stop()
		that.settleTimer = nil
	}

	that.stopTickerLocked()
	that.releaseSettledLocked()
}

func (that *MemorySession) startTickerLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	that.stopTicker = cancel

	ticker := that.clock.Ticker(that.tickInterval)
	go that.runTicker(ctx, that.generation, ticker)
}

func (that *MemorySession) stopTickerLocked() {
	if that.stopTicker != nil {
		that.stopTicker()
		that.stopTicker = nil
	}
}

func (that *MemorySession) runTicker(ctx context.Context, generation uint64, ticker *clock.Ticker) {
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !that.onTick(generation) {
				return
			}
		}
	}
}

// onTick - reports whether the ticker should keep running.
func (that *MemorySession) onTick(generation uint64) bool {
	that.mu.Lock()
	if generation != that.generation {
		that.mu.Unlock()
		return false
	}

	if !that.engine.Tick() {
		that.mu.Unlock()
		return false
	}

	snapshot := that.engine.Snapshot()
	that.mu.Unlock()

	that.notify(snapshot)

	return true
}

func (that *MemorySession) scheduleSettleLocked() {
	that.settled = make(chan struct{})

	generation := that.generation
	that.settleTimer = that.clock.AfterFunc(that.settleDelay, func() {
		that.onSettle(generation)
	})
}

func (that *MemorySession) onSettle(generation uint64) {
	log := that.logger.With("method", "onSettle")

	that.mu.Lock()
	if generation != that.generation {
		that.mu.Unlock()
		log.Debug("stale settle callback ignored", "generation", generation)
		return
	}

	that.settleTimer = nil
	resolved := that.engine.ResolveMismatch()
	that.releaseSettledLocked()
	snapshot := that.engine.Snapshot()
	that.mu.Unlock()

	if resolved {
		that.notify(snapshot)
	}
}

// releaseSettledLocked - closes the settled channel unless it is already closed.
func (that *MemorySession) releaseSettledLocked() {
	select {
	case <-that.settled:
	default:
		close(that.settled)
	}
}

func (that *MemorySession) notify(snapshot memory.Snapshot) {
	if that.onChange != nil {
		that.onChange(snapshot)
	}
}
