package memory

import (
	"fmt"

	"github.com/rocketscienceinc/minigames/internal/apperror"
	"github.com/rocketscienceinc/minigames/internal/entity"
	"github.com/rocketscienceinc/minigames/internal/pkg"
)

type RevealResult int

const (
	RevealIgnored RevealResult = iota
	RevealFirst
	RevealMatch
	RevealMismatch
	RevealComplete
)

func (that RevealResult) String() string {
	switch that {
	case RevealFirst:
		return "first"
	case RevealMatch:
		return "match"
	case RevealMismatch:
		return "mismatch"
	case RevealComplete:
		return "complete"
	default:
		return "ignored"
	}
}

// Snapshot is a copy of the engine state; mutating it does not affect the engine.
type Snapshot struct {
	Tiles        []entity.Tile     `json:"tiles"`
	Stats        entity.Stats      `json:"stats"`
	Round        entity.RoundState `json:"round"`
	PairCount    int               `json:"pair_count"`
	TimerRunning bool              `json:"timer_running"`
	Complete     bool              `json:"complete"`
	Stars        int               `json:"stars,omitempty"`
}

// Engine is the memory game state machine. It is not safe for concurrent use.
type Engine struct {
	rng pkg.RNG

	deck      entity.Deck
	round     entity.RoundState
	stats     entity.Stats
	pairCount int

	started      bool
	timerRunning bool
	complete     bool
}

func NewEngine(rng pkg.RNG) *Engine {
	return &Engine{
		rng:   rng,
		round: entity.NewRoundState(),
	}
}

// NewGame - deals pairCount symbols from DefaultSymbols.
func (that *Engine) NewGame(pairCount int) (Snapshot, error) {
	if pairCount < 1 {
		return Snapshot{}, fmt.Errorf("%w: got %d", apperror.ErrInvalidPairCount, pairCount)
	}

	if pairCount > len(DefaultSymbols) {
		return Snapshot{}, fmt.Errorf("%w: want %d, have %d", apperror.ErrNotEnoughSymbols, pairCount, len(DefaultSymbols))
	}

	return that.NewGameWithSymbols(DefaultSymbols[:pairCount])
}

// NewGameWithSymbols - deals one pair per symbol, shuffles, and resets stats and round state.
func (that *Engine) NewGameWithSymbols(symbols []string) (Snapshot, error) {
	if len(symbols) == 0 {
		return Snapshot{}, fmt.Errorf("%w: got 0", apperror.ErrInvalidPairCount)
	}

	seen := make(map[string]struct{}, len(symbols))
	for _, symbol := range symbols {
		if _, ok := seen[symbol]; ok {
			return Snapshot{}, fmt.Errorf("%w: %q", apperror.ErrDuplicateSymbol, symbol)
		}
		seen[symbol] = struct{}{}
	}

	deck := entity.NewDeck(symbols)
	Shuffle(deck, that.rng)
	deck.Renumber()

	that.deck = deck
	that.pairCount = len(symbols)
	that.round = entity.NewRoundState()
	that.stats = entity.Stats{}
	that.started = true
	that.timerRunning = false
	that.complete = false

	return that.Snapshot(), nil
}

// Reveal - flips the tile at position. Invalid or ill-timed reveals are ignored, not errors.
func (that *Engine) Reveal(position int) (RevealResult, error) {
	if !that.started {
		return RevealIgnored, apperror.ErrGameIsNotStarted
	}

	if that.complete || that.round.Locked || !that.deck.InRange(position) {
		return RevealIgnored, nil
	}

	// matched tiles and the sole revealed tile are not hidden
	tile := &that.deck[position]
	if tile.State != entity.TileHidden {
		return RevealIgnored, nil
	}

	// the clock starts on the first accepted reveal of a game
	that.timerRunning = true

	tile.State = entity.TileRevealed

	if that.round.FirstRevealed == entity.NoTile {
		that.round.FirstRevealed = position
		return RevealFirst, nil
	}

	that.round.SecondRevealed = position
	that.stats.MoveCount++
	that.stats.Score = Score(that.stats.MoveCount, that.stats.ElapsedSeconds)

	first := &that.deck[that.round.FirstRevealed]
	if first.Symbol != tile.Symbol {
		that.round.Locked = true
		return RevealMismatch, nil
	}

	first.State = entity.TileMatched
	tile.State = entity.TileMatched
	that.stats.PairsFound++
	that.round = entity.NewRoundState()

	if that.stats.PairsFound == that.pairCount {
		that.complete = true
		that.timerRunning = false
		return RevealComplete, nil
	}

	return RevealMatch, nil
}

// ResolveMismatch - hides a mismatched pair and unlocks the round. Reports whether anything changed.
func (that *Engine) ResolveMismatch() bool {
	if !that.round.Locked {
		return false
	}

	that.deck[that.round.FirstRevealed].State = entity.TileHidden
	that.deck[that.round.SecondRevealed].State = entity.TileHidden
	that.round = entity.NewRoundState()

	return true
}

// Tick - advances the elapsed time by one second while the timer runs.
func (that *Engine) Tick() bool {
	if !that.timerRunning {
		return false
	}

	that.stats.ElapsedSeconds++

	return true
}

func (that *Engine) Snapshot() Snapshot {
	snapshot := Snapshot{
		Tiles:        that.deck.Clone(),
		Stats:        that.stats,
		Round:        that.round,
		PairCount:    that.pairCount,
		TimerRunning: that.timerRunning,
		Complete:     that.complete,
	}

	if that.complete {
		snapshot.Stars = StarRating(that.stats.MoveCount, that.pairCount)
	}

	return snapshot
}

func (that *Engine) IsStarted() bool {
	return that.started
}

func (that *Engine) IsLocked() bool {
	return that.round.Locked
}

func (that *Engine) IsComplete() bool {
	return that.complete
}

func (that *Engine) TimerRunning() bool {
	return that.timerRunning
}
