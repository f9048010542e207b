package memory

import (
	"testing"

	"github.com/rocketscienceinc/minigames/internal/apperror"
	"github.com/rocketscienceinc/minigames/internal/entity"
	"github.com/rocketscienceinc/minigames/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pairsOf groups tile positions by symbol.
func pairsOf(tiles []entity.Tile) map[string][]int {
	pairs := make(map[string][]int, len(tiles)/2)
	for _, tile := range tiles {
		pairs[tile.Symbol] = append(pairs[tile.Symbol], tile.Position)
	}
	return pairs
}

// mismatchedPair returns two positions holding different symbols.
func mismatchedPair(tiles []entity.Tile) (int, int) {
	for i := 1; i < len(tiles); i++ {
		if tiles[i].Symbol != tiles[0].Symbol {
			return 0, i
		}
	}
	panic("deck has a single symbol")
}

func newStartedEngine(t *testing.T, pairCount int) (*Engine, Snapshot) {
	t.Helper()

	engine := NewEngine(pkg.NewSeededRNG(1))
	snapshot, err := engine.NewGame(pairCount)
	require.NoError(t, err)

	return engine, snapshot
}

func TestEngine_NewGame(t *testing.T) {
	t.Run("Deals a valid shuffled deck with zeroed stats", func(t *testing.T) {
		// When: starting an easy game
		_, snapshot := newStartedEngine(t, Easy.PairCount())

		// Then: the deck holds 8 pairs, all hidden, nothing scored yet
		require.Len(t, snapshot.Tiles, 16)
		require.NoError(t, entity.Deck(snapshot.Tiles).Validate())
		for _, tile := range snapshot.Tiles {
			assert.Equal(t, entity.TileHidden, tile.State)
		}
		assert.Equal(t, entity.Stats{}, snapshot.Stats)
		assert.Equal(t, entity.NewRoundState(), snapshot.Round)
		assert.Equal(t, 8, snapshot.PairCount)
		assert.False(t, snapshot.TimerRunning)
		assert.False(t, snapshot.Complete)
		assert.Zero(t, snapshot.Stars)
	})

	t.Run("Same seed deals the same deck", func(t *testing.T) {
		// Given: two engines with the same seed
		first := NewEngine(pkg.NewSeededRNG(77))
		second := NewEngine(pkg.NewSeededRNG(77))

		// When: both deal a hard game
		a, err := first.NewGame(Hard.PairCount())
		require.NoError(t, err)
		b, err := second.NewGame(Hard.PairCount())
		require.NoError(t, err)

		// Then: the layouts match
		assert.Equal(t, a.Tiles, b.Tiles)
	})

	t.Run("Rejects a pair count below one", func(t *testing.T) {
		engine := NewEngine(pkg.NewSeededRNG(1))

		_, err := engine.NewGame(0)

		require.ErrorIs(t, err, apperror.ErrInvalidPairCount)
		assert.False(t, engine.IsStarted())
	})

	t.Run("Rejects more pairs than symbols", func(t *testing.T) {
		engine := NewEngine(pkg.NewSeededRNG(1))

		_, err := engine.NewGame(len(DefaultSymbols) + 1)

		require.ErrorIs(t, err, apperror.ErrNotEnoughSymbols)
	})

	t.Run("Rejects duplicate symbols", func(t *testing.T) {
		engine := NewEngine(pkg.NewSeededRNG(1))

		_, err := engine.NewGameWithSymbols([]string{"a", "b", "a"})

		require.ErrorIs(t, err, apperror.ErrDuplicateSymbol)
	})

	t.Run("Clears the previous game", func(t *testing.T) {
		// Given: a game with a mismatch pending
		engine, snapshot := newStartedEngine(t, 4)
		a, b := mismatchedPair(snapshot.Tiles)
		_, err := engine.Reveal(a)
		require.NoError(t, err)
		_, err = engine.Reveal(b)
		require.NoError(t, err)
		require.True(t, engine.IsLocked())

		// When: dealing again
		snapshot, err = engine.NewGame(4)
		require.NoError(t, err)

		// Then: everything is back to the initial state
		assert.False(t, engine.IsLocked())
		assert.False(t, engine.TimerRunning())
		assert.Equal(t, entity.Stats{}, snapshot.Stats)
	})
}

func TestEngine_Reveal(t *testing.T) {
	t.Run("Fails before a game is dealt", func(t *testing.T) {
		engine := NewEngine(pkg.NewSeededRNG(1))

		result, err := engine.Reveal(0)

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Equal(t, RevealIgnored, result)
		assert.False(t, engine.Tick())
		assert.False(t, engine.ResolveMismatch())
	})

	t.Run("First reveal starts the timer without scoring", func(t *testing.T) {
		// Given: a fresh game
		engine, _ := newStartedEngine(t, 4)
		require.False(t, engine.Tick())

		// When: revealing one tile
		result, err := engine.Reveal(3)
		require.NoError(t, err)

		// Then: the tile is revealed and remembered, no move is counted
		snapshot := engine.Snapshot()
		assert.Equal(t, RevealFirst, result)
		assert.Equal(t, entity.TileRevealed, snapshot.Tiles[3].State)
		assert.Equal(t, 3, snapshot.Round.FirstRevealed)
		assert.Equal(t, 0, snapshot.Stats.MoveCount)
		assert.True(t, snapshot.TimerRunning)
	})

	t.Run("Clicking the sole revealed tile again is ignored", func(t *testing.T) {
		engine, _ := newStartedEngine(t, 4)
		_, err := engine.Reveal(2)
		require.NoError(t, err)
		before := engine.Snapshot()

		result, err := engine.Reveal(2)

		require.NoError(t, err)
		assert.Equal(t, RevealIgnored, result)
		assert.Equal(t, before, engine.Snapshot())
	})

	t.Run("Out of range positions are ignored", func(t *testing.T) {
		engine, before := newStartedEngine(t, 4)

		for _, position := range []int{-1, 8, 100} {
			result, err := engine.Reveal(position)
			require.NoError(t, err)
			assert.Equal(t, RevealIgnored, result)
		}

		assert.Equal(t, before, engine.Snapshot())
	})

	t.Run("A matching pair is scored and locked in", func(t *testing.T) {
		// Given: a fresh game and the positions of one pair
		engine, snapshot := newStartedEngine(t, 4)
		pair := pairsOf(snapshot.Tiles)[snapshot.Tiles[0].Symbol]

		// When: revealing both tiles of the pair
		_, err := engine.Reveal(pair[0])
		require.NoError(t, err)
		result, err := engine.Reveal(pair[1])
		require.NoError(t, err)

		// Then: both are matched, one move and one pair are counted, the round is open again
		snapshot = engine.Snapshot()
		assert.Equal(t, RevealMatch, result)
		assert.Equal(t, entity.TileMatched, snapshot.Tiles[pair[0]].State)
		assert.Equal(t, entity.TileMatched, snapshot.Tiles[pair[1]].State)
		assert.Equal(t, entity.Stats{MoveCount: 1, PairsFound: 1, Score: 1295}, snapshot.Stats)
		assert.Equal(t, entity.NewRoundState(), snapshot.Round)

		// Then: matched tiles can no longer be revealed
		result, err = engine.Reveal(pair[0])
		require.NoError(t, err)
		assert.Equal(t, RevealIgnored, result)
	})

	t.Run("A mismatch locks the round until resolved", func(t *testing.T) {
		// Given: a fresh game and two different tiles
		engine, snapshot := newStartedEngine(t, 4)
		a, b := mismatchedPair(snapshot.Tiles)

		// When: revealing both
		_, err := engine.Reveal(a)
		require.NoError(t, err)
		result, err := engine.Reveal(b)
		require.NoError(t, err)

		// Then: the move counts and the engine is locked with both tiles showing
		snapshot = engine.Snapshot()
		assert.Equal(t, RevealMismatch, result)
		assert.True(t, snapshot.Round.Locked)
		assert.Equal(t, 1, snapshot.Stats.MoveCount)
		assert.Equal(t, 0, snapshot.Stats.PairsFound)
		assert.Equal(t, entity.TileRevealed, snapshot.Tiles[a].State)
		assert.Equal(t, entity.TileRevealed, snapshot.Tiles[b].State)

		// Then: reveals are ignored while locked
		other := 0
		for other == a || other == b {
			other++
		}
		result, err = engine.Reveal(other)
		require.NoError(t, err)
		assert.Equal(t, RevealIgnored, result)

		// When: the mismatch is resolved
		require.True(t, engine.ResolveMismatch())

		// Then: both tiles are hidden and the round is open
		snapshot = engine.Snapshot()
		assert.Equal(t, entity.TileHidden, snapshot.Tiles[a].State)
		assert.Equal(t, entity.TileHidden, snapshot.Tiles[b].State)
		assert.Equal(t, entity.NewRoundState(), snapshot.Round)
		assert.False(t, engine.ResolveMismatch())
	})

	t.Run("Finding every pair completes the game", func(t *testing.T) {
		// Given: a fresh game with four pairs
		engine, snapshot := newStartedEngine(t, 4)

		// When: revealing every pair without a miss
		var result RevealResult
		for _, pair := range pairsOf(snapshot.Tiles) {
			_, err := engine.Reveal(pair[0])
			require.NoError(t, err)
			result, err = engine.Reveal(pair[1])
			require.NoError(t, err)
		}

		// Then: the game is complete with a perfect rating and a stopped clock
		snapshot = engine.Snapshot()
		assert.Equal(t, RevealComplete, result)
		assert.True(t, snapshot.Complete)
		assert.False(t, snapshot.TimerRunning)
		assert.Equal(t, 4, snapshot.Stats.PairsFound)
		assert.Equal(t, 4, snapshot.Stats.MoveCount)
		assert.Equal(t, 5, snapshot.Stars)
		assert.False(t, engine.Tick())

		// Then: further reveals are ignored
		result, err := engine.Reveal(0)
		require.NoError(t, err)
		assert.Equal(t, RevealIgnored, result)
	})
}

func TestEngine_Tick(t *testing.T) {
	// Given: a game whose clock was started by a reveal
	engine, snapshot := newStartedEngine(t, 4)
	a, b := mismatchedPair(snapshot.Tiles)
	_, err := engine.Reveal(a)
	require.NoError(t, err)

	// When: sixty seconds pass
	for range 60 {
		require.True(t, engine.Tick())
	}

	// Then: elapsed time advanced but the score waits for the next move
	assert.Equal(t, 60, engine.Snapshot().Stats.ElapsedSeconds)
	assert.Equal(t, 0, engine.Snapshot().Stats.Score)

	// When: completing the move
	_, err = engine.Reveal(b)
	require.NoError(t, err)

	// Then: the score reflects one move at sixty seconds
	assert.Equal(t, Score(1, 60), engine.Snapshot().Stats.Score)
}

func TestEngine_RandomPlayInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		engine := NewEngine(pkg.NewSeededRNG(seed))
		_, err := engine.NewGame(6)
		require.NoError(t, err)

		picker := pkg.NewSeededRNG(seed + 1000)
		previous := engine.Snapshot().Stats

		for step := 0; step < 2000 && !engine.IsComplete(); step++ {
			result, err := engine.Reveal(picker.Intn(14) - 1)
			require.NoError(t, err)

			current := engine.Snapshot().Stats

			// pairsFound never decreases and never exceeds the pair count
			require.GreaterOrEqual(t, current.PairsFound, previous.PairsFound)
			require.LessOrEqual(t, current.PairsFound, 6)

			// moveCount moves exactly once per completed pair of reveals
			switch result {
			case RevealMatch, RevealMismatch, RevealComplete:
				require.Equal(t, previous.MoveCount+1, current.MoveCount)
			default:
				require.Equal(t, previous.MoveCount, current.MoveCount)
			}

			// at most two tiles are revealed at once
			revealed := 0
			for _, tile := range engine.Snapshot().Tiles {
				if tile.State == entity.TileRevealed {
					revealed++
				}
			}
			require.LessOrEqual(t, revealed, 2)

			if result == RevealMismatch {
				require.True(t, engine.ResolveMismatch())
			}

			previous = current
		}

		require.True(t, engine.IsComplete(), "seed %d did not finish", seed)
	}
}
