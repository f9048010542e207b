package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeededRNG(t *testing.T) {
	t.Run("Same seed yields the same sequence", func(t *testing.T) {
		// Given: two generators with the same seed
		first := NewSeededRNG(42)
		second := NewSeededRNG(42)

		// When: drawing a sequence from both
		for i := 0; i < 100; i++ {
			// Then: every value should be identical
			require.Equal(t, first.Intn(1000), second.Intn(1000))
		}
	})

	t.Run("Values stay in range", func(t *testing.T) {
		// Given: a seeded generator
		rng := NewSeededRNG(7)

		// When: drawing many values
		for i := 0; i < 1000; i++ {
			v := rng.Intn(6)

			// Then: every value should be in [0, 6)
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 6)
		}
	})
}

func TestGenerateSessionID(t *testing.T) {
	// When: generating two session ids
	first := GenerateSessionID()
	second := GenerateSessionID()

	// Then: they should be non-empty and distinct
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
