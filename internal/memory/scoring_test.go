package memory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name           string
		moveCount      int
		elapsedSeconds int
		expected       int
	}{
		{name: "no moves, no time", moveCount: 0, elapsedSeconds: 0, expected: 1300},
		{name: "ten moves in a minute", moveCount: 10, elapsedSeconds: 60, expected: 1190},
		{name: "move penalty eats the base", moveCount: 200, elapsedSeconds: 0, expected: 300},
		{name: "time bonus expires at 300 seconds", moveCount: 0, elapsedSeconds: 300, expected: 1000},
		{name: "time bonus never goes negative", moveCount: 0, elapsedSeconds: 500, expected: 1000},
		{name: "floored at zero", moveCount: 300, elapsedSeconds: 400, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.moveCount, tt.elapsedSeconds))
		})
	}
}

func TestStarsForEfficiency(t *testing.T) {
	tests := []struct {
		efficiency float64
		expected   int
	}{
		{efficiency: 0, expected: 5},
		{efficiency: 1, expected: 5},
		{efficiency: 1.5, expected: 5},
		{efficiency: 1.51, expected: 4},
		{efficiency: 2, expected: 4},
		{efficiency: 2.5, expected: 3},
		{efficiency: 2.75, expected: 2},
		{efficiency: 3, expected: 2},
		{efficiency: 3.01, expected: 1},
		{efficiency: math.Inf(1), expected: 1},
		{efficiency: math.NaN(), expected: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, StarsForEfficiency(tt.efficiency), "efficiency %v", tt.efficiency)
	}
}

func TestStarRating(t *testing.T) {
	t.Run("Uses moves per pair", func(t *testing.T) {
		// 12 moves over 8 pairs is exactly 1.5
		assert.Equal(t, 5, StarRating(12, 8))
		// 20 moves over 8 pairs is exactly 2.5
		assert.Equal(t, 3, StarRating(20, 8))
		assert.Equal(t, 1, StarRating(40, 8))
	})

	t.Run("Returns one star without pairs", func(t *testing.T) {
		assert.Equal(t, 1, StarRating(0, 0))
		assert.Equal(t, 1, StarRating(5, -1))
	})
}
