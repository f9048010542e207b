package memory

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/minigames/internal/apperror"
)

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DefaultSymbols is the symbol pool NewGame draws from. The first twelve are the hard set;
// easy and medium use its first eight and ten.
var DefaultSymbols = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🦁", "🐮", "🐷", "🐸",
	"🐵", "🐔", "🐧", "🐦", "🐤", "🦆", "🦉", "🐺", "🐗", "🐴", "🦄", "🐝",
}

func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(value))); d {
	case Easy, Medium, Hard:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// PairCount - number of pairs dealt at this difficulty.
func (that Difficulty) PairCount() int {
	switch that {
	case Medium:
		return 10
	case Hard:
		return 12
	default:
		return 8
	}
}
