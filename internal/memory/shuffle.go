package memory

import "github.com/rocketscienceinc/minigames/internal/pkg"

// Shuffle - Fisher-Yates: walk from the last index down to 1 and swap with a uniform index in [0, i].
func Shuffle[T any](items []T, rng pkg.RNG) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
