package service

import (
	"github.com/rocketscienceinc/minigames/internal/entity"
	"github.com/rocketscienceinc/minigames/internal/pkg"
)

// MemorySolver plays the memory game with perfect recall of every tile it has seen.
type MemorySolver struct {
	rng  pkg.RNG
	seen map[int]string
}

func NewMemorySolver(rng pkg.RNG) *MemorySolver {
	return &MemorySolver{
		rng:  rng,
		seen: make(map[int]string),
	}
}

// Observe - remembers revealed symbols and forgets matched tiles.
func (that *MemorySolver) Observe(tiles []entity.Tile) {
	for _, tile := range tiles {
		switch tile.State {
		case entity.TileRevealed:
			that.seen[tile.Position] = tile.Symbol
		case entity.TileMatched:
			delete(that.seen, tile.Position)
		}
	}
}

// Forget - drops everything remembered, for a new deal.
func (that *MemorySolver) Forget() {
	clear(that.seen)
}

// Pick - chooses the next tile to reveal. It returns entity.NoTile if nothing can be revealed.
func (that *MemorySolver) Pick(tiles []entity.Tile) int {
	revealed := entity.NoTile
	for _, tile := range tiles {
		if tile.State == entity.TileRevealed {
			revealed = tile.Position
			break
		}
	}

	if revealed == entity.NoTile {
		if position, ok := that.knownPair(tiles); ok {
			return position
		}
		return that.unseen(tiles, entity.NoTile)
	}

	if partner, ok := that.partnerOf(tiles, revealed); ok {
		return partner
	}

	return that.unseen(tiles, revealed)
}

// knownPair - a hidden tile whose partner has also been seen.
func (that *MemorySolver) knownPair(tiles []entity.Tile) (int, bool) {
	bySymbol := make(map[string]int, len(that.seen))
	for _, tile := range tiles {
		symbol, ok := that.seen[tile.Position]
		if !ok || tile.State != entity.TileHidden {
			continue
		}

		if _, found := bySymbol[symbol]; found {
			return tile.Position, true
		}
		bySymbol[symbol] = tile.Position
	}

	return entity.NoTile, false
}

func (that *MemorySolver) partnerOf(tiles []entity.Tile, revealed int) (int, bool) {
	symbol := tiles[revealed].Symbol
	for _, tile := range tiles {
		if tile.Position == revealed || tile.State != entity.TileHidden {
			continue
		}
		if seen, ok := that.seen[tile.Position]; ok && seen == symbol {
			return tile.Position, true
		}
	}

	return entity.NoTile, false
}

// unseen - a random hidden tile never seen before, or any hidden tile once all have been seen.
func (that *MemorySolver) unseen(tiles []entity.Tile, exclude int) int {
	var fresh, hidden []int
	for _, tile := range tiles {
		if tile.State != entity.TileHidden || tile.Position == exclude {
			continue
		}

		hidden = append(hidden, tile.Position)
		if _, ok := that.seen[tile.Position]; !ok {
			fresh = append(fresh, tile.Position)
		}
	}

	switch {
	case len(fresh) > 0:
		return fresh[that.rng.Intn(len(fresh))]
	case len(hidden) > 0:
		return hidden[that.rng.Intn(len(hidden))]
	default:
		return entity.NoTile
	}
}
