package entity

import "fmt"

type TileState string

const (
	TileHidden   TileState = "hidden"
	TileRevealed TileState = "revealed"
	TileMatched  TileState = "matched"
)

// NoTile marks an empty slot in RoundState.
const NoTile = -1

type Tile struct {
	Symbol   string    `json:"symbol"`
	Position int       `json:"position"`
	State    TileState `json:"state"`
}

type Deck []Tile

// RoundState tracks the tiles revealed in the pair currently being played.
type RoundState struct {
	FirstRevealed  int  `json:"first_revealed"`
	SecondRevealed int  `json:"second_revealed"`
	Locked         bool `json:"locked"`
}

type Stats struct {
	MoveCount      int `json:"moves"`
	ElapsedSeconds int `json:"elapsed_seconds"`
	PairsFound     int `json:"pairs_found"`
	Score          int `json:"score"`
}

func NewRoundState() RoundState {
	return RoundState{FirstRevealed: NoTile, SecondRevealed: NoTile}
}

// NewDeck - lays out every symbol twice, in order, all hidden.
func NewDeck(symbols []string) Deck {
	deck := make(Deck, 0, 2*len(symbols))
	for _, symbol := range symbols {
		deck = append(deck, Tile{Symbol: symbol, State: TileHidden})
	}
	for _, symbol := range symbols {
		deck = append(deck, Tile{Symbol: symbol, State: TileHidden})
	}

	deck.Renumber()

	return deck
}

// Renumber - keeps each tile's Position equal to its index after a permutation.
func (that Deck) Renumber() {
	for i := range that {
		that[i].Position = i
	}
}

// Validate - checks that every symbol appears exactly twice and positions match indexes.
func (that Deck) Validate() error {
	counts := make(map[string]int, len(that)/2)
	for i, tile := range that {
		if tile.Position != i {
			return fmt.Errorf("tile at index %d has position %d", i, tile.Position)
		}
		counts[tile.Symbol]++
	}

	for symbol, count := range counts {
		if count != 2 {
			return fmt.Errorf("symbol %q appears %d times", symbol, count)
		}
	}

	return nil
}

func (that Deck) Clone() Deck {
	out := make(Deck, len(that))
	copy(out, that)
	return out
}

func (that Deck) InRange(position int) bool {
	return position >= 0 && position < len(that)
}
