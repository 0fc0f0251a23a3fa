package memory

import (
	"math/rand"

	"github.com/vovakirdan/memylon/internal/anim"
	"github.com/vovakirdan/memylon/internal/config"
)

// Board geometry in pixels.
const (
	Cols   = config.BoardCols
	Rows   = config.BoardRows
	Size   = config.BoardSize
	Width  = Cols * anim.CardW
	Height = Rows * anim.CardH
)

// noSelection marks that no card is waiting for its pair.
const noSelection = -1

// Card is one slot of the board.
//
// ID is a signed face value: positive shows the face, negative shows the
// back and zero means the card was matched and removed.
type Card struct {
	ID   int
	X, Y float64 // Top-left corner in pixels
	Anim *anim.Sequence
}

// Face returns the face value regardless of which side is up.
func (c Card) Face() int {
	if c.ID < 0 {
		return -c.ID
	}
	return c.ID
}

// Removed reports whether the card was matched.
func (c Card) Removed() bool {
	return c.ID == 0
}

// Board is the grid of cards, indexed row-major.
type Board struct {
	cards []Card
}

// Deal fills the board with Size/2 distinct faces drawn from 1..variations,
// two cards per face, all face down and in random order.
func (b *Board) Deal(rng *rand.Rand, variations int) {
	faces := make([]int, variations)
	for i := range faces {
		faces[i] = i + 1
	}
	Shuffle(rng, faces)

	cards := make([]Card, Size)
	for i := range cards {
		cards[i].ID = -faces[i/2]
	}
	Shuffle(rng, cards)

	for i := range cards {
		cards[i].X = float64(i%Cols) * anim.CardW
		cards[i].Y = float64(i/Cols) * anim.CardH
	}
	b.cards = cards
}

// Len returns the number of cards.
func (b *Board) Len() int {
	return len(b.cards)
}

// Card returns the card at index i.
func (b *Board) Card(i int) *Card {
	return &b.cards[i]
}

// IDs returns a copy of all card identities.
func (b *Board) IDs() []int {
	ids := make([]int, len(b.cards))
	for i, c := range b.cards {
		ids[i] = c.ID
	}
	return ids
}

// Cleared reports whether every card was matched.
func (b *Board) Cleared() bool {
	for _, c := range b.cards {
		if !c.Removed() {
			return false
		}
	}
	return true
}

// CellAt returns the index of the card under pixel (x, y), or -1 outside the board.
func CellAt(x, y int) int {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return -1
	}
	return x/anim.CardW + Cols*(y/anim.CardH)
}
