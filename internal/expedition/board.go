package expedition

import (
	"fmt"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/turn"
)

// View is a read-only look at one expedition from one side of the table.
type View struct {
	Color cards.Color
	Cards []cards.Card
	Score int
}

// Board holds one expedition per color.
type Board struct {
	expeditions [cards.NumColors]*Expedition
}

// NewBoard creates a board with an empty expedition for every color.
func NewBoard() *Board {
	b, _ := NewBoardFor(cards.Colors[:])
	return b
}

// NewBoardFor creates a board from an explicit color list, which must name
// every color exactly once.
func NewBoardFor(colors []cards.Color) (*Board, error) {
	if len(colors) != cards.NumColors {
		return nil, fmt.Errorf("expected %d colors, got %d", cards.NumColors, len(colors))
	}
	b := &Board{}
	for _, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("invalid color %d", c)
		}
		if b.expeditions[c] != nil {
			return nil, fmt.Errorf("duplicate color %s", c)
		}
		b.expeditions[c] = New(c)
	}
	return b, nil
}

// Expedition returns the expedition for color, or nil for an invalid color.
func (b *Board) Expedition(color cards.Color) *Expedition {
	if !color.Valid() {
		return nil
	}
	return b.expeditions[color]
}

// PlayerViews returns player's five expeditions.
func (b *Board) PlayerViews(player turn.Player) []View {
	views := make([]View, 0, cards.NumColors)
	for _, e := range b.expeditions {
		views = append(views, View{Color: e.color, Cards: e.Cards(player), Score: e.Score(player)})
	}
	return views
}

// SharedViews returns the combined view of both players' expeditions.
func (b *Board) SharedViews() []View {
	views := make([]View, 0, cards.NumColors)
	for _, e := range b.expeditions {
		views = append(views, View{Color: e.color, Cards: e.SharedCards(), Score: e.SharedScore()})
	}
	return views
}

// Total returns player's score summed over all colors.
func (b *Board) Total(player turn.Player) int {
	total := 0
	for _, e := range b.expeditions {
		total += e.Score(player)
	}
	return total
}

// SharedTotal sums the combined scores of all colors.
func (b *Board) SharedTotal() int {
	total := 0
	for _, e := range b.expeditions {
		total += e.SharedScore()
	}
	return total
}

// Count returns the number of cards placed by player.
func (b *Board) Count(player turn.Player) int {
	n := 0
	for _, e := range b.expeditions {
		n += e.Len(player)
	}
	return n
}

// SharedCount returns the number of cards on the board.
func (b *Board) SharedCount() int {
	n := 0
	for _, e := range b.expeditions {
		n += e.SharedLen()
	}
	return n
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	clone := &Board{}
	for i, e := range b.expeditions {
		clone.expeditions[i] = e.Clone()
	}
	return clone
}
