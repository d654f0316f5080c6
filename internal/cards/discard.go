package cards

// DiscardPile is a face-up stack of cards of a single color.
type DiscardPile struct {
	color Color
	cards []Card
}

// NewDiscardPile creates an empty pile for the given color.
func NewDiscardPile(color Color) *DiscardPile {
	return &DiscardPile{color: color}
}

// Color returns the pile's color.
func (p *DiscardPile) Color() Color {
	return p.color
}

// Add puts the card on top of the pile. Cards of another color are rejected.
func (p *DiscardPile) Add(card Card) bool {
	if card.Color != p.color {
		return false
	}
	p.cards = append(p.cards, card)
	return true
}

// DrawTop removes and returns the most recently added card.
func (p *DiscardPile) DrawTop() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	top := p.cards[len(p.cards)-1]
	p.cards = p.cards[:len(p.cards)-1]
	return top, true
}

// Top returns the most recently added card without removing it.
func (p *DiscardPile) Top() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[len(p.cards)-1], true
}

// Len returns the number of cards in the pile.
func (p *DiscardPile) Len() int {
	return len(p.cards)
}

// Empty reports whether the pile has no cards.
func (p *DiscardPile) Empty() bool {
	return len(p.cards) == 0
}

// Cards returns a copy of the pile, bottom first.
func (p *DiscardPile) Cards() []Card {
	out := make([]Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// Clear removes every card.
func (p *DiscardPile) Clear() {
	p.cards = nil
}

// Clone returns an independent copy of the pile.
func (p *DiscardPile) Clone() *DiscardPile {
	clone := &DiscardPile{color: p.color, cards: make([]Card, len(p.cards))}
	copy(clone.cards, p.cards)
	return clone
}
