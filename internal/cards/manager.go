package cards

// DeckManager owns the draw deck and the five discard piles.
type DeckManager struct {
	baseSeed int64
	deck     *Deck
	piles    [NumColors]*DiscardPile
}

// PileStats summarizes a discard pile.
type PileStats struct {
	Color Color
	Count int
	Top   *Card
}

// DeckStats summarizes the deck and discard piles.
type DeckStats struct {
	DeckCount int
	Piles     [NumColors]PileStats
}

// NewDeckManager creates a shuffled deck and empty discard piles.
func NewDeckManager(seed int64) *DeckManager {
	m := &DeckManager{
		baseSeed: seed,
		deck:     NewDeck(uint64(seed)),
	}
	for i, color := range Colors {
		m.piles[i] = NewDiscardPile(color)
	}
	return m
}

// Seed returns the seed the deck was created with.
func (m *DeckManager) Seed() int64 {
	return m.baseSeed
}

// Deck returns the draw deck.
func (m *DeckManager) Deck() *Deck {
	return m.deck
}

// Pile returns the discard pile of the given color, or nil for an invalid color.
func (m *DeckManager) Pile(color Color) *DiscardPile {
	if !color.Valid() {
		return nil
	}
	return m.piles[color]
}

// DealHand draws up to n cards, stopping early when the deck runs out.
func (m *DeckManager) DealHand(n int) []Card {
	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, ok := m.deck.Draw()
		if !ok {
			break
		}
		hand = append(hand, c)
	}
	return hand
}

// DrawFromDeck draws the top card of the deck.
func (m *DeckManager) DrawFromDeck() (Card, bool) {
	return m.deck.Draw()
}

// DrawFromDiscard draws the top card of the given color's pile.
func (m *DeckManager) DrawFromDiscard(color Color) (Card, bool) {
	pile := m.Pile(color)
	if pile == nil {
		return Card{}, false
	}
	return pile.DrawTop()
}

// Discard places the card on the pile of its own color.
func (m *DeckManager) Discard(card Card) bool {
	pile := m.Pile(card.Color)
	if pile == nil {
		return false
	}
	return pile.Add(card)
}

// Count returns the number of cards in the deck and all discard piles.
func (m *DeckManager) Count() int {
	n := m.deck.Len()
	for _, p := range m.piles {
		n += p.Len()
	}
	return n
}

// Stats returns the deck size and a summary of every discard pile.
func (m *DeckManager) Stats() DeckStats {
	stats := DeckStats{DeckCount: m.deck.Len()}
	for i, p := range m.piles {
		ps := PileStats{Color: p.Color(), Count: p.Len()}
		if top, ok := p.Top(); ok {
			ps.Top = &top
		}
		stats.Piles[i] = ps
	}
	return stats
}

// ResetGame restores a full deck and empties the piles. A seeded manager
// replays its original shuffle.
func (m *DeckManager) ResetGame() {
	m.deck.Reseed(uint64(m.baseSeed))
	m.deck.Reset()
	for _, p := range m.piles {
		p.Clear()
	}
}

// SetSeed replaces the seed and rebuilds the deck from it.
func (m *DeckManager) SetSeed(seed int64) {
	m.baseSeed = seed
	m.deck = NewDeck(uint64(seed))
	for _, p := range m.piles {
		p.Clear()
	}
}

// Clone returns an independent copy, including the random generator state.
func (m *DeckManager) Clone() *DeckManager {
	clone := &DeckManager{
		baseSeed: m.baseSeed,
		deck:     m.deck.Clone(),
	}
	for i, p := range m.piles {
		clone.piles[i] = p.Clone()
	}
	return clone
}
