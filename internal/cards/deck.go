package cards

import "math/rand/v2"

// pcgStream selects the PCG stream; the seed picks the position within it.
const pcgStream = 0x9e3779b97f4a7c15

// Deck is the draw pile. It owns its random source so that two decks built
// from the same seed shuffle identically and a cloned deck continues the
// exact random sequence of its original.
type Deck struct {
	cards []Card
	src   *rand.PCG
	rng   *rand.Rand
}

// NewDeck creates a full, shuffled deck.
func NewDeck(seed uint64) *Deck {
	d := &Deck{}
	d.Reseed(seed)
	d.Reset()
	return d
}

// Reseed replaces the random source.
func (d *Deck) Reseed(seed uint64) {
	d.src = rand.NewPCG(seed, pcgStream)
	d.rng = rand.New(d.src)
}

// Reset rebuilds the full set of cards and shuffles them.
func (d *Deck) Reset() {
	d.cards = canonicalCards()
	d.Shuffle()
}

// Shuffle reorders the remaining cards using the deck's random source.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card. It returns false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, true
}

// Len returns the number of cards left.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Empty reports whether no cards are left.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// Cards returns a copy of the remaining cards, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Clone returns an independent deck with the same cards and the same
// random generator state.
func (d *Deck) Clone() *Deck {
	src := *d.src
	clone := &Deck{
		cards: make([]Card, len(d.cards)),
		src:   &src,
	}
	copy(clone.cards, d.cards)
	clone.rng = rand.New(clone.src)
	return clone
}

// canonicalCards builds the unshuffled deck. IDs are assigned in build
// order so the same physical card has the same ID in every game.
func canonicalCards() []Card {
	out := make([]Card, 0, DeckSize)
	var next ID
	for _, color := range Colors {
		for v := MinValue; v <= MaxValue; v++ {
			out = append(out, NewNumbered(next, color, v))
			next++
		}
	}
	for _, color := range Colors {
		for i := 0; i < InvestmentsPerColor; i++ {
			out = append(out, NewInvestment(next, color))
			next++
		}
	}
	return out
}
