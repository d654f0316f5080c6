package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorString(t *testing.T) {
	tests := []struct {
		color    Color
		expected string
		name     string
	}{
		{Yellow, "yellow", "Yellow"},
		{Blue, "blue", "Blue"},
		{White, "white", "White"},
		{Green, "green", "Green"},
		{Red, "red", "Red"},
		{Color(99), "unknown", "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.color.String())
		assert.Equal(t, tt.name, tt.color.Name())
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("green")
	require.NoError(t, err)
	assert.Equal(t, Green, c)

	_, err = ParseColor("purple")
	assert.Error(t, err)
}

func TestCardLabels(t *testing.T) {
	five := NewNumbered(1, Blue, 5)
	inv := NewInvestment(2, Red)

	assert.Equal(t, "5", five.Label())
	assert.Equal(t, "Blue 5", five.String())
	assert.Equal(t, "INV", inv.Label())
	assert.Equal(t, "Red investment", inv.String())
	assert.True(t, inv.IsInvestment())
	assert.False(t, five.IsInvestment())
}

func TestCardIdentity(t *testing.T) {
	a := NewInvestment(10, Green)
	b := NewInvestment(11, Green)

	assert.False(t, a.Same(b), "structurally equal cards with different IDs are different cards")
	assert.True(t, a.Same(a))

	rest, ok := Remove([]Card{a, b}, b.ID)
	require.True(t, ok)
	require.Len(t, rest, 1)
	assert.Equal(t, a.ID, rest[0].ID)

	_, ok = Remove(rest, 99)
	assert.False(t, ok)
}

func TestNewDeckComposition(t *testing.T) {
	d := NewDeck(21)
	require.Equal(t, DeckSize, d.Len())
	require.Equal(t, 60, DeckSize)

	ids := map[ID]bool{}
	investments := map[Color]int{}
	numbered := map[Color]map[int]bool{}
	for _, c := range d.Cards() {
		assert.False(t, ids[c.ID], "duplicate card id %d", c.ID)
		ids[c.ID] = true
		if c.IsInvestment() {
			investments[c.Color]++
			continue
		}
		if numbered[c.Color] == nil {
			numbered[c.Color] = map[int]bool{}
		}
		numbered[c.Color][c.Value] = true
	}

	for _, color := range Colors {
		assert.Equal(t, InvestmentsPerColor, investments[color])
		assert.Len(t, numbered[color], MaxValue-MinValue+1)
	}
}

func TestDeckReproducibility(t *testing.T) {
	d1 := NewDeck(12345)
	d2 := NewDeck(12345)
	assert.Equal(t, d1.Cards(), d2.Cards())

	d3 := NewDeck(54321)
	assert.NotEqual(t, d1.Cards(), d3.Cards(), "different seeds should shuffle differently")
}

func TestDeckDraw(t *testing.T) {
	d := NewDeck(1)
	top := d.Cards()[d.Len()-1]

	c, ok := d.Draw()
	require.True(t, ok)
	assert.Equal(t, top, c)
	assert.Equal(t, DeckSize-1, d.Len())

	for !d.Empty() {
		d.Draw()
	}
	_, ok = d.Draw()
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestDeckResetUsesOwnSource(t *testing.T) {
	d1 := NewDeck(7)
	d2 := NewDeck(7)

	d1.Draw()
	d1.Reset()
	d2.Draw()
	d2.Reset()

	assert.Equal(t, DeckSize, d1.Len())
	assert.Equal(t, d1.Cards(), d2.Cards())
}

func TestDeckCloneIndependence(t *testing.T) {
	original := NewDeck(99)
	original.Draw()
	clone := original.Clone()

	require.Equal(t, original.Cards(), clone.Cards())

	clone.Draw()
	clone.Draw()
	assert.Equal(t, DeckSize-1, original.Len())
	assert.Equal(t, DeckSize-3, clone.Len())

	// Both continue the same random sequence after the split.
	original.Reset()
	clone.Reset()
	assert.Equal(t, original.Cards(), clone.Cards())
}

func TestDiscardPile(t *testing.T) {
	p := NewDiscardPile(Blue)
	assert.True(t, p.Empty())

	_, ok := p.DrawTop()
	assert.False(t, ok)

	assert.False(t, p.Add(NewNumbered(1, Red, 4)), "wrong color must be rejected")
	assert.Equal(t, 0, p.Len())

	first := NewNumbered(2, Blue, 4)
	second := NewInvestment(3, Blue)
	require.True(t, p.Add(first))
	require.True(t, p.Add(second))

	top, ok := p.Top()
	require.True(t, ok)
	assert.Equal(t, second, top)

	got, ok := p.DrawTop()
	require.True(t, ok)
	assert.Equal(t, second, got)
	got, _ = p.DrawTop()
	assert.Equal(t, first, got)
	assert.True(t, p.Empty())
}

func TestDeckManager(t *testing.T) {
	m := NewDeckManager(21)

	hand := m.DealHand(8)
	assert.Len(t, hand, 8)
	assert.Equal(t, DeckSize-8, m.Deck().Len())

	require.True(t, m.Discard(hand[0]))
	assert.Equal(t, 1, m.Pile(hand[0].Color).Len())
	assert.Equal(t, DeckSize-7, m.Count())

	stats := m.Stats()
	assert.Equal(t, DeckSize-8, stats.DeckCount)
	pile := stats.Piles[hand[0].Color]
	assert.Equal(t, 1, pile.Count)
	require.NotNil(t, pile.Top)
	assert.Equal(t, hand[0].ID, pile.Top.ID)

	got, ok := m.DrawFromDiscard(hand[0].Color)
	require.True(t, ok)
	assert.Equal(t, hand[0], got)

	_, ok = m.DrawFromDiscard(Color(42))
	assert.False(t, ok)
	assert.Nil(t, m.Pile(Color(-1)))
}

func TestDeckManagerResetReplaysSeed(t *testing.T) {
	m := NewDeckManager(21)
	first := m.DealHand(8)
	m.Discard(m.DealHand(1)[0])

	m.ResetGame()
	assert.Equal(t, DeckSize, m.Count())
	assert.Equal(t, 0, m.Pile(Yellow).Len()+m.Pile(Blue).Len()+m.Pile(White).Len()+m.Pile(Green).Len()+m.Pile(Red).Len())
	assert.Equal(t, first, m.DealHand(8))

	m.SetSeed(22)
	assert.Equal(t, int64(22), m.Seed())
	assert.NotEqual(t, first, m.DealHand(8))
}

func TestDeckManagerClone(t *testing.T) {
	m := NewDeckManager(5)
	m.Discard(m.DealHand(1)[0])

	clone := m.Clone()
	assert.Equal(t, m.Stats(), clone.Stats())

	clone.DrawFromDeck()
	for _, color := range Colors {
		clone.DrawFromDiscard(color)
	}
	assert.Equal(t, DeckSize, m.Count())
	assert.Equal(t, DeckSize-2, clone.Count())

	a, _ := m.DrawFromDeck()
	m2 := NewDeckManager(5)
	m2.DealHand(1)
	b, _ := m2.DrawFromDeck()
	assert.Equal(t, b, a, "original draws are unaffected by the clone")
}
