// Package cards provides the expedition cards, the draw deck and the
// per-color discard piles.
package cards

import "fmt"

const (
	// MinValue is the lowest numbered card value.
	MinValue = 2
	// MaxValue is the highest numbered card value.
	MaxValue = 10
	// InvestmentsPerColor is the number of investment cards of each color.
	InvestmentsPerColor = 3
	// DeckSize is the number of cards in a complete game.
	DeckSize = NumColors*(MaxValue-MinValue+1) + NumColors*InvestmentsPerColor
)

// Color identifies one of the five expeditions.
type Color int

const (
	Yellow Color = iota
	Blue
	White
	Green
	Red
)

// NumColors is the number of expedition colors.
const NumColors = 5

// Colors lists every color in table order.
var Colors = [NumColors]Color{Yellow, Blue, White, Green, Red}

// String returns the lowercase color identifier.
func (c Color) String() string {
	switch c {
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case White:
		return "white"
	case Green:
		return "green"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Name returns the display name used in player messages.
func (c Color) Name() string {
	switch c {
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case White:
		return "White"
	case Green:
		return "Green"
	case Red:
		return "Red"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the five expedition colors.
func (c Color) Valid() bool {
	return c >= Yellow && c <= Red
}

// ParseColor returns the color with the given identifier.
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Kind distinguishes numbered cards from investment cards.
type Kind int

const (
	Numbered Kind = iota
	Investment
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Numbered:
		return "numbered"
	case Investment:
		return "investment"
	default:
		return "unknown"
	}
}

// ID is the identity of a physical card. Two cards with the same color,
// kind and value are still different cards when their IDs differ.
type ID int

// Card is a single game piece. Value is meaningless for investment cards.
type Card struct {
	ID    ID
	Color Color
	Kind  Kind
	Value int
}

// NewNumbered creates a numbered card.
func NewNumbered(id ID, color Color, value int) Card {
	return Card{ID: id, Color: color, Kind: Numbered, Value: value}
}

// NewInvestment creates an investment card.
func NewInvestment(id ID, color Color) Card {
	return Card{ID: id, Color: color, Kind: Investment}
}

// IsInvestment reports whether the card is an investment card.
func (c Card) IsInvestment() bool {
	return c.Kind == Investment
}

// Same reports whether c and other are the same physical card.
func (c Card) Same(other Card) bool {
	return c.ID == other.ID
}

// Label returns the short face text: the value, or "INV" for investments.
func (c Card) Label() string {
	if c.IsInvestment() {
		return "INV"
	}
	return fmt.Sprintf("%d", c.Value)
}

func (c Card) String() string {
	if c.IsInvestment() {
		return c.Color.Name() + " investment"
	}
	return fmt.Sprintf("%s %d", c.Color.Name(), c.Value)
}

// IndexOf returns the position of the card with the given ID, or -1.
func IndexOf(cards []Card, id ID) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Remove returns cards without the card with the given ID and whether it was found.
// The input slice is not modified.
func Remove(cards []Card, id ID) ([]Card, bool) {
	idx := IndexOf(cards, id)
	if idx < 0 {
		return cards, false
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	return append(out, cards[idx+1:]...), true
}
