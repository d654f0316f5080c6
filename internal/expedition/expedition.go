// Package expedition provides the per-color expedition slots and scoring.
//
// Each Expedition records placements tagged with the player who made them.
// The per-player sequences and the combined table view are both derived from
// that single list, so they cannot disagree.
package expedition

import (
	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/turn"
)

const (
	// breakEven is subtracted from the card sum of every started expedition.
	breakEven = 20
	// bonusLength is the number of cards that earns the length bonus.
	bonusLength = 8
	// bonusPoints is added once an expedition reaches bonusLength cards.
	bonusPoints = 20
)

// Placement is a card placed by a player.
type Placement struct {
	Player turn.Player
	Card   cards.Card
}

// Expedition is the slot for one color, shared by both players.
type Expedition struct {
	color      cards.Color
	placements []Placement
}

// New creates an empty expedition for the given color.
func New(color cards.Color) *Expedition {
	return &Expedition{color: color}
}

// Color returns the expedition color.
func (e *Expedition) Color() cards.Color {
	return e.color
}

// CanAccept reports whether player may place card on this expedition.
// Investments must come before any numbered card, and numbered cards
// must not go below the player's last numbered card.
func (e *Expedition) CanAccept(card cards.Card, player turn.Player) bool {
	if card.Color != e.color {
		return false
	}

	last, hasNumbered := e.lastNumbered(player)
	if card.IsInvestment() {
		return !hasNumbered
	}
	if !hasNumbered {
		return true
	}
	return card.Value >= last.Value
}

// Add places card for player if it is acceptable.
func (e *Expedition) Add(card cards.Card, player turn.Player) bool {
	if !player.Valid() || !e.CanAccept(card, player) {
		return false
	}
	e.placements = append(e.placements, Placement{Player: player, Card: card})
	return true
}

// Cards returns the sequence placed by player, in placement order.
func (e *Expedition) Cards(player turn.Player) []cards.Card {
	var out []cards.Card
	for _, p := range e.placements {
		if p.Player == player {
			out = append(out, p.Card)
		}
	}
	return out
}

// Shared returns every placement on this expedition, in placement order.
func (e *Expedition) Shared() []Placement {
	out := make([]Placement, len(e.placements))
	copy(out, e.placements)
	return out
}

// SharedCards returns the cards of both players in placement order.
func (e *Expedition) SharedCards() []cards.Card {
	out := make([]cards.Card, len(e.placements))
	for i, p := range e.placements {
		out[i] = p.Card
	}
	return out
}

// Len returns the number of cards placed by player.
func (e *Expedition) Len(player turn.Player) int {
	n := 0
	for _, p := range e.placements {
		if p.Player == player {
			n++
		}
	}
	return n
}

// SharedLen returns the number of cards placed by both players.
func (e *Expedition) SharedLen() int {
	return len(e.placements)
}

// Top returns the last card placed by player.
func (e *Expedition) Top(player turn.Player) (cards.Card, bool) {
	for i := len(e.placements) - 1; i >= 0; i-- {
		if e.placements[i].Player == player {
			return e.placements[i].Card, true
		}
	}
	return cards.Card{}, false
}

// Score returns player's score on this expedition.
func (e *Expedition) Score(player turn.Player) int {
	return Score(e.Cards(player))
}

// SharedScore scores the combined sequence as if it were a single expedition.
func (e *Expedition) SharedScore() int {
	return Score(e.SharedCards())
}

// Clone returns an independent copy.
func (e *Expedition) Clone() *Expedition {
	clone := &Expedition{color: e.color, placements: make([]Placement, len(e.placements))}
	copy(clone.placements, e.placements)
	return clone
}

func (e *Expedition) lastNumbered(player turn.Player) (cards.Card, bool) {
	for i := len(e.placements) - 1; i >= 0; i-- {
		p := e.placements[i]
		if p.Player == player && !p.Card.IsInvestment() {
			return p.Card, true
		}
	}
	return cards.Card{}, false
}

// Score computes an expedition score. Investments multiply the result,
// losses included.
func Score(seq []cards.Card) int {
	if len(seq) == 0 {
		return 0
	}

	investments, sum := 0, 0
	for _, c := range seq {
		if c.IsInvestment() {
			investments++
			continue
		}
		sum += c.Value
	}

	score := (sum - breakEven) << investments
	if len(seq) >= bonusLength {
		score += bonusPoints
	}
	return score
}
