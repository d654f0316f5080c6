package tree

import (
	"fmt"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/turn"
)

// MoveKind identifies the action a move performs.
type MoveKind int

const (
	MovePlay MoveKind = iota
	MoveDiscard
	MoveDrawDeck
	MoveDrawDiscard
)

// String returns the kind name.
func (k MoveKind) String() string {
	switch k {
	case MovePlay:
		return "play"
	case MoveDiscard:
		return "discard"
	case MoveDrawDeck:
		return "draw_deck"
	case MoveDrawDiscard:
		return "draw_discard"
	default:
		return "unknown"
	}
}

// Move is a single legal action. Card is unset for deck draws and Color is
// unset for discards.
type Move struct {
	Kind   MoveKind
	Player turn.Player
	Card   cards.Card
	Color  cards.Color
}

// Description returns a short player-facing label such as "Play 5 on Blue".
func (m Move) Description() string {
	switch m.Kind {
	case MovePlay:
		return fmt.Sprintf("Play %s on %s", m.Card.Label(), m.Color.Name())
	case MoveDiscard:
		return fmt.Sprintf("Discard %s on %s", m.Card.Label(), m.Card.Color.Name())
	case MoveDrawDeck:
		return "Draw from deck"
	case MoveDrawDiscard:
		return fmt.Sprintf("Draw from %s discard", m.Color.Name())
	default:
		return "Unknown move"
	}
}

// Enumerate returns every legal move for the active player in state.
// Plays and discards are listed hand card by hand card, then deck and
// discard draws.
func Enumerate(state *game.State) []Move {
	turns := state.Turn()
	player := turns.ActivePlayer()
	hand := state.Hand(player)
	var moves []Move

	if turns.CanPlay(player) {
		for _, c := range hand {
			if state.Board().Expedition(c.Color).CanAccept(c, player) {
				moves = append(moves, Move{Kind: MovePlay, Player: player, Card: c, Color: c.Color})
			}
			moves = append(moves, Move{Kind: MoveDiscard, Player: player, Card: c})
		}
	}

	if turns.CanDraw(player) && len(hand) < game.HandSize {
		decks := state.Decks()
		if !decks.Deck().Empty() {
			moves = append(moves, Move{Kind: MoveDrawDeck, Player: player})
		}
		for _, color := range cards.Colors {
			if !decks.Pile(color).Empty() {
				moves = append(moves, Move{Kind: MoveDrawDiscard, Player: player, Color: color})
			}
		}
	}
	return moves
}

// apply performs move through the action layer.
func apply(m *game.Manager, move Move) game.Outcome {
	switch move.Kind {
	case MovePlay:
		return m.PlayToExpedition(move.Card, move.Color)
	case MoveDiscard:
		return m.Discard(move.Card)
	case MoveDrawDeck:
		return m.DrawFromDeck()
	case MoveDrawDiscard:
		return m.DrawFromDiscard(move.Color)
	default:
		return game.Outcome{Code: game.CodeIllegalAction, Message: "Unknown move!"}
	}
}
