package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/expedition"
	"github.com/samdwyer/lostcities/internal/turn"
)

// HandSize is the number of cards dealt to each player and the hand limit.
const HandSize = 8

// PlayerState holds what belongs to a single player outside the board.
type PlayerState struct {
	Hand []cards.Card
}

func (p *PlayerState) clone() *PlayerState {
	hand := make([]cards.Card, len(p.Hand))
	copy(hand, p.Hand)
	return &PlayerState{Hand: hand}
}

// State is the aggregate root of a game: hands, board, deck manager and
// turn manager. Cards are moved between containers, never shared.
type State struct {
	ID           string
	players      [2]*PlayerState
	board        *expedition.Board
	decks        *cards.DeckManager
	turns        *turn.Manager
	endProcessed bool
}

// NewState creates a game with a deck shuffled from seed and both hands dealt,
// player 1 first.
func NewState(seed int64) *State {
	s := &State{
		ID:    uuid.NewString(),
		decks: cards.NewDeckManager(seed),
		turns: turn.NewManager(),
	}
	if err := s.ConfigureSlots(cards.Colors[:]); err != nil {
		panic(err) // unreachable: Colors names every color once
	}
	s.deal()
	return s
}

// Reset starts a new deal in place. The current seed replays the same
// shuffle, any other seed reshuffles from it.
func (s *State) Reset(seed int64) {
	if seed == s.decks.Seed() {
		s.decks.ResetGame()
	} else {
		s.decks.SetSeed(seed)
	}
	s.turns.Reset()
	s.board = expedition.NewBoard()
	s.endProcessed = false
	s.ID = uuid.NewString()
	s.deal()
}

func (s *State) deal() {
	for i := range s.players {
		s.players[i] = &PlayerState{Hand: s.decks.DealHand(HandSize)}
	}
}

// ConfigureSlots replaces the board with empty expeditions for colors.
// It fails once a card has been placed.
func (s *State) ConfigureSlots(colors []cards.Color) error {
	if s.board != nil && s.board.SharedCount() > 0 {
		return fmt.Errorf("configure slots: %d cards already on the board", s.board.SharedCount())
	}
	board, err := expedition.NewBoardFor(colors)
	if err != nil {
		return err
	}
	s.board = board
	return nil
}

// Player returns a player's state, or nil for an invalid player.
func (s *State) Player(p turn.Player) *PlayerState {
	if !p.Valid() {
		return nil
	}
	return s.players[p.Index()]
}

// Hand returns a copy of a player's hand.
func (s *State) Hand(p turn.Player) []cards.Card {
	ps := s.Player(p)
	if ps == nil {
		return nil
	}
	hand := make([]cards.Card, len(ps.Hand))
	copy(hand, ps.Hand)
	return hand
}

// Board returns the expeditions.
func (s *State) Board() *expedition.Board { return s.board }

// Decks returns the deck manager.
func (s *State) Decks() *cards.DeckManager { return s.decks }

// Turn returns the turn manager.
func (s *State) Turn() *turn.Manager { return s.turns }

// EndProcessed reports whether the end of the game has been scored.
func (s *State) EndProcessed() bool { return s.endProcessed }

// CardCount counts every card in the game. It is always cards.DeckSize.
func (s *State) CardCount() int {
	n := s.decks.Count() + s.board.SharedCount()
	for _, p := range s.players {
		n += len(p.Hand)
	}
	return n
}

// Clone returns a fully independent copy. Cards keep their IDs and the deck
// keeps its random generator state.
func (s *State) Clone() *State {
	clone := &State{
		ID:           s.ID,
		board:        s.board.Clone(),
		decks:        s.decks.Clone(),
		turns:        s.turns.Clone(),
		endProcessed: s.endProcessed,
	}
	for i, p := range s.players {
		clone.players[i] = p.clone()
	}
	return clone
}
