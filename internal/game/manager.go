package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/turn"
)

// Option configures a Manager or a Game.
type Option func(*options)

type options struct {
	logger *zap.Logger
}

// WithLogger sets the logger used for action and game-over events.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

const gameOverMessage = "The game is over!"

// Manager validates player intents and applies them to a State.
// A failed intent leaves the state untouched.
type Manager struct {
	state  *State
	logger *zap.Logger
}

// NewManager binds a manager to state.
func NewManager(state *State, opts ...Option) *Manager {
	o := buildOptions(opts)
	return &Manager{state: state, logger: o.logger}
}

// State returns the managed state.
func (m *Manager) State() *State {
	return m.state
}

// PlayToExpedition places a card from the active player's hand on the
// expedition of the given color.
func (m *Manager) PlayToExpedition(card cards.Card, color cards.Color) Outcome {
	player := m.state.turns.ActivePlayer()
	if out, ok := m.checkPlay(player); !ok {
		return m.reject("play", out)
	}

	hand := m.state.Player(player)
	idx := cards.IndexOf(hand.Hand, card.ID)
	if idx < 0 {
		return m.reject("play", fail(CodeRuleViolation, "That card is not in your hand!"))
	}
	card = hand.Hand[idx]

	exp := m.state.board.Expedition(color)
	if exp == nil || !exp.CanAccept(card, player) {
		return m.reject("play", fail(CodeRuleViolation, "Invalid play! Check color and order."))
	}

	exp.Add(card, player)
	hand.Hand, _ = cards.Remove(hand.Hand, card.ID)
	m.state.turns.RegisterPlay()

	m.logger.Debug("card played",
		zap.Stringer("player", player),
		zap.Stringer("card", card),
		zap.Stringer("color", color),
	)

	if card.IsInvestment() {
		return succeed(card, fmt.Sprintf("%s investment played!", color.Name()))
	}
	return succeed(card, fmt.Sprintf("Card %d %s played!", card.Value, color.Name()))
}

// Discard places a card from the active player's hand on its color's pile.
func (m *Manager) Discard(card cards.Card) Outcome {
	player := m.state.turns.ActivePlayer()
	if out, ok := m.checkPlay(player); !ok {
		return m.reject("discard", out)
	}

	hand := m.state.Player(player)
	idx := cards.IndexOf(hand.Hand, card.ID)
	if idx < 0 {
		return m.reject("discard", fail(CodeRuleViolation, "That card is not in your hand!"))
	}
	card = hand.Hand[idx]

	pile := m.state.decks.Pile(card.Color)
	if pile == nil || pile.Color() != card.Color {
		return m.reject("discard", fail(CodeRuleViolation, "Card cannot be discarded there!"))
	}

	pile.Add(card)
	hand.Hand, _ = cards.Remove(hand.Hand, card.ID)
	m.state.turns.RegisterPlay()

	m.logger.Debug("card discarded",
		zap.Stringer("player", player),
		zap.Stringer("card", card),
	)
	return succeed(card, fmt.Sprintf("Card discarded on %s!", card.Color.Name()))
}

// DrawFromDeck moves the top card of the deck to the active player's hand.
func (m *Manager) DrawFromDeck() Outcome {
	player := m.state.turns.ActivePlayer()
	if out, ok := m.checkDraw(player); !ok {
		return m.reject("draw_deck", out)
	}
	if m.state.decks.Deck().Empty() {
		return m.reject("draw_deck", fail(CodeResourceExhausted, "Deck empty!"))
	}

	card, _ := m.state.decks.DrawFromDeck()
	m.take(player, card)

	m.logger.Debug("card drawn",
		zap.Stringer("player", player),
		zap.String("source", "deck"),
	)
	return succeed(card, "Card drawn from deck!")
}

// DrawFromDiscard moves the top card of a discard pile to the active
// player's hand.
func (m *Manager) DrawFromDiscard(color cards.Color) Outcome {
	player := m.state.turns.ActivePlayer()
	if out, ok := m.checkDraw(player); !ok {
		return m.reject("draw_discard", out)
	}

	pile := m.state.decks.Pile(color)
	if pile == nil {
		return m.reject("draw_discard", fail(CodeRuleViolation, "Unknown discard pile!"))
	}
	if pile.Empty() {
		return m.reject("draw_discard", fail(CodeResourceExhausted, fmt.Sprintf("%s discard pile empty!", color.Name())))
	}

	card, _ := pile.DrawTop()
	m.take(player, card)

	m.logger.Debug("card drawn",
		zap.Stringer("player", player),
		zap.String("source", color.String()),
		zap.Stringer("card", card),
	)
	return succeed(card, fmt.Sprintf("Card drawn from %s discard!", color.Name()))
}

// CheckEndOfGame ends the game when the deck or a hand is empty. The first
// time it does, both players are scored and the result message is returned.
// Later calls return false.
func (m *Manager) CheckEndOfGame() (string, bool) {
	s := m.state
	if s.endProcessed {
		return "", false
	}

	deckEmpty := s.decks.Deck().Empty()
	anyHandEmpty := len(s.players[0].Hand) == 0 || len(s.players[1].Hand) == 0
	if !s.turns.CheckGameOver(deckEmpty, anyHandEmpty) {
		return "", false
	}

	score1 := s.board.Total(turn.Player1)
	score2 := s.board.Total(turn.Player2)
	winner := s.turns.DecideWinner(score1, score2)
	s.endProcessed = true

	m.logger.Info("game over",
		zap.String("game_id", s.ID),
		zap.Int("score_player1", score1),
		zap.Int("score_player2", score2),
		zap.Stringer("winner", winner),
	)
	return ResultMessage(winner), true
}

// ResultMessage returns the end-of-game announcement for winner.
func ResultMessage(winner turn.Player) string {
	if !winner.Valid() {
		return "Draw!"
	}
	return fmt.Sprintf("Player %d wins!", int(winner))
}

// Statistics returns a read-only summary of the game.
func (m *Manager) Statistics() Statistics {
	return collectStatistics(m.state)
}

func (m *Manager) checkPlay(player turn.Player) (Outcome, bool) {
	if m.state.turns.GameOver() {
		return fail(CodeIllegalAction, gameOverMessage), false
	}
	if !m.state.turns.CanPlay(player) {
		return fail(CodeIllegalAction, "Finish the current phase first!"), false
	}
	return Outcome{}, true
}

func (m *Manager) checkDraw(player turn.Player) (Outcome, bool) {
	if !m.state.turns.CanDraw(player) {
		return fail(CodeIllegalAction, "Cannot draw a card now!"), false
	}
	if len(m.state.Player(player).Hand) >= HandSize {
		return fail(CodeResourceExhausted, "Hand full!"), false
	}
	return Outcome{}, true
}

func (m *Manager) take(player turn.Player, card cards.Card) {
	ps := m.state.Player(player)
	ps.Hand = append(ps.Hand, card)
	m.state.turns.RegisterDraw()
}

func (m *Manager) reject(action string, out Outcome) Outcome {
	m.logger.Debug("action rejected",
		zap.String("action", action),
		zap.String("code", string(out.Code)),
		zap.String("reason", out.Message),
	)
	return out
}
