// Package game holds the Lost Cities game state, the action layer that
// validates and applies player intents, and the Game facade used by the
// terminal front end.
package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/expedition"
	"github.com/samdwyer/lostcities/internal/random"
	"github.com/samdwyer/lostcities/internal/turn"
)

// Game is a running two-player game.
type Game struct {
	seed    int64
	state   *State
	manager *Manager
	opts    []Option
	logger  *zap.Logger
}

// New creates a game with both hands dealt.
func New(cfg Config, opts ...Option) (*Game, error) {
	g := &Game{opts: opts, logger: buildOptions(opts).logger}
	if err := g.StartNewGame(cfg.Seed); err != nil {
		return nil, err
	}
	return g, nil
}

// StartNewGame redeals the current game. A zero seed picks a random one.
func (g *Game) StartNewGame(seed int64) error {
	seed, err := random.Resolve(seed)
	if err != nil {
		return fmt.Errorf("start new game: %w", err)
	}

	g.seed = seed
	if g.state == nil {
		g.state = NewState(seed)
		g.manager = NewManager(g.state, g.opts...)
	} else {
		g.state.Reset(seed)
	}

	g.logger.Info("new game",
		zap.String("game_id", g.state.ID),
		zap.Int64("seed", seed),
	)
	return nil
}

// RestartGame replays the current deal from the start.
func (g *Game) RestartGame() error {
	return g.StartNewGame(g.seed)
}

// ID returns the game's unique identifier.
func (g *Game) ID() string { return g.state.ID }

// Seed returns the seed the current deal was shuffled with.
func (g *Game) Seed() int64 { return g.seed }

// State returns the live game state.
func (g *Game) State() *State { return g.state }

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() turn.Player { return g.state.turns.ActivePlayer() }

// CanPlay reports whether player may play or discard now.
func (g *Game) CanPlay(player turn.Player) bool { return g.state.turns.CanPlay(player) }

// CanDraw reports whether player may draw now.
func (g *Game) CanDraw(player turn.Player) bool { return g.state.turns.CanDraw(player) }

// CanMove reports whether player may pick up a card.
func (g *Game) CanMove(player turn.Player) bool { return g.state.turns.CanMove(player) }

// Hand returns a copy of player's hand.
func (g *Game) Hand(player turn.Player) []cards.Card { return g.state.Hand(player) }

// PlayerSlots returns player's expeditions.
func (g *Game) PlayerSlots(player turn.Player) []expedition.View {
	return g.state.board.PlayerViews(player)
}

// SharedSlots returns the combined expeditions.
func (g *Game) SharedSlots() []expedition.View { return g.state.board.SharedViews() }

// Statistics returns a summary of the game.
func (g *Game) Statistics() Statistics { return g.manager.Statistics() }

// TurnStatus returns the turn state.
func (g *Game) TurnStatus() turn.Status { return g.state.turns.Status() }

// DeckStatistics returns the deck and discard pile counts.
func (g *Game) DeckStatistics() cards.DeckStats { return g.state.decks.Stats() }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.state.turns.GameOver() }

// Result returns the end-of-game message once the game is over.
func (g *Game) Result() (string, bool) {
	winner, decided := g.state.turns.Winner()
	if !decided {
		return "", false
	}
	return ResultMessage(winner), true
}

// PlayCard plays card from the active player's hand onto an expedition.
func (g *Game) PlayCard(card cards.Card, color cards.Color) Outcome {
	return g.finish(g.manager.PlayToExpedition(card, color))
}

// DiscardCard discards card from the active player's hand.
func (g *Game) DiscardCard(card cards.Card) Outcome {
	return g.finish(g.manager.Discard(card))
}

// DrawFromDeck draws the top card of the deck.
func (g *Game) DrawFromDeck() Outcome {
	return g.finish(g.manager.DrawFromDeck())
}

// DrawFromDiscard draws the top card of a discard pile.
func (g *Game) DrawFromDiscard(color cards.Color) Outcome {
	return g.finish(g.manager.DrawFromDiscard(color))
}

// ForceAdvancePhase skips the current phase.
func (g *Game) ForceAdvancePhase() string {
	if g.Over() {
		return gameOverMessage
	}
	g.state.turns.ForceAdvancePhase()
	msg := fmt.Sprintf("Phase advanced: %s to %s.", g.CurrentPlayer(), g.state.turns.Phase())
	if result, ok := g.manager.CheckEndOfGame(); ok {
		msg += " " + result
	}
	return msg
}

// SkipTurn ends the current turn.
func (g *Game) SkipTurn() string {
	if g.Over() {
		return gameOverMessage
	}
	g.state.turns.SkipTurn()
	msg := fmt.Sprintf("Turn skipped: %s to play.", g.CurrentPlayer())
	if result, ok := g.manager.CheckEndOfGame(); ok {
		msg += " " + result
	}
	return msg
}

// finish checks for the end of the game after a successful intent.
func (g *Game) finish(out Outcome) Outcome {
	if !out.Success {
		return out
	}
	if result, ok := g.manager.CheckEndOfGame(); ok {
		out.Message += " " + result
	}
	return out
}
