// Package app connects terminal input to the game and the exploration tree.
package app

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/telemetry"
	"github.com/samdwyer/lostcities/internal/tree"
	"github.com/samdwyer/lostcities/internal/turn"
	"github.com/samdwyer/lostcities/internal/ui"
)

// Command is a user intent independent of the key that produced it.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPrevCard
	CmdNextCard
	CmdPlay
	CmdDiscard
	CmdDrawDeck
	CmdDrawDiscard
	CmdForcePhase
	CmdSkipTurn
	CmdNewGame
	CmdRestart
	CmdToggleExplore
	CmdPrevMove
	CmdNextMove
	CmdAdvance
	CmdEnterChild
	CmdRewind
)

// String returns the command name used in spans and logs.
func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdPrevCard:
		return "prev_card"
	case CmdNextCard:
		return "next_card"
	case CmdPlay:
		return "play"
	case CmdDiscard:
		return "discard"
	case CmdDrawDeck:
		return "draw_deck"
	case CmdDrawDiscard:
		return "draw_discard"
	case CmdForcePhase:
		return "force_phase"
	case CmdSkipTurn:
		return "skip_turn"
	case CmdNewGame:
		return "new_game"
	case CmdRestart:
		return "restart"
	case CmdToggleExplore:
		return "toggle_explore"
	case CmdPrevMove:
		return "prev_move"
	case CmdNextMove:
		return "next_move"
	case CmdAdvance:
		return "advance"
	case CmdEnterChild:
		return "enter_child"
	case CmdRewind:
		return "rewind"
	default:
		return "none"
	}
}

// Input is a command with its argument.
type Input struct {
	Command Command
	Color   cards.Color // Pile for CmdDrawDiscard
}

// Controller applies inputs to a game. In explore mode inputs navigate a
// tree of simulated moves instead, leaving the live game alone.
type Controller struct {
	game    *game.Game
	logger  *zap.Logger
	cursor  int
	message string
	done    bool

	explore  *tree.Tree
	selected int
}

// NewController creates a controller for g.
func NewController(g *game.Game, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		game:    g,
		logger:  logger,
		message: fmt.Sprintf("New game (seed %d).", g.Seed()),
	}
}

// Done reports whether the user asked to quit.
func (c *Controller) Done() bool { return c.done }

// Message returns the last status message.
func (c *Controller) Message() string { return c.message }

// Exploring reports whether explore mode is active.
func (c *Controller) Exploring() bool { return c.explore != nil }

// Handle applies one input.
func (c *Controller) Handle(ctx context.Context, in Input) {
	switch in.Command {
	case CmdNone:
		return
	case CmdQuit:
		c.done = true
		return
	case CmdToggleExplore:
		c.toggleExplore()
		return
	}

	if c.explore != nil {
		c.handleExplore(ctx, in)
		return
	}

	switch in.Command {
	case CmdPrevCard:
		c.moveCursor(-1)
	case CmdNextCard:
		c.moveCursor(1)
	case CmdPlay, CmdDiscard, CmdDrawDeck, CmdDrawDiscard:
		c.act(ctx, in)
	case CmdForcePhase:
		c.message = c.game.ForceAdvancePhase()
	case CmdSkipTurn:
		c.message = c.game.SkipTurn()
	case CmdNewGame:
		if err := c.game.StartNewGame(0); err != nil {
			c.logger.Error("new game failed", zap.Error(err))
			c.message = "Could not start a new game."
			return
		}
		c.cursor = 0
		c.message = fmt.Sprintf("New game (seed %d).", c.game.Seed())
	case CmdRestart:
		if err := c.game.RestartGame(); err != nil {
			c.logger.Error("restart failed", zap.Error(err))
			c.message = "Could not restart the game."
			return
		}
		c.cursor = 0
		c.message = fmt.Sprintf("Deal replayed (seed %d).", c.game.Seed())
	}
	c.clampCursor()
}

func (c *Controller) act(ctx context.Context, in Input) {
	_, span := telemetry.Tracer("app").Start(ctx, "app.action")
	defer span.End()

	player := c.game.CurrentPlayer()
	span.SetAttributes(
		attribute.String("game.id", c.game.ID()),
		attribute.String("action", in.Command.String()),
		attribute.Int("player", int(player)),
	)

	var out game.Outcome
	switch in.Command {
	case CmdPlay, CmdDiscard:
		card, ok := c.selectedCard()
		if !ok {
			c.message = "No card selected!"
			return
		}
		if in.Command == CmdPlay {
			out = c.game.PlayCard(card, card.Color)
		} else {
			out = c.game.DiscardCard(card)
		}
	case CmdDrawDeck:
		out = c.game.DrawFromDeck()
	case CmdDrawDiscard:
		out = c.game.DrawFromDiscard(in.Color)
	}

	span.SetAttributes(attribute.Bool("success", out.Success))
	if !out.Success {
		span.SetAttributes(attribute.String("code", string(out.Code)))
	}
	c.message = out.Message
}

func (c *Controller) toggleExplore() {
	if c.explore != nil {
		c.explore = nil
		c.message = "Back to the game."
		return
	}
	c.explore = tree.New(c.game.State())
	c.selected = 0
	c.message = "Exploring from the current position."
}

func (c *Controller) handleExplore(ctx context.Context, in Input) {
	var err error
	switch in.Command {
	case CmdPrevMove:
		if c.selected > 0 {
			c.selected--
		}
		return
	case CmdNextMove:
		if c.selected < len(c.explore.PendingMoves())-1 {
			c.selected++
		}
		return
	case CmdAdvance:
		var node *tree.Node
		if node, err = c.explore.Advance(ctx, c.selected); err == nil {
			c.message = node.Message
		}
	case CmdEnterChild:
		var node *tree.Node
		if node, err = c.explore.AdvanceToChild(0); err == nil {
			c.message = node.Label()
		}
	case CmdRewind:
		if _, err = c.explore.Rewind(); err == nil {
			c.message = "Rewound."
		}
	default:
		c.message = "Leave explore mode first (t)."
		return
	}

	if err != nil {
		c.logger.Warn("explore navigation failed", zap.Error(err))
		c.message = err.Error()
	}
	c.selected = 0
}

func (c *Controller) selectedCard() (cards.Card, bool) {
	hand := c.game.Hand(c.game.CurrentPlayer())
	if c.cursor < 0 || c.cursor >= len(hand) {
		return cards.Card{}, false
	}
	return hand[c.cursor], true
}

func (c *Controller) moveCursor(delta int) {
	n := len(c.game.Hand(c.game.CurrentPlayer()))
	if n == 0 {
		c.cursor = 0
		return
	}
	c.cursor = (c.cursor + delta + n) % n
}

func (c *Controller) clampCursor() {
	n := len(c.game.Hand(c.game.CurrentPlayer()))
	if c.cursor >= n {
		c.cursor = max(n-1, 0)
	}
}

// View builds the frame for the renderer. Explore mode shows the focused
// simulated state.
func (c *Controller) View() ui.View {
	state := c.game.State()
	if c.explore != nil {
		state = c.explore.Current().State
	}

	turns := state.Turn()
	player := turns.ActivePlayer()
	stats := state.Decks().Stats()
	board := state.Board()

	v := ui.View{
		Player:    player,
		Phase:     turns.Phase(),
		GameOver:  turns.GameOver(),
		Hand:      state.Hand(player),
		Cursor:    c.cursor,
		Own:       board.PlayerViews(player),
		Opponent:  board.PlayerViews(player.Opponent()),
		Piles:     stats.Piles,
		DeckCount: stats.DeckCount,
		Scores:    [2]int{board.Total(turn.Player1), board.Total(turn.Player2)},
		Message:   c.message,
	}
	if winner, decided := turns.Winner(); decided {
		v.Result = game.ResultMessage(winner)
	}
	if c.explore != nil {
		v.Cursor = -1
		v.Exploring = true
		v.Tree = c.explore.Render()
		v.Selected = c.selected
	}
	return v
}
