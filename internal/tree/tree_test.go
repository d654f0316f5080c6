package tree

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/turn"
)

func indexOf(moves []Move, kind MoveKind) int {
	for i, m := range moves {
		if m.Kind == kind {
			return i
		}
	}
	return -1
}

func TestMoveDescription(t *testing.T) {
	five := cards.NewNumbered(1, cards.Blue, 5)
	inv := cards.NewInvestment(2, cards.Red)

	tests := []struct {
		move     Move
		expected string
	}{
		{Move{Kind: MovePlay, Card: five, Color: cards.Blue}, "Play 5 on Blue"},
		{Move{Kind: MoveDiscard, Card: inv}, "Discard INV on Red"},
		{Move{Kind: MoveDrawDeck}, "Draw from deck"},
		{Move{Kind: MoveDrawDiscard, Color: cards.White}, "Draw from White discard"},
		{Move{Kind: MoveKind(9)}, "Unknown move"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.move.Description())
	}
	assert.Equal(t, "draw_discard", MoveDrawDiscard.String())
}

func TestNewClonesState(t *testing.T) {
	state := game.NewState(1)
	tr := New(state)

	state.Turn().ForceAdvancePhase()
	assert.Equal(t, turn.PhasePlay, tr.Root().State.Turn().Phase())
	assert.Same(t, tr.Root(), tr.Current())
	assert.Equal(t, 0, tr.Root().Depth)
	assert.Empty(t, tr.DescribeCurrentPath())
}

func TestInitialPendingMoves(t *testing.T) {
	tr := New(game.NewState(2))
	moves := tr.PendingMoves()

	// An empty board accepts every card, so each card can be played or discarded.
	require.Len(t, moves, 2*game.HandSize)
	plays, discards := 0, 0
	for _, m := range moves {
		assert.Equal(t, turn.Player1, m.Player)
		switch m.Kind {
		case MovePlay:
			plays++
			assert.Equal(t, m.Card.Color, m.Color)
		case MoveDiscard:
			discards++
		default:
			t.Errorf("unexpected %s move in play phase", m.Kind)
		}
	}
	assert.Equal(t, game.HandSize, plays)
	assert.Equal(t, game.HandSize, discards)
}

func TestDrawPhasePendingMoves(t *testing.T) {
	tr := New(game.NewState(3))
	i := indexOf(tr.PendingMoves(), MoveDiscard)
	require.GreaterOrEqual(t, i, 0)
	discarded := tr.PendingMoves()[i].Card

	child, err := tr.Advance(context.Background(), i)
	require.NoError(t, err)
	assert.Equal(t, "Card discarded on "+discarded.Color.Name()+"!", child.Message)

	moves := tr.PendingMoves()
	require.Len(t, moves, 2)
	assert.Equal(t, Move{Kind: MoveDrawDeck, Player: turn.Player1}, moves[0])
	assert.Equal(t, Move{Kind: MoveDrawDiscard, Player: turn.Player1, Color: discarded.Color}, moves[1])
}

func TestAdvanceLeavesParentUntouched(t *testing.T) {
	tr := New(game.NewState(4))
	root := tr.Root()
	hand := root.State.Hand(turn.Player1)

	child, err := tr.Advance(context.Background(), 0)
	require.NoError(t, err)

	assert.Same(t, child, tr.Current())
	assert.Same(t, root, child.Parent)
	assert.Equal(t, 1, child.Depth)
	assert.NotEqual(t, root.ID, child.ID)
	assert.Equal(t, hand, root.State.Hand(turn.Player1))
	assert.Len(t, child.State.Hand(turn.Player1), game.HandSize-1)
	assert.Equal(t, turn.PhasePlay, root.State.Turn().Phase())
	assert.Equal(t, turn.PhaseDraw, child.State.Turn().Phase())
}

func TestNavigation(t *testing.T) {
	tr := New(game.NewState(5))
	ctx := context.Background()
	total := len(tr.PendingMoves())

	first := tr.PendingMoves()[0]
	child, err := tr.Advance(ctx, 0)
	require.NoError(t, err)

	parent, err := tr.Rewind()
	require.NoError(t, err)
	assert.Same(t, tr.Root(), parent)

	pending := tr.PendingMoves()
	assert.Len(t, pending, total-1, "explored move is no longer pending")
	assert.NotContains(t, pending, first)

	again, err := tr.AdvanceToChild(0)
	require.NoError(t, err)
	assert.Same(t, child, again)
	assert.Same(t, child.State, again.State)
	assert.Equal(t, []string{"player 1: " + first.Description()}, tr.DescribeCurrentPath())

	_, err = tr.Rewind()
	require.NoError(t, err)
	_, err = tr.Advance(ctx, 0)
	require.NoError(t, err)
	_, err = tr.Rewind()
	require.NoError(t, err)
	assert.Len(t, tr.Root().Children, 2)
}

func TestNavigationErrors(t *testing.T) {
	tr := New(game.NewState(6))
	ctx := context.Background()

	_, err := tr.Rewind()
	assert.True(t, errors.Is(err, game.ErrNavigation))

	_, err = tr.Advance(ctx, -1)
	assert.True(t, errors.Is(err, game.ErrNavigation))

	_, err = tr.Advance(ctx, len(tr.PendingMoves()))
	assert.True(t, errors.Is(err, game.ErrNavigation))

	_, err = tr.AdvanceToChild(0)
	assert.True(t, errors.Is(err, game.ErrNavigation))

	assert.Same(t, tr.Root(), tr.Current())
}

func TestEnumerationInconsistency(t *testing.T) {
	tr := New(game.NewState(7))
	tr.pending = []Move{{Kind: MoveDrawDeck, Player: turn.Player1}}

	_, err := tr.Advance(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, game.ErrEnumerationInconsistency))
	assert.True(t, errors.Is(err, game.ErrIllegalAction))
	assert.Empty(t, tr.Root().Children)
}

// TestEnumerationSoundness applies every pending move at each step of a
// game and walks one branch to the end.
func TestEnumerationSoundness(t *testing.T) {
	tr := New(game.NewState(8))
	ctx := context.Background()

	for step := 0; ; step++ {
		require.Less(t, step, 500, "game did not end")
		moves := tr.PendingMoves()
		if len(moves) == 0 {
			break
		}

		for i := range moves {
			node, err := tr.Advance(ctx, 0)
			require.NoError(t, err, "move %d: %s", i, moves[i].Description())
			assert.Equal(t, cards.DeckSize, node.State.CardCount())
			_, err = tr.Rewind()
			require.NoError(t, err)
		}
		assert.Empty(t, tr.PendingMoves())

		// Vary the plays but always draw from the deck so the game ends.
		next := 0
		if tr.Current().State.Turn().Phase() == turn.PhasePlay {
			next = step % len(tr.Current().Children)
		}
		_, err := tr.AdvanceToChild(next)
		require.NoError(t, err)
	}

	final := tr.Current().State
	assert.True(t, final.Turn().GameOver())
	assert.True(t, final.EndProcessed())
	assert.Len(t, tr.DescribeCurrentPath(), tr.Current().Depth)
}

func TestAdvanceEndsGame(t *testing.T) {
	state := game.NewState(9)
	decks := state.Decks()
	for decks.Deck().Len() > 1 {
		c, _ := decks.DrawFromDeck()
		decks.Discard(c)
	}

	tr := New(state)
	ctx := context.Background()
	_, err := tr.Advance(ctx, indexOf(tr.PendingMoves(), MoveDiscard))
	require.NoError(t, err)

	node, err := tr.Advance(ctx, indexOf(tr.PendingMoves(), MoveDrawDeck))
	require.NoError(t, err)
	assert.Equal(t, "Card drawn from deck! Draw!", node.Message)
	assert.True(t, node.State.Turn().GameOver())
	assert.Empty(t, tr.PendingMoves())

	out := tr.Render()
	assert.Contains(t, out, "[game over: Draw!]")
	assert.Contains(t, out, "No pending moves")
}

func TestRender(t *testing.T) {
	tr := New(game.NewState(10))
	first := tr.PendingMoves()[0]
	_, err := tr.Advance(context.Background(), 0)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(tr.Render()), "\n")
	assert.Equal(t, "- Start [player 1 play]", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  * player 1: "+first.Description()+" [player 1 draw]"), lines[1])
	assert.Equal(t, "Pending:", lines[2])
	assert.Equal(t, "  0. Draw from deck", lines[3])
}

func TestAdvanceRecordsSpan(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })
	recorder := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	tr := New(game.NewState(11))
	_, err := tr.Advance(context.Background(), 0)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "tree.advance", spans[0].Name())
}
