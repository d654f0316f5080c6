// Package tree explores a game as a history of states. Every move is
// applied to a clone of the focused state, so branches never share state.
package tree

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/telemetry"
)

// Node is a game state reached by a sequence of moves.
type Node struct {
	ID       string
	State    *game.State
	Move     *Move // nil at the root
	Message  string
	Parent   *Node
	Depth    int
	Children []*Node
}

// Label describes the move that produced the node.
func (n *Node) Label() string {
	if n.Move == nil {
		return "Start"
	}
	return fmt.Sprintf("%s: %s", n.Move.Player, n.Move.Description())
}

// Tree is a navigable game history with the legal moves at the focus.
type Tree struct {
	root    *Node
	current *Node
	pending []Move
	opts    []game.Option
}

// New creates a tree rooted at a copy of state. Options are passed to the
// managers that apply moves.
func New(state *game.State, opts ...game.Option) *Tree {
	root := &Node{ID: uuid.NewString(), State: state.Clone()}
	t := &Tree{root: root, current: root, opts: opts}
	t.refresh()
	return t
}

// Root returns the initial node.
func (t *Tree) Root() *Node { return t.root }

// Current returns the focused node.
func (t *Tree) Current() *Node { return t.current }

// PendingMoves returns the legal moves at the focus that have not been
// explored yet.
func (t *Tree) PendingMoves() []Move {
	return slices.Clone(t.pending)
}

// Advance applies the pending move at index to a clone of the focused state
// and focuses the resulting child.
func (t *Tree) Advance(ctx context.Context, index int) (*Node, error) {
	_, span := telemetry.Tracer("tree").Start(ctx, "tree.advance")
	defer span.End()

	span.SetAttributes(
		attribute.Int("tree.depth", t.current.Depth),
		attribute.Int("tree.pending", len(t.pending)),
		attribute.Int("tree.move_index", index),
	)

	if index < 0 || index >= len(t.pending) {
		err := game.NewError(game.CodeNavigation,
			fmt.Sprintf("move index %d out of range (%d pending)", index, len(t.pending)))
		span.RecordError(err)
		span.SetStatus(codes.Error, "navigation")
		return nil, err
	}

	move := t.pending[index]
	span.SetAttributes(attribute.String("move.kind", move.Kind.String()))

	state := t.current.State.Clone()
	m := game.NewManager(state, t.opts...)
	out := apply(m, move)
	if !out.Success {
		err := game.WrapError(game.CodeEnumerationInconsistency,
			fmt.Sprintf("apply %q", move.Description()), out.Err())
		span.RecordError(err)
		span.SetStatus(codes.Error, "enumeration inconsistency")
		return nil, err
	}

	msg := out.Message
	if result, ok := m.CheckEndOfGame(); ok {
		msg += " " + result
		span.SetAttributes(attribute.Bool("game.over", true))
	}

	child := &Node{
		ID:      uuid.NewString(),
		State:   state,
		Move:    &move,
		Message: msg,
		Parent:  t.current,
		Depth:   t.current.Depth + 1,
	}
	t.current.Children = append(t.current.Children, child)
	t.current = child
	t.refresh()
	return child, nil
}

// AdvanceToChild focuses an already explored child.
func (t *Tree) AdvanceToChild(index int) (*Node, error) {
	if index < 0 || index >= len(t.current.Children) {
		return nil, game.NewError(game.CodeNavigation,
			fmt.Sprintf("child index %d out of range (%d children)", index, len(t.current.Children)))
	}
	t.current = t.current.Children[index]
	t.refresh()
	return t.current, nil
}

// Rewind focuses the parent of the current node.
func (t *Tree) Rewind() (*Node, error) {
	if t.current.Parent == nil {
		return nil, game.NewError(game.CodeNavigation, "already at the root")
	}
	t.current = t.current.Parent
	t.refresh()
	return t.current, nil
}

// Path returns the nodes from the root to the focus.
func (t *Tree) Path() []*Node {
	var path []*Node
	for n := t.current; n != nil; n = n.Parent {
		path = append(path, n)
	}
	slices.Reverse(path)
	return path
}

// DescribeCurrentPath lists the moves from the root to the focus.
func (t *Tree) DescribeCurrentPath() []string {
	path := t.Path()
	out := make([]string, 0, len(path)-1)
	for _, n := range path[1:] {
		out = append(out, n.Label())
	}
	return out
}

// Render draws the whole tree as indented text, marking the focus and
// listing its pending moves.
func (t *Tree) Render() string {
	var b strings.Builder
	t.renderNode(&b, t.root)

	if len(t.pending) == 0 {
		b.WriteString("No pending moves\n")
		return b.String()
	}
	b.WriteString("Pending:\n")
	for i, m := range t.pending {
		fmt.Fprintf(&b, "  %d. %s\n", i, m.Description())
	}
	return b.String()
}

func (t *Tree) renderNode(b *strings.Builder, n *Node) {
	marker := "-"
	if n == t.current {
		marker = "*"
	}
	fmt.Fprintf(b, "%s%s %s [%s]", strings.Repeat("  ", n.Depth), marker, n.Label(), nodeStatus(n))
	if n.Message != "" {
		fmt.Fprintf(b, " %s", n.Message)
	}
	b.WriteByte('\n')

	for _, c := range n.Children {
		t.renderNode(b, c)
	}
}

func nodeStatus(n *Node) string {
	turns := n.State.Turn()
	if winner, decided := turns.Winner(); decided {
		return "game over: " + game.ResultMessage(winner)
	}
	if turns.GameOver() {
		return "game over"
	}
	return fmt.Sprintf("%s %s", turns.ActivePlayer(), turns.Phase())
}

// refresh recomputes the pending moves at the focus, skipping moves that
// already have a child.
func (t *Tree) refresh() {
	moves := Enumerate(t.current.State)
	t.pending = moves[:0]
	for _, m := range moves {
		if !t.explored(m) {
			t.pending = append(t.pending, m)
		}
	}
}

func (t *Tree) explored(m Move) bool {
	for _, c := range t.current.Children {
		if c.Move != nil && *c.Move == m {
			return true
		}
	}
	return false
}
