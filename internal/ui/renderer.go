package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/expedition"
	"github.com/samdwyer/lostcities/internal/gamedata"
	"github.com/samdwyer/lostcities/internal/turn"
)

// View is everything the renderer draws for one frame.
type View struct {
	Player    turn.Player // Player whose hand is shown
	Phase     turn.Phase
	GameOver  bool
	Result    string
	Hand      []cards.Card
	Cursor    int
	Own       []expedition.View
	Opponent  []expedition.View
	Piles     [cards.NumColors]cards.PileStats
	DeckCount int
	Scores    [2]int
	Message   string

	Exploring bool
	Tree      string // Rendered exploration tree
	Selected  int    // Highlighted pending move
}

const (
	nameWidth  = 12
	treeColumn = 64
)

var (
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	cursorStyle = tcell.StyleDefault.Reverse(true)
)

// Renderer handles drawing the table to the screen.
type Renderer struct {
	screen  Canvas
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen Canvas, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws a full frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	status := fmt.Sprintf("%s to %s", v.Player, v.Phase)
	if v.GameOver {
		status = "Game over: " + v.Result
	}
	x := r.drawText(0, 0, "LOST CITIES", titleStyle)
	r.drawText(x+2, 0, fmt.Sprintf("%s   Deck: %d   P1: %d   P2: %d", status, v.DeckCount, v.Scores[0], v.Scores[1]), textStyle)

	r.drawText(0, 2, fmt.Sprintf("%s expeditions", v.Player.Opponent()), dimStyle)
	r.drawExpeditions(3, v.Opponent)

	r.drawPiles(9, v.Piles)

	r.drawText(0, 11, fmt.Sprintf("%s expeditions", v.Player), dimStyle)
	r.drawExpeditions(12, v.Own)

	r.drawHand(18, v.Hand, v.Cursor)
	r.drawText(0, 20, v.Message, textStyle)
	r.drawText(0, 22, helpLine(v.Exploring), dimStyle)

	if v.Exploring {
		r.drawTree(v.Tree, v.Selected)
	}

	r.screen.Show()
}

func (r *Renderer) drawExpeditions(y int, views []expedition.View) {
	for i, ev := range views {
		def := r.palette.Def(ev.Color)
		style := tcell.StyleDefault.Foreground(r.palette.TCellColor(ev.Color))

		x := r.drawText(0, y+i, pad(def.Name, nameWidth), style)
		labels := make([]string, len(ev.Cards))
		for j, c := range ev.Cards {
			labels[j] = c.Label()
		}
		x = r.drawText(x, y+i, strings.Join(labels, " "), style)
		if len(ev.Cards) > 0 {
			r.drawText(x+1, y+i, fmt.Sprintf("(%d)", ev.Score), dimStyle)
		}
	}
}

func (r *Renderer) drawPiles(y int, piles [cards.NumColors]cards.PileStats) {
	x := r.drawText(0, y, "Discards:", dimStyle)
	for i, p := range piles {
		style := tcell.StyleDefault.Foreground(r.palette.TCellColor(p.Color))
		top := "--"
		if p.Top != nil {
			top = p.Top.Label()
		}
		x = r.drawText(x+2, y, fmt.Sprintf("%d:%c %s (%d)", i+1, r.palette.Def(p.Color).GlyphRune(), top, p.Count), style)
	}
}

func (r *Renderer) drawHand(y int, hand []cards.Card, cursor int) {
	x := r.drawText(0, y, "Hand:", dimStyle)
	for i, c := range hand {
		style := tcell.StyleDefault.Foreground(r.palette.TCellColor(c.Color))
		if i == cursor {
			style = style.Reverse(true)
		}
		label := fmt.Sprintf("%c%s", r.palette.Def(c.Color).GlyphRune(), c.Label())
		x = r.drawText(x+1, y, label, style)
	}
}

func (r *Renderer) drawTree(text string, selected int) {
	_, height := r.screen.Size()
	pending := -1
	for i, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if i >= height {
			return
		}
		style := textStyle
		if pending >= 0 {
			if pending == selected {
				style = cursorStyle
			}
			pending++
		}
		if line == "Pending:" {
			pending = 0
		}
		r.drawText(treeColumn, i, line, style)
	}
}

// drawText writes s at (x, y) and returns the column after it.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
	return x
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func helpLine(exploring bool) string {
	if exploring {
		return "Up/Down select  Enter advance  c child  Backspace rewind  t leave  q quit"
	}
	return "Left/Right select  p play  x discard  d draw  1-5 draw discard  f phase  s skip  n new  r replay  t explore  q quit"
}
