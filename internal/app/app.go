package app

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/samdwyer/lostcities/internal/cards"
	"github.com/samdwyer/lostcities/internal/game"
	"github.com/samdwyer/lostcities/internal/gamedata"
	"github.com/samdwyer/lostcities/internal/telemetry"
	"github.com/samdwyer/lostcities/internal/ui"
)

// App runs the game in the terminal.
type App struct {
	screen     *ui.Screen
	renderer   *ui.Renderer
	controller *Controller
	logger     *zap.Logger
}

// New opens the terminal screen for g.
func New(g *game.Game, logger *zap.Logger) (*App, error) {
	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open screen: %w", err)
	}

	return &App{
		screen:     screen,
		renderer:   ui.NewRenderer(screen, palette),
		controller: NewController(g, logger),
		logger:     logger,
	}, nil
}

// Run executes the main loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("app").Start(ctx, "app.run")
	defer span.End()

	for !a.controller.Done() {
		a.renderer.Render(a.controller.View())

		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventKey:
			a.controller.Handle(ctx, KeyInput(ev.Key(), ev.Rune()))
		case *tcell.EventResize:
			a.screen.Sync()
		case nil:
			// Screen finalized elsewhere.
			return nil
		}
	}
	return nil
}

// Close restores the terminal.
func (a *App) Close() {
	if a.screen != nil {
		a.screen.Close()
	}
}

// KeyInput maps a key press to an input.
func KeyInput(key tcell.Key, r rune) Input {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Input{Command: CmdQuit}
	case tcell.KeyLeft:
		return Input{Command: CmdPrevCard}
	case tcell.KeyRight:
		return Input{Command: CmdNextCard}
	case tcell.KeyUp:
		return Input{Command: CmdPrevMove}
	case tcell.KeyDown:
		return Input{Command: CmdNextMove}
	case tcell.KeyEnter:
		return Input{Command: CmdAdvance}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Input{Command: CmdRewind}
	case tcell.KeyRune:
		return runeInput(r)
	}
	return Input{}
}

func runeInput(r rune) Input {
	if r >= '1' && r < '1'+cards.NumColors {
		return Input{Command: CmdDrawDiscard, Color: cards.Colors[r-'1']}
	}
	switch r {
	case 'q', 'Q':
		return Input{Command: CmdQuit}
	case 'p':
		return Input{Command: CmdPlay}
	case 'x':
		return Input{Command: CmdDiscard}
	case 'd':
		return Input{Command: CmdDrawDeck}
	case 'f':
		return Input{Command: CmdForcePhase}
	case 's':
		return Input{Command: CmdSkipTurn}
	case 'n':
		return Input{Command: CmdNewGame}
	case 'r':
		return Input{Command: CmdRestart}
	case 't':
		return Input{Command: CmdToggleExplore}
	case 'c':
		return Input{Command: CmdEnterChild}
	}
	return Input{}
}
