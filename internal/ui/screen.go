// Package ui draws the Lost Cities table in a terminal.
package ui

import "github.com/gdamore/tcell/v2"

// Canvas is what the renderer draws the table on. Screen implements it for a
// real terminal.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is the terminal hosting the table.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal and paints the table background.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close hands the terminal back.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key press or resize.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show presents the drawn frame.
func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync redraws everything after the terminal was resized.
func (s *Screen) Sync() {
	s.screen.Sync()
}
