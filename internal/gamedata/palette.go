package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/lostcities/internal/cards"
)

// ColorDef describes how one expedition color is displayed.
type ColorDef struct {
	ID    string `json:"id"`    // Matches cards.Color.String()
	Name  string `json:"name"`  // Expedition name (e.g., "Ocean")
	Glyph string `json:"glyph"` // Single character used in compact views
	Color string `json:"color"` // Hex color code
}

// GlyphRune returns the glyph as a rune for rendering.
func (d ColorDef) GlyphRune() rune {
	if len(d.Glyph) == 0 {
		return '?'
	}
	return rune(d.Glyph[0])
}

// PaletteFile represents the structure of colors.json.
type PaletteFile struct {
	Colors []ColorDef `json:"colors"`
}

// Palette maps every card color to its display definition.
type Palette struct {
	defs   [cards.NumColors]ColorDef
	colors [cards.NumColors]tcell.Color
}

// NewPalette builds a palette. Every card color must be defined exactly once.
func NewPalette(defs []ColorDef) (*Palette, error) {
	p := &Palette{}
	var seen [cards.NumColors]bool

	for _, d := range defs {
		color, err := cards.ParseColor(d.ID)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		if seen[color] {
			return nil, fmt.Errorf("palette: duplicate color %s", d.ID)
		}
		tc, err := ParseHexColor(d.Color)
		if err != nil {
			return nil, fmt.Errorf("palette: %s: %w", d.ID, err)
		}
		seen[color] = true
		p.defs[color] = d
		p.colors[color] = tc
	}

	for _, c := range cards.Colors {
		if !seen[c] {
			return nil, fmt.Errorf("palette: missing color %s", c)
		}
	}
	return p, nil
}

// LoadPalette loads the palette from the embedded colors.json.
func LoadPalette() (*Palette, error) {
	file, err := Load[PaletteFile]("colors.json")
	if err != nil {
		return nil, err
	}
	return NewPalette(file.Colors)
}

// Def returns the definition for color.
func (p *Palette) Def(color cards.Color) ColorDef {
	if !color.Valid() {
		return ColorDef{Name: "Unknown", Glyph: "?"}
	}
	return p.defs[color]
}

// TCellColor returns the terminal color for color.
func (p *Palette) TCellColor(color cards.Color) tcell.Color {
	if !color.Valid() {
		return tcell.ColorWhite
	}
	return p.colors[color]
}
