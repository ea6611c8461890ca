package component

import "image/color"

// Tile is a spawned letter.
type Tile struct {
	Char      rune
	Label     string
	Fill      color.Color
	TextColor color.Color
	FontSize  float64
}

var TileComponent = NewComponent[Tile]()
