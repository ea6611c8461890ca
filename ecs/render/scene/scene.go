// Package scene flattens the world into the filled boxes the renderer draws,
// back to front.
package scene

import (
	"image/color"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

// Quad is one filled box centred at (X, Y) in logical pixels. Label is empty
// for boundaries.
type Quad struct {
	X, Y          float64
	Width, Height float64
	Rotation      float64
	Fill          color.Color
	Alpha         float32

	Label     string
	TextColor color.Color
	FontSize  float64
}

// Build lists boundaries first, then tiles in spawn order, so tiles resting
// on the ground are drawn over it.
func Build(w *ecs.World, boundaryFill color.Color) []Quad {
	if w == nil {
		return nil
	}
	if boundaryFill == nil {
		boundaryFill = color.Black
	}

	var quads []Quad
	for _, e := range w.Query(component.BoundaryComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		x, y, rot := position(w, e, pb)
		quads = append(quads, Quad{
			X: x, Y: y, Width: pb.Width, Height: pb.Height, Rotation: rot,
			Fill: boundaryFill, Alpha: 1,
		})
	}

	for _, e := range w.Query(component.TileComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		tile, _ := ecs.Get(w, e, component.TileComponent.Kind())
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		x, y, rot := position(w, e, pb)

		alpha := float32(1)
		if fade, ok := ecs.Get(w, e, component.SpawnFadeComponent.Kind()); ok {
			alpha = float32(fade.Alpha)
		}
		fill := tile.Fill
		if fill == nil {
			fill = color.Black
		}
		text := tile.TextColor
		if text == nil {
			text = color.White
		}
		quads = append(quads, Quad{
			X: x, Y: y, Width: pb.Width, Height: pb.Height, Rotation: rot,
			Fill: fill, Alpha: alpha,
			Label: tile.Label, TextColor: text, FontSize: tile.FontSize,
		})
	}
	return quads
}

func position(w *ecs.World, e ecs.Entity, pb *component.PhysicsBody) (float64, float64, float64) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return t.X, t.Y, t.Rotation
	}
	if pb.Body != nil {
		p := pb.Body.Position()
		return p.X, p.Y, pb.Body.Angle()
	}
	return 0, 0, 0
}
