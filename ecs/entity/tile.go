package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/prefabs"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewTile creates a dynamic letter tile centred at (x, y) and adds its body
// and shape to space.
func NewTile(w *ecs.World, space *cp.Space, spec *prefabs.TileSpec, tile component.Tile, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		spec = prefabs.DefaultTileSpec()
	}
	size := spec.Size

	body := cp.NewBody(spec.Mass, cp.MomentForBox(spec.Mass, size, size))
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, size, size, 0)
	shape.SetFriction(spec.Friction)
	shape.SetElasticity(spec.Elasticity)
	shape.SetFilter(cp.SHAPE_FILTER_ALL)

	e := ecs.CreateEntity(w)
	if tile.FontSize <= 0 {
		tile.FontSize = spec.Text.Size
	}
	if err := ecs.Add(w, e, component.TileComponent.Kind(), &tile); err != nil {
		return 0, fmt.Errorf("tile: add tile: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("tile: add transform: %w", err)
	}
	if spec.FadeSeconds > 0 {
		if err := ecs.Add(w, e, component.SpawnFadeComponent.Kind(), &component.SpawnFade{
			Tween: gween.New(0, 1, float32(spec.FadeSeconds), ease.OutQuad),
		}); err != nil {
			return 0, fmt.Errorf("tile: add spawn fade: %w", err)
		}
	}

	space.AddBody(body)
	space.AddShape(shape)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:       body,
		Shape:      shape,
		Width:      size,
		Height:     size,
		Mass:       spec.Mass,
		Friction:   spec.Friction,
		Elasticity: spec.Elasticity,
	}); err != nil {
		space.RemoveShape(shape)
		space.RemoveBody(body)
		return 0, fmt.Errorf("tile: add physics body: %w", err)
	}

	return e, nil
}
