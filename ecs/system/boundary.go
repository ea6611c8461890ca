package system

import (
	"fmt"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/entity"
)

// BoundarySystem keeps the two walls and the ground sized to the viewport.
type BoundarySystem struct {
	physics   *PhysicsSystem
	thickness float64
}

func NewBoundarySystem(physics *PhysicsSystem, thickness float64) *BoundarySystem {
	return &BoundarySystem{physics: physics, thickness: thickness}
}

func (b *BoundarySystem) SetThickness(thickness float64) {
	if thickness > 0 {
		b.thickness = thickness
	}
}

// Rebuild removes the tracked boundaries from the space and creates a fresh
// set for a width x height play area. Walls sit centred on the left and right
// edges; the ground is centred on the bottom edge.
func (b *BoundarySystem) Rebuild(w *ecs.World, width, height float64) error {
	for _, e := range w.Query(component.BoundaryComponent.Kind()) {
		if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
			b.physics.RemoveBody(pb)
		}
		w.DestroyEntity(e)
	}

	space := b.physics.Space()
	t := b.thickness
	specs := []struct {
		side           component.BoundarySide
		cx, cy, bw, bh float64
	}{
		{component.BoundaryLeft, 0, height / 2, t, height},
		{component.BoundaryRight, width, height / 2, t, height},
		{component.BoundaryGround, width / 2, height, width, t},
	}
	for _, s := range specs {
		if _, err := entity.NewBoundary(w, space, s.side, s.cx, s.cy, s.bw, s.bh); err != nil {
			return fmt.Errorf("boundary: rebuild %s: %w", s.side, err)
		}
	}
	return nil
}
