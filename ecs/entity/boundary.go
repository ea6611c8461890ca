package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

const boundaryFriction = 0.8

// NewBoundary creates a static box of the given size centred at (cx, cy).
func NewBoundary(w *ecs.World, space *cp.Space, side component.BoundarySide, cx, cy, width, height float64) (ecs.Entity, error) {
	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: cx, Y: cy})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(boundaryFriction)
	shape.SetFilter(NotGrabbableFilter)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BoundaryComponent.Kind(), &component.Boundary{Side: side}); err != nil {
		return 0, fmt.Errorf("boundary %s: add boundary: %w", side, err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: cx, Y: cy}); err != nil {
		return 0, fmt.Errorf("boundary %s: add transform: %w", side, err)
	}

	space.AddBody(body)
	space.AddShape(shape)
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:     body,
		Shape:    shape,
		Width:    width,
		Height:   height,
		Friction: boundaryFriction,
		Static:   true,
	}); err != nil {
		space.RemoveShape(shape)
		space.RemoveBody(body)
		return 0, fmt.Errorf("boundary %s: add physics body: %w", side, err)
	}

	return e, nil
}
