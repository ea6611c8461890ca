package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/prefabs"
)

// NewPointer creates the pointer singleton. Its kinematic body is never added
// to the space; joints only need it as an anchor.
func NewPointer(w *ecs.World, spec prefabs.PointerSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{
		Body:       cp.NewKinematicBody(),
		Stiffness:  spec.Stiffness,
		MaxForce:   spec.MaxForce,
		GrabRadius: spec.GrabRadius,
		Follow:     spec.Follow,
	}); err != nil {
		return 0, fmt.Errorf("pointer: add pointer: %w", err)
	}
	if err := ecs.Add(w, e, component.PointerInputComponent.Kind(), &component.PointerInput{}); err != nil {
		return 0, fmt.Errorf("pointer: add input: %w", err)
	}
	return e, nil
}
