package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/prefabs"
)

// PhysicsSystem owns the Chipmunk space and steps it at a fixed rate.
type PhysicsSystem struct {
	space    *cp.Space
	timeStep float64

	afterStep []ecs.System
}

func NewPhysicsSystem(spec *prefabs.WorldSpec) *PhysicsSystem {
	if spec == nil {
		spec = prefabs.DefaultWorldSpec()
	}
	ps := &PhysicsSystem{space: cp.NewSpace()}
	ps.Configure(spec)
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// TimeStep returns the fixed step in seconds.
func (ps *PhysicsSystem) TimeStep() float64 {
	return ps.timeStep
}

// Configure applies gravity, solver iterations and step size.
func (ps *PhysicsSystem) Configure(spec *prefabs.WorldSpec) {
	ps.space.Iterations = uint(spec.Iterations)
	ps.space.SetGravity(cp.Vector{X: 0, Y: spec.Gravity})
	ps.timeStep = spec.TimeStep
}

// OnAfterStep registers a system to run after every step, in registration
// order.
func (ps *PhysicsSystem) OnAfterStep(s ecs.System) {
	if s == nil {
		return
	}
	ps.afterStep = append(ps.afterStep, s)
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.space.Step(ps.timeStep)
	ps.syncTransforms(w)

	for _, s := range ps.afterStep {
		s.Update(w)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Rotation = pb.Body.Angle()
	})
}

// RemoveBody takes a body and its shape out of the space.
func (ps *PhysicsSystem) RemoveBody(pb *component.PhysicsBody) {
	if ps == nil || pb == nil {
		return
	}
	if pb.Shape != nil && ps.space.ContainsShape(pb.Shape) {
		ps.space.RemoveShape(pb.Shape)
	}
	if pb.Body != nil && ps.space.ContainsBody(pb.Body) {
		ps.space.RemoveBody(pb.Body)
	}
	pb.Shape = nil
	pb.Body = nil
}

// ResizeBox swaps a box body's shape for one of the new size. Mass scales with
// area so density is preserved.
func (ps *PhysicsSystem) ResizeBox(pb *component.PhysicsBody, width, height float64) {
	if ps == nil || pb == nil || pb.Body == nil || width <= 0 || height <= 0 {
		return
	}
	if pb.Width > 0 && pb.Height > 0 && pb.Mass > 0 {
		pb.Mass *= (width * height) / (pb.Width * pb.Height)
	}

	old := pb.Shape
	shape := cp.NewBox(pb.Body, width, height, 0)
	if old != nil {
		shape.SetFilter(old.Filter)
		if ps.space.ContainsShape(old) {
			ps.space.RemoveShape(old)
		}
	}
	shape.SetFriction(pb.Friction)
	shape.SetElasticity(pb.Elasticity)

	if !pb.Static && pb.Mass > 0 {
		pb.Body.SetMass(pb.Mass)
		pb.Body.SetMoment(cp.MomentForBox(pb.Mass, width, height))
	}
	ps.space.AddShape(shape)

	pb.Shape = shape
	pb.Width = width
	pb.Height = height
}
