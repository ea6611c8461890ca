package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/entity"
)

// PointerSystem lets the user drag dynamic bodies. The pointer body chases
// the cursor and a pivot joint ties it to whatever was under the cursor when
// the button went down.
type PointerSystem struct {
	physics *PhysicsSystem
}

func NewPointerSystem(physics *PhysicsSystem) *PointerSystem {
	return &PointerSystem{physics: physics}
}

func (p *PointerSystem) Update(w *ecs.World) {
	e, ok := w.First(component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, ok := ecs.Get(w, e, component.PointerComponent.Kind())
	if !ok || ptr.Body == nil {
		return
	}
	in, ok := ecs.Get(w, e, component.PointerInputComponent.Kind())
	if !ok {
		return
	}

	target := cp.Vector{X: in.X, Y: in.Y}
	if in.Pressed {
		ptr.Body.SetPosition(target)
		ptr.Body.SetVelocity(0, 0)
		if ptr.Joint == nil {
			p.grab(ptr, target)
		}
	} else {
		p.follow(ptr, target)
	}

	if ptr.Joint != nil && (in.Released || !in.Down) {
		p.release(ptr)
	}

	in.Pressed = false
	in.Released = false
}

func (p *PointerSystem) follow(ptr *component.Pointer, target cp.Vector) {
	cur := ptr.Body.Position()
	next := cur.Lerp(target, ptr.Follow)
	if dt := p.physics.TimeStep(); dt > 0 {
		ptr.Body.SetVelocityVector(next.Sub(cur).Mult(1 / dt))
	}
	ptr.Body.SetPosition(next)
}

func (p *PointerSystem) grab(ptr *component.Pointer, at cp.Vector) {
	space := p.physics.Space()
	info := space.PointQueryNearest(at, ptr.GrabRadius, entity.GrabFilter)
	if info == nil || info.Shape == nil {
		return
	}
	body := info.Shape.Body()
	if body == nil || body.GetType() != cp.BODY_DYNAMIC {
		return
	}

	nearest := at
	if info.Distance > 0 {
		nearest = info.Point
	}

	joint := cp.NewPivotJoint2(ptr.Body, body, cp.Vector{}, body.WorldToLocal(nearest))
	joint.SetMaxForce(ptr.MaxForce)
	// fraction of joint error left uncorrected after one second
	joint.SetErrorBias(math.Pow(1-ptr.Stiffness, 60))
	space.AddConstraint(joint)

	ptr.Joint = joint
	ptr.Grabbed = body
}

func (p *PointerSystem) release(ptr *component.Pointer) {
	space := p.physics.Space()
	if space.ContainsConstraint(ptr.Joint) {
		space.RemoveConstraint(ptr.Joint)
	}
	ptr.Joint = nil
	ptr.Grabbed = nil
}
