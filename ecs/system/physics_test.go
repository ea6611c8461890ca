package system

import (
	"testing"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/prefabs"
)

type recordSystem struct {
	name string
	log  *[]string
}

func (r recordSystem) Update(*ecs.World) { *r.log = append(*r.log, r.name) }

func TestPhysicsConfigure(t *testing.T) {
	spec := prefabs.DefaultWorldSpec()
	spec.Gravity = 250
	spec.Iterations = 7
	spec.TimeStep = 1.0 / 120.0

	ps := NewPhysicsSystem(spec)
	if g := ps.Space().Gravity(); g.X != 0 || g.Y != 250 {
		t.Fatalf("gravity %v, want (0,250)", g)
	}
	if ps.Space().Iterations != 7 {
		t.Fatalf("iterations %d, want 7", ps.Space().Iterations)
	}
	if ps.TimeStep() != 1.0/120.0 {
		t.Fatalf("time step %v", ps.TimeStep())
	}
}

func TestPhysicsAfterStepOrder(t *testing.T) {
	var calls []string
	ps := NewPhysicsSystem(nil)
	ps.OnAfterStep(recordSystem{"first", &calls})
	ps.OnAfterStep(nil)
	ps.OnAfterStep(recordSystem{"second", &calls})

	w := ecs.NewWorld()
	ps.Update(w)
	ps.Update(w)

	want := []string{"first", "second", "first", "second"}
	if len(calls) != len(want) {
		t.Fatalf("calls %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls %v, want %v", calls, want)
		}
	}
}

func TestPhysicsSyncsTransforms(t *testing.T) {
	tw := newTestWorld(t, 800, 600)
	e := tw.addTile(t, 200, 100)

	for i := 0; i < 10; i++ {
		tw.physics.Update(tw.w)
	}

	tr, _ := ecs.Get(tw.w, e, component.TransformComponent.Kind())
	pos := tw.body(t, e).Body.Position()
	if tr.X != pos.X || tr.Y != pos.Y {
		t.Fatalf("transform (%v,%v) out of sync with body (%v,%v)", tr.X, tr.Y, pos.X, pos.Y)
	}
	if tr.Y <= 100 {
		t.Fatalf("tile should fall, y=%v", tr.Y)
	}
}

func TestPhysicsRemoveBody(t *testing.T) {
	tw := newTestWorld(t, 800, 600)
	pb := tw.body(t, tw.addTile(t, 200, 100))
	body, shape := pb.Body, pb.Shape

	tw.physics.RemoveBody(pb)
	if tw.physics.Space().ContainsBody(body) || tw.physics.Space().ContainsShape(shape) {
		t.Fatalf("body still in space")
	}
	if pb.Body != nil || pb.Shape != nil {
		t.Fatalf("component still references removed body")
	}

	// second removal is a no-op
	tw.physics.RemoveBody(pb)
}

func TestPhysicsResizeBox(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantMass      float64
	}{
		{"double_width", 60, 30, 2},
		{"half", 15, 15, 0.25},
		{"same", 30, 30, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tw := newTestWorld(t, 800, 600)
			pb := tw.body(t, tw.addTile(t, 200, 100))
			old := pb.Shape

			tw.physics.ResizeBox(pb, tc.width, tc.height)

			if pb.Width != tc.width || pb.Height != tc.height {
				t.Fatalf("size %vx%v", pb.Width, pb.Height)
			}
			if !near(pb.Mass, tc.wantMass) || !near(pb.Body.Mass(), tc.wantMass) {
				t.Fatalf("mass %v/%v, want %v", pb.Mass, pb.Body.Mass(), tc.wantMass)
			}
			if tw.physics.Space().ContainsShape(old) {
				t.Fatalf("old shape still in space")
			}
			if !tw.physics.Space().ContainsShape(pb.Shape) {
				t.Fatalf("new shape missing from space")
			}
			if pb.Shape.Filter != old.Filter {
				t.Fatalf("filter not carried over")
			}
			bb := pb.Shape.BB()
			if !near(bb.R-bb.L, tc.width) || !near(bb.T-bb.B, tc.height) {
				t.Fatalf("shape bb %v, want %vx%v", bb, tc.width, tc.height)
			}
		})
	}
}
