package system

import (
	"testing"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/entity"
	"github.com/milk9111/letterfall/prefabs"
)

const floatTolerance = 1e-9

type testWorld struct {
	w          *ecs.World
	physics    *PhysicsSystem
	boundaries *BoundarySystem
	resize     *ResizeSystem
}

// newTestWorld lays out a world of the given size the same way the game does
// at startup.
func newTestWorld(t *testing.T, width, height float64) *testWorld {
	t.Helper()
	tw := &testWorld{w: ecs.NewWorld()}
	tw.physics = NewPhysicsSystem(prefabs.DefaultWorldSpec())
	tw.boundaries = NewBoundarySystem(tw.physics, 50)
	tw.resize = NewResizeSystem(tw.physics, tw.boundaries)
	if _, err := entity.NewViewport(tw.w, width, height, 1); err != nil {
		t.Fatalf("new viewport: %v", err)
	}
	if !tw.resize.Reconcile(tw.w) {
		t.Fatalf("initial reconcile should lay out the world")
	}
	return tw
}

func (tw *testWorld) viewport(t *testing.T) *component.Viewport {
	t.Helper()
	vp, ok := viewport(tw.w)
	if !ok {
		t.Fatalf("missing viewport")
	}
	return vp
}

func (tw *testWorld) addTile(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	spec := prefabs.DefaultTileSpec()
	tile, _ := StaticStyler{Spec: spec}.Style('x')
	e, err := entity.NewTile(tw.w, tw.physics.Space(), spec, tile, x, y)
	if err != nil {
		t.Fatalf("new tile: %v", err)
	}
	return e
}

func (tw *testWorld) body(t *testing.T, e ecs.Entity) *component.PhysicsBody {
	t.Helper()
	pb, ok := ecs.Get(tw.w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no physics body", e)
	}
	return pb
}

func boundaries(t *testing.T, w *ecs.World) map[component.BoundarySide]*component.PhysicsBody {
	t.Helper()
	out := make(map[component.BoundarySide]*component.PhysicsBody)
	for _, e := range w.Query(component.BoundaryComponent.Kind()) {
		b, _ := ecs.Get(w, e, component.BoundaryComponent.Kind())
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok {
			t.Fatalf("boundary %s has no body", b.Side)
		}
		if _, dup := out[b.Side]; dup {
			t.Fatalf("duplicate %s boundary", b.Side)
		}
		out[b.Side] = pb
	}
	return out
}

func near(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= floatTolerance*max(1, abs(a), abs(b))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
