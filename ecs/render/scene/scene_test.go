package scene

import (
	"image/color"
	"testing"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/entity"
	"github.com/milk9111/letterfall/ecs/system"
	"github.com/milk9111/letterfall/prefabs"
)

var grey = color.NRGBA{R: 0x14, G: 0x15, B: 0x1f, A: 0xff}

func newWorld(t *testing.T, fadeSeconds float64) (*ecs.World, ecs.Entity) {
	t.Helper()
	w := ecs.NewWorld()
	ps := system.NewPhysicsSystem(nil)
	if err := system.NewBoundarySystem(ps, 50).Rebuild(w, 800, 600); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	spec := prefabs.DefaultTileSpec()
	spec.FadeSeconds = fadeSeconds
	tile, _ := system.StaticStyler{Spec: spec}.Style('b')
	e, err := entity.NewTile(w, ps.Space(), spec, tile, 400, 300)
	if err != nil {
		t.Fatalf("new tile: %v", err)
	}
	return w, e
}

func TestBuildDrawsBoundariesBeforeTiles(t *testing.T) {
	w, _ := newWorld(t, 0)

	quads := Build(w, grey)
	if len(quads) != 4 {
		t.Fatalf("expected 3 boundaries and 1 tile, got %d quads", len(quads))
	}

	want := map[[4]float64]bool{
		{0, 300, 50, 600}:   false,
		{800, 300, 50, 600}: false,
		{400, 600, 800, 50}: false,
	}
	for _, q := range quads[:3] {
		key := [4]float64{q.X, q.Y, q.Width, q.Height}
		seen, ok := want[key]
		if !ok || seen {
			t.Fatalf("unexpected boundary quad %+v", q)
		}
		want[key] = true
		if q.Fill != grey || q.Alpha != 1 || q.Label != "" {
			t.Fatalf("boundary quad %+v", q)
		}
	}

	tile := quads[3]
	if tile.Label != "B" || tile.X != 400 || tile.Y != 300 || tile.Width != 30 {
		t.Fatalf("tile quad %+v", tile)
	}
	if tile.Alpha != 1 {
		t.Fatalf("tile without fade should be opaque, alpha %v", tile.Alpha)
	}
}

func TestBuildUsesFadeAlpha(t *testing.T) {
	w, e := newWorld(t, 0.2)
	fade, ok := ecs.Get(w, e, component.SpawnFadeComponent.Kind())
	if !ok {
		t.Fatalf("expected spawn fade")
	}
	fade.Alpha = 0.5

	quads := Build(w, nil)
	last := quads[len(quads)-1]
	if last.Alpha != 0.5 {
		t.Fatalf("alpha %v, want 0.5", last.Alpha)
	}
	if quads[0].Fill != color.Black {
		t.Fatalf("missing boundary fill should default to black")
	}
}

func TestBuildEmptyWorld(t *testing.T) {
	if quads := Build(ecs.NewWorld(), grey); len(quads) != 0 {
		t.Fatalf("expected nothing to draw, got %d", len(quads))
	}
	if quads := Build(nil, grey); quads != nil {
		t.Fatalf("nil world should draw nothing")
	}
}
