package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

// ResizeSystem lays the world out again whenever the viewport size changes.
// It runs both as the resize event handler and as an after-step check; the
// comparison against the recorded size keeps it to one pass per change.
type ResizeSystem struct {
	physics    *PhysicsSystem
	boundaries *BoundarySystem
	source     SizeSource
}

// SizeSource reports the latest observed window size in logical pixels and
// its pixel ratio. ok is false until the window has been measured.
type SizeSource func() (width, height, ratio float64, ok bool)

func NewResizeSystem(physics *PhysicsSystem, boundaries *BoundarySystem) *ResizeSystem {
	return &ResizeSystem{physics: physics, boundaries: boundaries}
}

// HandleResize records the size carried by a resize event and reconciles.
func (r *ResizeSystem) HandleResize(w *ecs.World, evt ecs.Event) {
	data, ok := evt.Data.(ecs.ResizeEvent)
	if !ok {
		return
	}
	vp, ok := viewport(w)
	if !ok {
		return
	}
	vp.Width = data.Width
	vp.Height = data.Height
	if data.PixelRatio > 0 {
		vp.PixelRatio = data.PixelRatio
	}
	r.Reconcile(w)
}

// Observe makes Update pull the window size from src before reconciling, so
// the after-step check sees size changes that have not been dispatched yet.
func (r *ResizeSystem) Observe(src SizeSource) {
	r.source = src
}

func (r *ResizeSystem) Update(w *ecs.World) {
	if r.source != nil {
		if width, height, ratio, ok := r.source(); ok {
			if vp, found := viewport(w); found {
				vp.Width = width
				vp.Height = height
				if ratio > 0 {
					vp.PixelRatio = ratio
				}
			}
		}
	}
	r.Reconcile(w)
}

// Reconcile rescales tiles and rebuilds boundaries if the observed viewport
// differs from the recorded one. It reports whether a rebuild happened.
func (r *ResizeSystem) Reconcile(w *ecs.World) bool {
	vp, ok := viewport(w)
	if !ok {
		return false
	}
	if vp.PixelRatio <= 0 {
		vp.PixelRatio = 1
	}
	if vp.Width <= 0 || vp.Height <= 0 {
		return false
	}
	vp.SurfaceWidth = math.Ceil(vp.Width * vp.PixelRatio)
	vp.SurfaceHeight = math.Ceil(vp.Height * vp.PixelRatio)
	if !vp.Changed() {
		return false
	}

	if err := r.boundaries.Rebuild(w, vp.Width, vp.Height); err != nil {
		log.Printf("resize: %v", err)
	}

	if vp.LastWidth > 0 && vp.LastHeight > 0 {
		sx := vp.Width / vp.LastWidth
		sy := vp.Height / vp.LastHeight
		r.scaleTiles(w, sx, sy)
		log.Printf("resize: %.0fx%.0f -> %.0fx%.0f (scale %.3f, %.3f)", vp.LastWidth, vp.LastHeight, vp.Width, vp.Height, sx, sy)
	}

	vp.LastWidth = vp.Width
	vp.LastHeight = vp.Height
	return true
}

func (r *ResizeSystem) scaleTiles(w *ecs.World, sx, sy float64) {
	for _, e := range w.Query(component.TileComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if pb.Body == nil {
			continue
		}
		pos := pb.Body.Position()
		next := cp.Vector{X: pos.X * sx, Y: pos.Y * sy}
		pb.Body.SetPosition(next)
		r.physics.ResizeBox(pb, pb.Width*sx, pb.Height*sy)

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.X = next.X
			t.Y = next.Y
		}
	}
}

func viewport(w *ecs.World) (*component.Viewport, bool) {
	e, ok := w.First(component.ViewportComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ViewportComponent.Kind())
}
