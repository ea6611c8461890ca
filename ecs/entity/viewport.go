package entity

import (
	"fmt"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

// NewViewport creates the viewport singleton. The recorded size starts at
// zero so the first reconcile lays the world out without rescaling.
func NewViewport(w *ecs.World, width, height, pixelRatio float64) (ecs.Entity, error) {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.ViewportComponent.Kind(), &component.Viewport{
		Width:      width,
		Height:     height,
		PixelRatio: pixelRatio,
	}); err != nil {
		return 0, fmt.Errorf("viewport: add viewport: %w", err)
	}
	return e, nil
}
