package component

// Viewport holds the logical window size. Width and Height are the latest
// observed size; LastWidth and LastHeight are the size the world was last
// laid out for. SurfaceWidth and SurfaceHeight are the drawing surface in
// device pixels.
type Viewport struct {
	Width      float64
	Height     float64
	PixelRatio float64

	LastWidth  float64
	LastHeight float64

	SurfaceWidth  float64
	SurfaceHeight float64
}

// Changed reports whether the observed size differs from the laid-out size.
func (v *Viewport) Changed() bool {
	return v.Width != v.LastWidth || v.Height != v.LastHeight
}

var ViewportComponent = NewComponent[Viewport]()
