package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
)

const (
	wireCircleSegments = 24
	wireDotSize        = 4
)

// DrawWireframes outlines every shape in the space. Constraints are left out,
// so a held tile shows no joint.
func DrawWireframes(space *cp.Space, screen *ebiten.Image, ratio float64) {
	if space == nil || screen == nil {
		return
	}
	if ratio <= 0 {
		ratio = 1
	}
	cp.DrawSpace(space, &wireframeDrawer{screen: screen, ratio: ratio})
}

type wireframeDrawer struct {
	screen *ebiten.Image
	ratio  float64
}

func (d *wireframeDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawCircle(pos, radius, outline)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, outline)
}

func (d *wireframeDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *wireframeDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, outline)
	if radius > 0 {
		d.drawCircle(a, radius, outline)
		d.drawCircle(b, radius, outline)
	}
}

func (d *wireframeDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *wireframeDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = wireDotSize
	}
	half := size / 2
	d.drawLine(cp.Vector{X: pos.X - half, Y: pos.Y}, cp.Vector{X: pos.X + half, Y: pos.Y}, fill)
	d.drawLine(cp.Vector{X: pos.X, Y: pos.Y - half}, cp.Vector{X: pos.X, Y: pos.Y + half}, fill)
}

func (d *wireframeDrawer) Flags() uint {
	return cp.DRAW_SHAPES
}

func (d *wireframeDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.1, G: 0.1, B: 0.1, A: 1}
}

func (d *wireframeDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if body := shape.Body(); body != nil && body.GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.5, G: 0.5, B: 0.5, A: 1}
	}
	return cp.FColor{R: 0.2, G: 0.4, B: 0.9, A: 1}
}

func (d *wireframeDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{}
}

func (d *wireframeDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *wireframeDrawer) Data() interface{} {
	return nil
}

func (d *wireframeDrawer) drawLine(a, b cp.Vector, c cp.FColor) {
	ebitenutil.DrawLine(d.screen, a.X*d.ratio, a.Y*d.ratio, b.X*d.ratio, b.Y*d.ratio, toNRGBA(c))
}

func (d *wireframeDrawer) drawPolygon(verts []cp.Vector, c cp.FColor) {
	for i := range verts {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], c)
	}
}

func (d *wireframeDrawer) drawCircle(center cp.Vector, radius float64, c cp.FColor) {
	if radius <= 0 {
		return
	}
	points := make([]cp.Vector, 0, wireCircleSegments)
	for i := 0; i < wireCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(wireCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, c)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
