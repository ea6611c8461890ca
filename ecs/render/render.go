package render

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/render/scene"
)

var colorWhite = color.White

type RenderSystem struct {
	Background   color.Color
	BoundaryFill color.Color
	Wireframes   bool

	fontErrLogged bool
}

func NewRenderSystem(background, boundaryFill color.Color, wireframes bool) *RenderSystem {
	if background == nil {
		background = colorWhite
	}
	return &RenderSystem{Background: background, BoundaryFill: boundaryFill, Wireframes: wireframes}
}

// Draw paints the background, the boundaries and every tile. World
// coordinates are logical pixels; the screen is in device pixels, so
// everything is scaled by the viewport's pixel ratio.
func (r *RenderSystem) Draw(w *ecs.World, space *cp.Space, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	ratio := 1.0
	if e, ok := w.First(component.ViewportComponent.Kind()); ok {
		if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok && vp.PixelRatio > 0 {
			ratio = vp.PixelRatio
		}
	}

	screen.Fill(r.Background)

	if r.Wireframes {
		DrawWireframes(space, screen, ratio)
		return
	}

	for _, q := range scene.Build(w, r.BoundaryFill) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(q.Width, q.Height)
		op.GeoM.Translate(-q.Width/2, -q.Height/2)
		op.GeoM.Rotate(q.Rotation)
		op.GeoM.Translate(q.X, q.Y)
		op.GeoM.Scale(ratio, ratio)
		op.ColorScale.ScaleWithColor(q.Fill)
		op.ColorScale.ScaleAlpha(q.Alpha)
		screen.DrawImage(Pixel(), op)

		r.drawLabel(screen, q, ratio)
	}
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, q scene.Quad, ratio float64) {
	if q.Label == "" {
		return
	}
	face, err := Face(q.FontSize * ratio)
	if err != nil {
		if !r.fontErrLogged {
			log.Printf("render: %v", err)
			r.fontErrLogged = true
		}
		return
	}

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Rotate(q.Rotation)
	op.GeoM.Translate(q.X*ratio, q.Y*ratio)
	op.ColorScale.ScaleWithColor(q.TextColor)
	op.ColorScale.ScaleAlpha(q.Alpha)
	text.Draw(screen, q.Label, face, op)
}
