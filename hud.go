package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// HUD is the debug overlay in the top-left corner.
type HUD struct {
	ui    *ebitenui.UI
	label *widget.Text
}

func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 160})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	label := widget.NewText(
		widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	panel.AddChild(label)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(10)),
		)),
	)
	root.AddChild(panel)

	return &HUD{ui: &ebitenui.UI{Container: root}, label: label}
}

func (h *HUD) Update(w *ecs.World) {
	tiles := ecs.Count(w, component.TileComponent.Kind())
	width, height, ratio := 0.0, 0.0, 1.0
	if e, ok := w.First(component.ViewportComponent.Kind()); ok {
		if vp, ok := ecs.Get(w, e, component.ViewportComponent.Kind()); ok {
			width, height, ratio = vp.Width, vp.Height, vp.PixelRatio
		}
	}
	h.label.Label = fmt.Sprintf("Tiles: %d\nViewport: %.0fx%.0f @%.2gx\nFPS: %.1f", tiles, width, height, ratio, ebiten.ActualFPS())
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
