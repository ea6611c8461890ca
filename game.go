package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/ecs/entity"
	"github.com/milk9111/letterfall/ecs/input"
	"github.com/milk9111/letterfall/ecs/render"
	"github.com/milk9111/letterfall/ecs/system"
	"github.com/milk9111/letterfall/prefabs"
)

type Options struct {
	Width      float64
	Height     float64
	Debug      bool
	Wireframes bool
	Watch      bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler

	physics    *system.PhysicsSystem
	boundaries *system.BoundarySystem
	resize     *system.ResizeSystem
	spawn      *system.SpawnSystem
	input      *input.InputSystem
	renderer   *render.RenderSystem
	hud        *HUD
	watcher    *prefabs.Watcher

	opts      Options
	worldSpec *prefabs.WorldSpec
	tileSpec  *prefabs.TileSpec

	// size reported by the last LayoutF call, in logical pixels
	outsideWidth  float64
	outsideHeight float64
	scale         float64
	// size last pushed as a resize event
	sentWidth  float64
	sentHeight float64
	sentScale  float64
}

func NewGame(opts Options) (*Game, error) {
	worldSpec, err := prefabs.LoadWorldSpec()
	if err != nil {
		return nil, err
	}
	tileSpec, err := prefabs.LoadTileSpec()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:     ecs.NewWorld(),
		opts:      opts,
		worldSpec: worldSpec,
		tileSpec:  tileSpec,
	}

	g.physics = system.NewPhysicsSystem(worldSpec)
	g.boundaries = system.NewBoundarySystem(g.physics, worldSpec.WallThickness)
	g.resize = system.NewResizeSystem(g.physics, g.boundaries)
	g.spawn = system.NewSpawnSystem(g.physics, tileSpec, newStyler(tileSpec), nil)
	g.input = input.NewInputSystem()
	g.renderer = render.NewRenderSystem(worldSpec.Background.Color, worldSpec.BoundaryFill.Color, opts.Wireframes || worldSpec.Wireframes)

	if _, err := entity.NewViewport(g.world, opts.Width, opts.Height, 1); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if _, err := entity.NewPointer(g.world, worldSpec.Pointer); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.resize.Reconcile(g.world)

	bus := g.world.Events()
	bus.On(ecs.EventResize, g.resize.HandleResize)
	bus.On(ecs.EventKey, g.spawn.HandleKey)
	bus.On(ecs.EventPaste, g.spawn.HandlePaste)

	g.resize.Observe(g.observedSize)
	g.physics.OnAfterStep(g.resize)
	g.scheduler = ecs.NewScheduler(
		system.NewPointerSystem(g.physics),
		g.physics,
		system.NewFadeSystem(worldSpec.TimeStep),
	)

	if opts.Debug {
		g.hud = NewHUD()
	}
	if opts.Watch {
		g.watcher = newWatcher()
	}

	return g, nil
}

func newStyler(spec *prefabs.TileSpec) system.TileStyler {
	if spec.Script == "" {
		return system.StaticStyler{Spec: spec}
	}
	styler, err := system.NewScriptStyler(spec.Script, spec)
	if err != nil {
		log.Printf("game: %v; using static tile style", err)
		return system.StaticStyler{Spec: spec}
	}
	return styler
}

func newWatcher() *prefabs.Watcher {
	dirs := []string{prefabs.Dir}
	if info, err := os.Stat(filepath.Join(prefabs.Dir, "scripts")); err == nil && info.IsDir() {
		dirs = append(dirs, filepath.Join(prefabs.Dir, "scripts"))
	}
	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("game: watch %s: %v", prefabs.Dir, err)
		return nil
	}
	log.Printf("game: watching %v for changes", dirs)
	return watcher
}

func (g *Game) Update() error {
	g.reload()

	if g.outsideWidth > 0 && g.outsideHeight > 0 &&
		(g.outsideWidth != g.sentWidth || g.outsideHeight != g.sentHeight || g.scale != g.sentScale) {
		g.world.Events().Push(ecs.Event{Type: ecs.EventResize, Data: ecs.ResizeEvent{
			Width:      g.outsideWidth,
			Height:     g.outsideHeight,
			PixelRatio: g.scale,
		}})
		g.sentWidth, g.sentHeight, g.sentScale = g.outsideWidth, g.outsideHeight, g.scale
	}

	g.input.Update(g.world)
	g.world.Events().Dispatch(g.world)
	g.scheduler.Update(g.world)

	if g.hud != nil {
		g.hud.Update(g.world)
	}
	return nil
}

// reload applies spec and script edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	changes, err := g.watcher.Poll()
	if err != nil {
		log.Printf("game: watch: %v", err)
	}
	for _, c := range changes {
		switch c.Kind {
		case prefabs.ChangeWorld:
			spec, err := prefabs.LoadWorldSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", c.Name, err)
				continue
			}
			g.applyWorldSpec(spec)
		case prefabs.ChangeTile:
			spec, err := prefabs.LoadTileSpec()
			if err != nil {
				log.Printf("game: reload %s: %v", c.Name, err)
				continue
			}
			g.tileSpec = spec
			g.spawn.SetSpec(spec)
			g.spawn.SetStyler(newStyler(spec))
		case prefabs.ChangeScript:
			if c.Name != g.tileSpec.Script {
				continue
			}
			g.spawn.SetStyler(newStyler(g.tileSpec))
		}
		log.Printf("game: reloaded %s (%s)", c.Name, c.Kind)
	}
}

func (g *Game) applyWorldSpec(spec *prefabs.WorldSpec) {
	g.worldSpec = spec
	g.physics.Configure(spec)
	g.boundaries.SetThickness(spec.WallThickness)
	g.renderer.Background = spec.Background.Color
	g.renderer.BoundaryFill = spec.BoundaryFill.Color
	g.renderer.Wireframes = g.opts.Wireframes || spec.Wireframes
	if vp, ok := g.viewport(); ok && vp.Width > 0 && vp.Height > 0 {
		if err := g.boundaries.Rebuild(g.world, vp.Width, vp.Height); err != nil {
			log.Printf("game: rebuild boundaries: %v", err)
		}
	}
}

func (g *Game) viewport() (*component.Viewport, bool) {
	e, ok := g.world.First(component.ViewportComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(g.world, e, component.ViewportComponent.Kind())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, g.physics.Space(), screen)
	if g.hud != nil {
		g.hud.Draw(screen)
	}
}

// observedSize is the size from the most recent LayoutF call.
func (g *Game) observedSize() (float64, float64, float64, bool) {
	if g.outsideWidth <= 0 || g.outsideHeight <= 0 {
		return 0, 0, 0, false
	}
	return g.outsideWidth, g.outsideHeight, g.scale, true
}

// LayoutF keeps the play area equal to the window in logical pixels and
// renders at device resolution.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	g.outsideWidth = outsideWidth
	g.outsideHeight = outsideHeight
	g.scale = scale
	return outsideWidth * scale, outsideHeight * scale
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
