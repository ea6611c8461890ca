package system

import (
	"log"
	"math/rand/v2"
	"unicode/utf8"

	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/entity"
	"github.com/milk9111/letterfall/prefabs"
)

// SpawnSystem turns letter key presses and pasted text into falling tiles.
type SpawnSystem struct {
	physics *PhysicsSystem
	spec    *prefabs.TileSpec
	styler  TileStyler
	rng     *rand.Rand
}

// NewSpawnSystem builds a spawner. A nil styler uppercases with the spec's
// colours; a nil rng uses the global source.
func NewSpawnSystem(physics *PhysicsSystem, spec *prefabs.TileSpec, styler TileStyler, rng *rand.Rand) *SpawnSystem {
	if spec == nil {
		spec = prefabs.DefaultTileSpec()
	}
	if styler == nil {
		styler = StaticStyler{Spec: spec}
	}
	return &SpawnSystem{physics: physics, spec: spec, styler: styler, rng: rng}
}

func (s *SpawnSystem) SetSpec(spec *prefabs.TileSpec) {
	if spec != nil {
		s.spec = spec
	}
}

func (s *SpawnSystem) SetStyler(styler TileStyler) {
	if styler != nil {
		s.styler = styler
	}
}

// HandleKey spawns a tile when the key is a single ASCII letter.
func (s *SpawnSystem) HandleKey(w *ecs.World, evt ecs.Event) {
	data, ok := evt.Data.(ecs.KeyEvent)
	if !ok {
		return
	}
	ch, ok := letterKey(data.Key)
	if !ok {
		return
	}
	if _, err := s.Spawn(w, ch); err != nil {
		log.Printf("spawn: %v", err)
	}
}

// HandlePaste spawns one tile per ASCII letter in the pasted text, up to the
// spec's paste limit.
func (s *SpawnSystem) HandlePaste(w *ecs.World, evt ecs.Event) {
	data, ok := evt.Data.(ecs.PasteEvent)
	if !ok {
		return
	}
	spawned := 0
	for _, r := range data.Text {
		if !isLetter(r) {
			continue
		}
		if spawned >= s.spec.PasteLimit {
			log.Printf("spawn: paste truncated at %d tiles", spawned)
			return
		}
		if _, err := s.Spawn(w, r); err != nil {
			log.Printf("spawn: %v", err)
			return
		}
		spawned++
	}
}

// Spawn drops a tile for ch at the top of the viewport, at a uniformly random
// x that keeps the whole tile inside the play area.
func (s *SpawnSystem) Spawn(w *ecs.World, ch rune) (ecs.Entity, error) {
	tile, err := s.styler.Style(ch)
	if err != nil {
		log.Printf("spawn: %v", err)
		tile, _ = StaticStyler{Spec: s.spec}.Style(ch)
	}

	width := 0.0
	if vp, ok := viewport(w); ok {
		width = vp.Width
	}
	size := s.spec.Size
	x := s.float64()*max(width-size, 0) + size/2

	return entity.NewTile(w, s.physics.Space(), s.spec, tile, x, 0)
}

func (s *SpawnSystem) float64() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

func letterKey(key string) (rune, bool) {
	if utf8.RuneCountInString(key) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(key)
	return r, isLetter(r)
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
