package system

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/letterfall/ecs/component"
	"github.com/milk9111/letterfall/prefabs"
)

// TileStyler decides how a tile for a typed character looks.
type TileStyler interface {
	Style(ch rune) (component.Tile, error)
}

// StaticStyler uppercases the character and uses the colours from the tile
// spec.
type StaticStyler struct {
	Spec *prefabs.TileSpec
}

func (s StaticStyler) Style(ch rune) (component.Tile, error) {
	spec := s.Spec
	if spec == nil {
		spec = prefabs.DefaultTileSpec()
	}
	return component.Tile{
		Char:      ch,
		Label:     string(unicode.ToUpper(ch)),
		Fill:      spec.Fill.Color,
		TextColor: spec.Text.Color.Color,
		FontSize:  spec.Text.Size,
	}, nil
}

// ScriptStyler runs a tengo script per tile. The script receives `ch` and
// must set `label`; `fill` and `text_color` are optional hex colours.
type ScriptStyler struct {
	name     string
	compiled *tengo.Compiled
	fallback StaticStyler
}

// NewScriptStyler loads and compiles a script from prefabs/scripts.
func NewScriptStyler(name string, spec *prefabs.TileSpec) (*ScriptStyler, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("tile style: load %s: %w", name, err)
	}
	return CompileScriptStyler(name, src, spec)
}

func CompileScriptStyler(name string, src []byte, spec *prefabs.TileSpec) (*ScriptStyler, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := script.Add("ch", ""); err != nil {
		return nil, fmt.Errorf("tile style: %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("tile style: compile %s: %w", name, err)
	}
	return &ScriptStyler{name: name, compiled: compiled, fallback: StaticStyler{Spec: spec}}, nil
}

func (s *ScriptStyler) Style(ch rune) (component.Tile, error) {
	tile, _ := s.fallback.Style(ch)

	if err := s.compiled.Set("ch", string(ch)); err != nil {
		return tile, fmt.Errorf("tile style: %s: set ch: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return tile, fmt.Errorf("tile style: run %s: %w", s.name, err)
	}

	label := s.compiled.Get("label")
	if label.IsUndefined() || strings.TrimSpace(label.String()) == "" {
		return tile, fmt.Errorf("tile style: %s: script did not set label", s.name)
	}
	tile.Label = label.String()

	if v := s.compiled.Get("fill"); !v.IsUndefined() {
		c, err := prefabs.ParseHexColor(v.String())
		if err != nil {
			return tile, fmt.Errorf("tile style: %s: fill: %w", s.name, err)
		}
		tile.Fill = c
	}
	if v := s.compiled.Get("text_color"); !v.IsUndefined() {
		c, err := prefabs.ParseHexColor(v.String())
		if err != nil {
			return tile, fmt.Errorf("tile style: %s: text_color: %w", s.name, err)
		}
		tile.TextColor = c
	}
	return tile, nil
}
