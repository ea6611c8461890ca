package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	WorldSpecFile = "world.yaml"
	TileSpecFile  = "tile.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldSpec configures the physics space, the play-area boundaries and the
// renderer.
type WorldSpec struct {
	Name          string      `yaml:"name"`
	Gravity       float64     `yaml:"gravity"`
	Iterations    int         `yaml:"iterations"`
	TimeStep      float64     `yaml:"time_step"`
	WallThickness float64     `yaml:"wall_thickness"`
	Background    *YAMLColor  `yaml:"background"`
	BoundaryFill  *YAMLColor  `yaml:"boundary_fill"`
	Wireframes    bool        `yaml:"wireframes"`
	Pointer       PointerSpec `yaml:"pointer"`
}

type PointerSpec struct {
	Stiffness  float64 `yaml:"stiffness"`
	MaxForce   float64 `yaml:"max_force"`
	GrabRadius float64 `yaml:"grab_radius"`
	Follow     float64 `yaml:"follow"`
}

// DefaultWorldSpec mirrors prefabs/world.yaml.
func DefaultWorldSpec() *WorldSpec {
	spec := &WorldSpec{Name: "world"}
	spec.applyDefaults()
	return spec
}

func (s *WorldSpec) applyDefaults() {
	if s.Gravity == 0 {
		s.Gravity = 1000
	}
	if s.Iterations <= 0 {
		s.Iterations = 20
	}
	if s.TimeStep <= 0 {
		s.TimeStep = 1.0 / 60.0
	}
	if s.WallThickness <= 0 {
		s.WallThickness = 50
	}
	if s.Background == nil {
		s.Background = &YAMLColor{Color: color.White}
	}
	if s.BoundaryFill == nil {
		s.BoundaryFill = &YAMLColor{Color: color.NRGBA{R: 0x14, G: 0x15, B: 0x1f, A: 0xff}}
	}
	if s.Pointer.Stiffness <= 0 || s.Pointer.Stiffness > 1 {
		s.Pointer.Stiffness = 0.2
	}
	if s.Pointer.MaxForce <= 0 {
		s.Pointer.MaxForce = 50000
	}
	if s.Pointer.GrabRadius <= 0 {
		s.Pointer.GrabRadius = 5
	}
	if s.Pointer.Follow <= 0 || s.Pointer.Follow > 1 {
		s.Pointer.Follow = 0.25
	}
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldSpecFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

// TileSpec configures spawned letter tiles.
type TileSpec struct {
	Name        string     `yaml:"name"`
	Size        float64    `yaml:"size"`
	Mass        float64    `yaml:"mass"`
	Friction    float64    `yaml:"friction"`
	Elasticity  float64    `yaml:"elasticity"`
	Fill        *YAMLColor `yaml:"fill"`
	Text        TextSpec   `yaml:"text"`
	FadeSeconds float64    `yaml:"fade_seconds"`
	Script      string     `yaml:"script"`
	PasteLimit  int        `yaml:"paste_limit"`
}

type TextSpec struct {
	Color *YAMLColor `yaml:"color"`
	Size  float64    `yaml:"size"`
}

// DefaultTileSpec mirrors prefabs/tile.yaml without a style script.
func DefaultTileSpec() *TileSpec {
	spec := &TileSpec{Name: "tile"}
	spec.applyDefaults()
	return spec
}

func (s *TileSpec) applyDefaults() {
	if s.Size <= 0 {
		s.Size = 30
	}
	if s.Mass <= 0 {
		s.Mass = 1
	}
	if s.Friction == 0 {
		s.Friction = 0.8
	}
	if s.Fill == nil {
		s.Fill = &YAMLColor{Color: color.Black}
	}
	if s.Text.Color == nil {
		s.Text.Color = &YAMLColor{Color: color.White}
	}
	if s.Text.Size <= 0 {
		s.Text.Size = 20
	}
	if s.PasteLimit <= 0 {
		s.PasteLimit = 64
	}
}

func LoadTileSpec() (*TileSpec, error) {
	spec, err := LoadSpec[TileSpec](TileSpecFile)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rrggbbaa"; the leading '#' is optional.
func ParseHexColor(value string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(value), "#")

	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return nil, fmt.Errorf("invalid color %s: %w", value, err)
		}
		rgba[i] = v
	}

	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
