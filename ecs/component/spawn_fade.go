package component

import "github.com/tanema/gween"

// SpawnFade fades a freshly spawned tile in.
type SpawnFade struct {
	Tween *gween.Tween
	Alpha float64
}

var SpawnFadeComponent = NewComponent[SpawnFade]()
