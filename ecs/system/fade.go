package system

import (
	"github.com/milk9111/letterfall/ecs"
	"github.com/milk9111/letterfall/ecs/component"
)

// FadeSystem advances spawn fades and drops them once they finish.
type FadeSystem struct {
	dt float32
}

func NewFadeSystem(dt float64) *FadeSystem {
	return &FadeSystem{dt: float32(dt)}
}

func (f *FadeSystem) Update(w *ecs.World) {
	var done []ecs.Entity
	ecs.ForEach(w, component.SpawnFadeComponent.Kind(), func(e ecs.Entity, fade *component.SpawnFade) {
		if fade.Tween == nil {
			done = append(done, e)
			return
		}
		alpha, finished := fade.Tween.Update(f.dt)
		fade.Alpha = float64(alpha)
		if finished {
			done = append(done, e)
		}
	})
	for _, e := range done {
		ecs.Remove(w, e, component.SpawnFadeComponent.Kind())
	}
}
