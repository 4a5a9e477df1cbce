package system

import (
	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fadeSeconds is how long the black overlay takes to clear after a (re)load.
const fadeSeconds = 0.35

// NewFadeIn creates an overlay that starts opaque and clears.
func NewFadeIn(w *ecs.World) ecs.Entity {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.FadeComponent.Kind(), &component.Fade{
		Tween: gween.New(1, 0, fadeSeconds, ease.OutQuad),
		Alpha: 1,
	})
	return e
}

// FadeSystem advances overlay tweens and drops finished overlays.
type FadeSystem struct{}

func NewFadeSystem() *FadeSystem {
	return &FadeSystem{}
}

func (s *FadeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.FadeComponent.Kind(), func(e ecs.Entity, f *component.Fade) {
		if f.Tween == nil {
			w.DestroyEntity(e)
			return
		}
		alpha, done := f.Tween.Update(1.0 / common.TPS)
		f.Alpha = float64(alpha)
		if done {
			w.DestroyEntity(e)
		}
	})
}
