package system

import (
	"math"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// LaunchpadSystem overrides the player's velocity while it is within a
// launchpad's radius.
type LaunchpadSystem struct{}

func NewLaunchpadSystem() *LaunchpadSystem {
	return &LaunchpadSystem{}
}

func (s *LaunchpadSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, _, ok := singlePlayer(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	ecs.ForEach2(w, component.LaunchpadComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pad *component.Launchpad, pt *component.Transform) {
		if math.Hypot(t.X-pt.X, t.Y-pt.Y) <= pad.Radius {
			vel.X, vel.Y = pad.VelocityX, pad.VelocityY
		}
	})
}
