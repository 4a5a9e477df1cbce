package system

import (
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// DefaultFatalHeight is the world height at or below which a run restarts.
const DefaultFatalHeight = -5.0

// FallMonitorSystem requests a restart every tick the player is at or below
// FatalHeight.
type FallMonitorSystem struct {
	FatalHeight float64
}

func NewFallMonitorSystem(fatalHeight float64) *FallMonitorSystem {
	return &FallMonitorSystem{FatalHeight: fatalHeight}
}

func (f *FallMonitorSystem) Update(w *ecs.World) {
	if f == nil || w == nil {
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
	if t.Y <= f.FatalHeight {
		RequestRestart(w, "fell")
	}
}
