package system

import (
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// ReplaySystem records the player position once per tick until the run is
// finished.
type ReplaySystem struct{}

func NewReplaySystem() *ReplaySystem {
	return &ReplaySystem{}
}

func (s *ReplaySystem) Update(w *ecs.World) {
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
	if _, timer, err := ecs.Single(w, component.RunTimerComponent.Kind()); err == nil && timer.Done {
		return
	}
	ecs.ForEach(w, component.ReplayRecordingComponent.Kind(), func(_ ecs.Entity, r *component.ReplayRecording) {
		r.Points = append(r.Points, component.ReplayPoint{X: t.X, Y: t.Y})
	})
}

// GhostSystem moves each ghost one recorded point per tick and parks it on
// the last point.
type GhostSystem struct{}

func NewGhostSystem() *GhostSystem {
	return &GhostSystem{}
}

func (s *GhostSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.GhostComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, g *component.Ghost, t *component.Transform) {
		if len(g.Points) == 0 {
			return
		}
		if g.Frame >= len(g.Points) {
			g.Frame = len(g.Points) - 1
		}
		p := g.Points[g.Frame]
		t.X, t.Y = p.X, p.Y
		if g.Frame < len(g.Points)-1 {
			g.Frame++
		}
	})
}
