package system

import (
	"math"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// FinishSystem advances the run timer and reports the run once the player
// reaches a finish marker.
type FinishSystem struct{}

func NewFinishSystem() *FinishSystem {
	return &FinishSystem{}
}

func (s *FinishSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	_, timer, err := ecs.Single(w, component.RunTimerComponent.Kind())
	if err != nil || timer.Done {
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
	timer.Ticks++

	reached := false
	ecs.ForEach2(w, component.FinishComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, f *component.Finish, ft *component.Transform) {
		if math.Hypot(t.X-ft.X, t.Y-ft.Y) <= f.Radius {
			reached = true
		}
	})
	if !reached {
		return
	}
	timer.Done = true
	req := w.CreateEntity()
	_ = ecs.Add(w, req, component.LevelCompleteRequestComponent.Kind(), &component.LevelCompleteRequest{Ticks: timer.Ticks})
}

// LevelCompletions drains the pending level-complete requests.
func LevelCompletions(w *ecs.World) ([]component.LevelCompleteRequest, bool) {
	var reqs []component.LevelCompleteRequest
	ecs.ForEach(w, component.LevelCompleteRequestComponent.Kind(), func(e ecs.Entity, r *component.LevelCompleteRequest) {
		reqs = append(reqs, *r)
		w.DestroyEntity(e)
	})
	return reqs, len(reqs) > 0
}
