package system

import (
	"log"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/ecs/entity"
	"github.com/milk9111/speeed/prefabs"
)

// PlayerSpawnSystem consumes spawn requests and builds the player. Only the
// last request of a tick counts, and nothing spawns while a player exists.
type PlayerSpawnSystem struct {
	Spec *prefabs.PlayerSpec
}

func NewPlayerSpawnSystem(spec *prefabs.PlayerSpec) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{Spec: spec}
}

func (s *PlayerSpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var (
		req     component.SpawnRequest
		pending bool
	)
	ecs.ForEach(w, component.SpawnRequestComponent.Kind(), func(e ecs.Entity, r *component.SpawnRequest) {
		req, pending = *r, true
		w.DestroyEntity(e)
	})
	if !pending || s.Spec == nil {
		return
	}
	if ecs.Count(w, component.PlayerComponent.Kind()) > 0 {
		return
	}

	if _, err := entity.NewPlayerAt(w, s.Spec, req.X, req.Y); err != nil {
		log.Printf("spawn: %v", err)
		return
	}

	ecs.ForEach(w, component.RunTimerComponent.Kind(), func(_ ecs.Entity, t *component.RunTimer) {
		*t = component.RunTimer{}
	})
	ecs.ForEach(w, component.ReplayRecordingComponent.Kind(), func(_ ecs.Entity, r *component.ReplayRecording) {
		r.Points = r.Points[:0]
	})
}
