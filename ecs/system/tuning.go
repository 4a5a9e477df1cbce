package system

import (
	"log"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/ecs/entity"
	"github.com/milk9111/speeed/prefabs"
)

// SpecSource reports changed prefab files without blocking.
type SpecSource interface {
	Poll() (string, bool)
}

// TuningSystem reloads player.yaml when it changes on disk and applies the new
// tuning to the live player. Runtime flags are left untouched.
type TuningSystem struct {
	source SpecSource
	load   func() (*prefabs.PlayerSpec, error)
	// OnReload receives every successfully loaded spec.
	OnReload func(*prefabs.PlayerSpec)
}

func NewTuningSystem(source SpecSource, onReload func(*prefabs.PlayerSpec)) *TuningSystem {
	return &TuningSystem{source: source, load: prefabs.LoadPlayerSpec, OnReload: onReload}
}

func (s *TuningSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.source == nil {
		return
	}
	changed := false
	for {
		name, ok := s.source.Poll()
		if !ok {
			break
		}
		if name == "player.yaml" {
			changed = true
		}
	}
	if !changed {
		return
	}

	spec, err := s.load()
	if err != nil {
		log.Printf("tuning: keeping previous tuning: %v", err)
		return
	}
	if s.OnReload != nil {
		s.OnReload(spec)
	}
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		entity.ApplyTuning(p, spec)
	})
	log.Printf("tuning: applied player.yaml")
}
