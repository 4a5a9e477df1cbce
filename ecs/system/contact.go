package system

import (
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// PlayerContactSystem turns the sensor results of the last physics step into
// player state: grounded/airborne, jump refills and the natural jump apex.
type PlayerContactSystem struct{}

func NewPlayerContactSystem() *PlayerContactSystem {
	return &PlayerContactSystem{}
}

// contactFacts is what the sensors observed during the last step.
type contactFacts struct {
	grounded  bool
	wallBegan bool
	onWall    bool
}

func (s *PlayerContactSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, player, ok := singlePlayer(w)
	if !ok {
		return
	}
	ground, ok := playerSensor(w, e, component.SensorGround)
	if !ok {
		return
	}
	wall, ok := playerSensor(w, e, component.SensorWallJump)
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	gravity, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())

	resolveContacts(player, gravity, vel.Y, senseContacts(w, ground, wall))
}

func senseContacts(w *ecs.World, ground, wall *component.Sensor) contactFacts {
	var f contactFacts
	for other := range ground.Overlaps {
		if surface, ok := ecs.Get(w, ecs.Entity(other), component.SurfaceComponent.Kind()); ok && surface.Ground {
			f.grounded = true
			break
		}
	}
	for _, other := range wall.Began {
		if restoresJump(w, other) {
			f.wallBegan = true
			break
		}
	}
	for other := range wall.Overlaps {
		if restoresJump(w, other) {
			f.onWall = true
			break
		}
	}
	return f
}

func restoresJump(w *ecs.World, other uint64) bool {
	surface, ok := ecs.Get(w, ecs.Entity(other), component.SurfaceComponent.Kind())
	return ok && surface.RestoresJump
}

// resolveContacts applies one tick of contact facts. The wall refill is
// guarded by OnWall as it stood before this tick.
func resolveContacts(p *component.Player, gravity *component.GravityScale, vy float64, f contactFacts) {
	wasInAir := p.InAir
	p.InAir = !f.grounded
	if f.grounded {
		p.GroundPound = false
		if wasInAir {
			p.RefillJumps()
		}
	}

	if f.wallBegan && !p.OnWall {
		p.RefillJumps()
	}
	p.OnWall = f.onWall

	if p.Jumping && vy <= 0 {
		p.SetJumping(false, gravity)
	}
}
