package system

import (
	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// PlayerControllerSystem applies the sampled input to the player before the
// physics step.
type PlayerControllerSystem struct {
	dt float64
}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{dt: 1.0 / common.TPS}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}
	e, player, ok := singlePlayer(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	gravity, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())

	applyMovement(player, input, vel, gravity, bodyComp, p.dt)
}

func applyMovement(player *component.Player, in *component.Input, vel *component.Velocity, gravity *component.GravityScale, bodyComp *component.PhysicsBody, dt float64) {
	if in.JumpPressed && player.RemainingJumps > 0 {
		vel.Y = max(vel.Y, player.JumpVelocity)
		player.RemainingJumps--
		player.SetJumping(true, gravity)
	}

	if in.JumpReleased {
		player.SetJumping(false, gravity)
	}

	if in.GroundPoundPressed {
		vel.Y = -2 * player.JumpVelocity
		player.GroundPound = true
	}

	left, right := in.Left, in.Right
	if player.DirectionSwapped {
		left, right = right, left
	}
	step := player.HorizontalSpeed * dt
	if left && vel.X > -player.MaxSpeed {
		vel.X = common.MoveToward(vel.X, -player.MaxSpeed, step)
	}
	if right && vel.X < player.MaxSpeed {
		vel.X = common.MoveToward(vel.X, player.MaxSpeed, step)
	}

	if player.SwapReleased(in) {
		player.ClearSwap()
	}

	if in.AnyDirection() {
		bodyComp.Friction = 0
	} else {
		bodyComp.Friction = player.StopFriction
	}
}
