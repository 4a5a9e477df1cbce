package entity

import (
	"fmt"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/prefabs"
)

const playerLayer = 10

// ApplyTuning copies the tuning half of spec into p and leaves the runtime
// flags alone. The jump count is clamped to the new allowance.
func ApplyTuning(p *component.Player, spec *prefabs.PlayerSpec) {
	if p == nil || spec == nil {
		return
	}
	p.JumpVelocity = spec.JumpVelocity
	p.HorizontalSpeed = spec.HorizontalSpeed
	p.MaxSpeed = spec.MaxSpeed
	p.JumpAllowance = spec.JumpAllowance
	p.AscentGravityScale = spec.AscentGravityScale
	p.StopFriction = spec.StopFriction
	p.RemainingJumps = min(p.RemainingJumps, p.JumpAllowance)
}

// NewPlayerAt builds the player at (x, y) together with its ground and
// wall-jump sensors. A fresh player is airborne with a full jump allowance.
func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	player := &component.Player{InAir: true}
	ApplyTuning(player, spec)
	player.RefillJumps()

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), player); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: 1}); err != nil {
		return 0, fmt.Errorf("player: add gravity scale: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:     spec.Collider.Radius,
		Width:      spec.Collider.Width,
		Height:     spec.Collider.Height,
		Mass:       spec.Collider.Mass,
		Friction:   spec.Collider.Friction,
		Elasticity: spec.Collider.Elasticity,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.BodyContactsComponent.Kind(), &component.BodyContacts{}); err != nil {
		return 0, fmt.Errorf("player: add body contacts: %w", err)
	}

	size := 2 * spec.Collider.Radius
	width, height := size, size
	if spec.Collider.Radius <= 0 {
		width, height = spec.Collider.Width, spec.Collider.Height
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{Width: width, Height: height, Color: spec.Color.RGBA}); err != nil {
		return 0, fmt.Errorf("player: add shape: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerLayer}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	if _, err := newSensor(w, e, component.SensorGround, spec.GroundSensor); err != nil {
		return 0, err
	}
	if _, err := newSensor(w, e, component.SensorWallJump, spec.WallJumpSensor); err != nil {
		return 0, err
	}
	return e, nil
}

func newSensor(w *ecs.World, owner ecs.Entity, kind component.SensorKind, spec prefabs.SensorSpec) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SensorComponent.Kind(), &component.Sensor{
		Kind:     kind,
		Owner:    uint64(owner),
		OffsetX:  spec.OffsetX,
		OffsetY:  spec.OffsetY,
		Width:    spec.Width,
		Height:   spec.Height,
		Overlaps: map[uint64]struct{}{},
	}); err != nil {
		return 0, fmt.Errorf("player: add %s sensor: %w", kind, err)
	}
	return e, nil
}
