package system

import (
	"testing"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDT = 1.0 / 60

func groundedPlayer() *component.Player {
	return &component.Player{
		JumpVelocity:       23.1,
		HorizontalSpeed:    60,
		MaxSpeed:           12,
		JumpAllowance:      1,
		AscentGravityScale: 0.5,
		StopFriction:       1,
		RemainingJumps:     1,
	}
}

func TestJumpFromGround(t *testing.T) {
	p := groundedPlayer()
	vel := &component.Velocity{}
	g := &component.GravityScale{Scale: 1}
	body := &component.PhysicsBody{}

	applyMovement(p, &component.Input{JumpPressed: true}, vel, g, body, testDT)

	assert.Equal(t, 23.1, vel.Y)
	assert.Equal(t, 0, p.RemainingJumps)
	assert.True(t, p.Jumping)
	assert.Equal(t, 0.5, g.Scale)
}

func TestJumpKeepsFasterAscent(t *testing.T) {
	p := groundedPlayer()
	vel := &component.Velocity{Y: 45}
	applyMovement(p, &component.Input{JumpPressed: true}, vel, &component.GravityScale{Scale: 1}, &component.PhysicsBody{}, testDT)
	assert.Equal(t, 45.0, vel.Y)
	assert.Equal(t, 0, p.RemainingJumps)
}

func TestJumpBudget(t *testing.T) {
	tests := []struct {
		name      string
		remaining int
		input     component.Input
		wantVY    float64
		wantLeft  int
	}{
		{"pressed with budget", 1, component.Input{JumpPressed: true}, 23.1, 0},
		{"pressed without budget", 0, component.Input{JumpPressed: true}, -3, 0},
		{"not pressed", 1, component.Input{}, -3, 1},
		{"released only", 1, component.Input{JumpReleased: true}, -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := groundedPlayer()
			p.RemainingJumps = tt.remaining
			vel := &component.Velocity{Y: -3}
			applyMovement(p, &tt.input, vel, &component.GravityScale{Scale: 1}, &component.PhysicsBody{}, testDT)
			assert.Equal(t, tt.wantVY, vel.Y)
			assert.Equal(t, tt.wantLeft, p.RemainingJumps)
		})
	}
}

func TestJumpBudgetNeverNegative(t *testing.T) {
	p := groundedPlayer()
	vel := &component.Velocity{}
	g := &component.GravityScale{Scale: 1}
	for i := 0; i < 20; i++ {
		in := component.Input{JumpPressed: i%2 == 0, JumpReleased: i%2 == 1}
		applyMovement(p, &in, vel, g, &component.PhysicsBody{}, testDT)
		require.GreaterOrEqual(t, p.RemainingJumps, 0)
	}
	assert.Equal(t, 0, p.RemainingJumps)
}

func TestJumpReleaseRestoresGravity(t *testing.T) {
	p := groundedPlayer()
	vel := &component.Velocity{}
	g := &component.GravityScale{Scale: 1}
	applyMovement(p, &component.Input{JumpPressed: true}, vel, g, &component.PhysicsBody{}, testDT)
	applyMovement(p, &component.Input{JumpReleased: true}, vel, g, &component.PhysicsBody{}, testDT)
	assert.False(t, p.Jumping)
	assert.Equal(t, 1.0, g.Scale)

	// Releasing again is harmless.
	applyMovement(p, &component.Input{JumpReleased: true}, vel, g, &component.PhysicsBody{}, testDT)
	assert.False(t, p.Jumping)
	assert.Equal(t, 1.0, g.Scale)
}

func TestGroundPound(t *testing.T) {
	p := groundedPlayer()
	p.InAir = true
	vel := &component.Velocity{Y: 10}
	applyMovement(p, &component.Input{GroundPoundPressed: true}, vel, &component.GravityScale{Scale: 1}, &component.PhysicsBody{}, testDT)
	assert.Equal(t, -46.2, vel.Y)
	assert.True(t, p.GroundPound)
	assert.Equal(t, 1, p.RemainingJumps)
}

func TestSpeedCap(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		input  component.Input
		ticks  int
		wantVX float64
	}{
		{"right saturates", 0, component.Input{Right: true}, 60, 12},
		{"left saturates", 0, component.Input{Left: true}, 60, -12},
		{"one tick", 0, component.Input{Right: true}, 1, 1},
		{"no overshoot near cap", 11.5, component.Input{Right: true}, 1, 12},
		{"above cap untouched", 20, component.Input{Right: true}, 3, 20},
		{"reverse decelerates", 20, component.Input{Left: true}, 1, 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := groundedPlayer()
			vel := &component.Velocity{X: tt.start}
			for i := 0; i < tt.ticks; i++ {
				applyMovement(p, &tt.input, vel, &component.GravityScale{Scale: 1}, &component.PhysicsBody{}, testDT)
			}
			assert.InDelta(t, tt.wantVX, vel.X, 1e-9)
		})
	}
}

func TestSwappedDirection(t *testing.T) {
	p := groundedPlayer()
	p.DirectionSwapped = true
	vel := &component.Velocity{}
	applyMovement(p, &component.Input{Right: true}, vel, &component.GravityScale{Scale: 1}, &component.PhysicsBody{}, testDT)
	assert.Less(t, vel.X, 0.0)
}

func TestDirectionSwapClearsOnRelease(t *testing.T) {
	p := groundedPlayer()
	p.DirectionSwapped = true
	vel := &component.Velocity{}
	g := &component.GravityScale{Scale: 1}

	for i := 0; i < 5; i++ {
		applyMovement(p, &component.Input{Right: true}, vel, g, &component.PhysicsBody{}, testDT)
		require.True(t, p.DirectionSwapped, "tick %d", i)
	}
	applyMovement(p, &component.Input{RightReleased: true}, vel, g, &component.PhysicsBody{}, testDT)
	assert.False(t, p.DirectionSwapped)
}

func TestDirectionSwapWaitsForHeldDirection(t *testing.T) {
	p := groundedPlayer()
	p.ToggleSwap(&component.Input{Right: true})
	require.True(t, p.DirectionSwapped)
	require.True(t, p.SwapRight)

	vel := &component.Velocity{}
	g := &component.GravityScale{Scale: 1}

	// Tapping left while right stays held leaves the swap in place.
	applyMovement(p, &component.Input{Right: true, LeftReleased: true}, vel, g, &component.PhysicsBody{}, testDT)
	assert.True(t, p.DirectionSwapped)

	applyMovement(p, &component.Input{RightReleased: true}, vel, g, &component.PhysicsBody{}, testDT)
	assert.False(t, p.DirectionSwapped)
	assert.False(t, p.SwapRight)
}

func TestToggleSwapTwiceRestoresMapping(t *testing.T) {
	p := groundedPlayer()
	p.ToggleSwap(&component.Input{Left: true})
	assert.True(t, p.SwapLeft)
	p.ToggleSwap(&component.Input{Left: true})
	assert.False(t, p.DirectionSwapped)
	assert.False(t, p.SwapLeft || p.SwapRight)
	assert.False(t, p.SwapReleased(&component.Input{LeftReleased: true}))
}

func TestFriction(t *testing.T) {
	p := groundedPlayer()
	body := &component.PhysicsBody{}
	applyMovement(p, &component.Input{}, &component.Velocity{}, nil, body, testDT)
	assert.Equal(t, 1.0, body.Friction)
	applyMovement(p, &component.Input{Left: true}, &component.Velocity{}, nil, body, testDT)
	assert.Equal(t, 0.0, body.Friction)
}

func TestPlayerControllerSystem(t *testing.T) {
	w := ecs.NewWorld()
	e, p := newTestPlayer(t, w, 0, 1)
	p.InAir = false

	in, _ := ecs.Get(w, e, component.InputComponent.Kind())
	in.JumpPressed = true
	NewPlayerControllerSystem().Update(w)

	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	g, _ := ecs.Get(w, e, component.GravityScaleComponent.Kind())
	assert.Equal(t, 23.1, vel.Y)
	assert.Equal(t, 0.5, g.Scale)
	assert.Equal(t, 0, p.RemainingJumps)
}

func TestPlayerControllerWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	assert.NotPanics(t, func() { NewPlayerControllerSystem().Update(w) })
}

func TestPlayerControllerMultiplePlayers(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w, 0, 1)
	newTestPlayer(t, w, 2, 1)

	assert.True(t, Debug, "tests run with invariant panics on")
	assert.Panics(t, func() { NewPlayerControllerSystem().Update(w) })

	withoutDebug(t)
	assert.NotPanics(t, func() { NewPlayerControllerSystem().Update(w) })
}
