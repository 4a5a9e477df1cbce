package component

// Player holds the tuning and runtime state of the controllable character.
// Only the spawn, contact, controller, portal and tuning systems write it.
type Player struct {
	// Tuning.
	JumpVelocity       float64
	HorizontalSpeed    float64
	MaxSpeed           float64
	JumpAllowance      int
	AscentGravityScale float64
	StopFriction       float64

	RemainingJumps int

	GroundPound      bool
	Jumping          bool
	InAir            bool
	OnWall           bool
	DirectionSwapped bool
	// SwapLeft and SwapRight are the directions held when the swap began.
	// Only their release clears the swap; with neither held, any release does.
	SwapLeft  bool
	SwapRight bool
}

var PlayerComponent = NewComponent[Player]()

// HasJumps reports whether a jump is still available. Rendering uses it as a
// cosmetic hint.
func (p *Player) HasJumps() bool {
	return p != nil && p.RemainingJumps > 0
}

// RefillJumps restores the per-life jump allowance.
func (p *Player) RefillJumps() {
	if p == nil {
		return
	}
	p.RemainingJumps = p.JumpAllowance
}

// SetJumping keeps the jumping flag and the gravity scale in lockstep: the
// ascent scale while jumping, full gravity otherwise.
func (p *Player) SetJumping(jumping bool, gravity *GravityScale) {
	if p == nil {
		return
	}
	p.Jumping = jumping
	if gravity == nil {
		return
	}
	if jumping {
		gravity.Scale = p.AscentGravityScale
	} else {
		gravity.Scale = 1
	}
}

// ToggleSwap flips the left/right inversion, remembering which directions in
// holds at that moment.
func (p *Player) ToggleSwap(in *Input) {
	if p == nil {
		return
	}
	if p.DirectionSwapped {
		p.ClearSwap()
		return
	}
	p.DirectionSwapped = true
	if in != nil {
		p.SwapLeft, p.SwapRight = in.Left, in.Right
	}
}

// ClearSwap restores the normal left/right mapping.
func (p *Player) ClearSwap() {
	if p == nil {
		return
	}
	p.DirectionSwapped = false
	p.SwapLeft, p.SwapRight = false, false
}

// SwapReleased reports whether in releases a direction that holds the swap.
func (p *Player) SwapReleased(in *Input) bool {
	if p == nil || in == nil || !p.DirectionSwapped {
		return false
	}
	if !p.SwapLeft && !p.SwapRight {
		return in.LeftReleased || in.RightReleased
	}
	return (p.SwapLeft && in.LeftReleased) || (p.SwapRight && in.RightReleased)
}
