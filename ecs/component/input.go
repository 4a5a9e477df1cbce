package component

// Input stores the per-tick action state for an entity. Held flags mirror the
// device state; Pressed/Released flags are edges valid for one tick only.
type Input struct {
	Left  bool
	Right bool

	LeftReleased  bool
	RightReleased bool

	JumpPressed        bool
	JumpReleased       bool
	GroundPoundPressed bool
	RestartPressed     bool
}

var InputComponent = NewComponent[Input]()

// AnyDirection reports whether a horizontal direction is held.
func (in *Input) AnyDirection() bool {
	return in != nil && (in.Left || in.Right)
}
