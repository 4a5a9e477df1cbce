package component

// Velocity is the linear velocity of a body in world units per second. The
// physics system pushes it into the body before stepping and reads it back
// afterwards, so gameplay systems never touch the physics engine directly.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
