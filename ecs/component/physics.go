package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width/Height describe a box; a positive Radius makes the collider a circle.
type PhysicsBody struct {
	// Body and Shape are owned by the physics system and set once the
	// collider exists. Static colliders share the space's static body.
	Body       *cp.Body
	Shape      *cp.Shape
	Width      float64
	Height     float64
	Radius     float64
	Mass       float64
	Friction   float64
	Elasticity float64
	Static     bool
	// Trigger bodies are sensors: they report contacts but never collide.
	Trigger bool
	// Segment colliders are a line of length Width through the transform,
	// rotated by Angle radians. Only static bodies use them.
	Segment bool
	Angle   float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
