package component

type SensorKind int

const (
	SensorGround SensorKind = iota + 1
	SensorWallJump
)

func (k SensorKind) String() string {
	switch k {
	case SensorGround:
		return "ground"
	case SensorWallJump:
		return "wall_jump"
	default:
		return "unknown"
	}
}

// Sensor is an auxiliary collider attached to its owner's body. The physics
// system refreshes Overlaps and Began after every step.
type Sensor struct {
	Kind  SensorKind
	Owner uint64 // ecs.Entity of the body the sensor rides on

	// Box in owner-local coordinates, y-up.
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64

	// Overlaps holds every body currently touching the sensor.
	Overlaps map[uint64]struct{}
	// Began lists bodies whose contact started during the last step.
	Began []uint64
}

var SensorComponent = NewComponent[Sensor]()
