package component

// Camera follows a target entity. Smoothness in (0,1] is the fraction of the
// remaining distance covered each tick; 1 snaps.
type Camera struct {
	Target     uint64 // ecs.Entity; zero means "the player"
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
