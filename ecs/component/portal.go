package component

// Portal teleports the player by Delta, rotating its offset and velocity by
// AngleIn-AngleOut (radians).
type Portal struct {
	DeltaX   float64
	DeltaY   float64
	AngleIn  float64
	AngleOut float64
	// Width of the entry segment.
	Width float64
}

var PortalComponent = NewComponent[Portal]()
