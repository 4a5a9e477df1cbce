package component

// Surface tags solid geometry with the gameplay properties authored in the
// level. Bodies without a Surface never qualify as ground or as walls.
type Surface struct {
	// Ground surfaces count as standing contact for the ground sensor.
	Ground bool
	// RestoresJump surfaces refill the jump count on wall contact.
	RestoresJump bool
}

var SurfaceComponent = NewComponent[Surface]()
