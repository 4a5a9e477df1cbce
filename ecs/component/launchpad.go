package component

// Launchpad sets the player's velocity when it comes within Radius.
type Launchpad struct {
	VelocityX float64
	VelocityY float64
	Radius    float64
}

var LaunchpadComponent = NewComponent[Launchpad]()
