package component

// ReplayPoint is one recorded player position.
type ReplayPoint struct {
	X float64
	Y float64
}

// ReplayRecording accumulates the player's positions, one per tick.
type ReplayRecording struct {
	Points []ReplayPoint
}

var ReplayRecordingComponent = NewComponent[ReplayRecording]()

// Ghost plays back a previous run, advancing Frame once per tick.
type Ghost struct {
	Points []ReplayPoint
	Frame  int
}

var GhostComponent = NewComponent[Ghost]()
