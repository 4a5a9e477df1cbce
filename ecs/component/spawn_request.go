package component

// SpawnRequest asks the spawn system to create the player at a world
// position. The level builder emits one for the level's start marker.
type SpawnRequest struct {
	X float64
	Y float64
}

var SpawnRequestComponent = NewComponent[SpawnRequest]()
