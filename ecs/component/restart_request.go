package component

// RestartRequest is a fire-and-forget marker: the current attempt should be
// abandoned and the level reloaded from its start. Systems create a
// short-lived entity carrying it; the game loop consumes every such entity.
// Emitting it more than once per tick is harmless.
type RestartRequest struct {
	Reason string
}

var RestartRequestComponent = NewComponent[RestartRequest]()
