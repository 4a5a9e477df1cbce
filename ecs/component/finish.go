package component

type Finish struct {
	Radius float64
}

var FinishComponent = NewComponent[Finish]()

// RunTimer counts fixed ticks since the player spawned. Done freezes it.
type RunTimer struct {
	Ticks int
	Done  bool
}

var RunTimerComponent = NewComponent[RunTimer]()

// LevelCompleteRequest is emitted once when the player reaches the finish.
type LevelCompleteRequest struct {
	Ticks int
}

var LevelCompleteRequestComponent = NewComponent[LevelCompleteRequest]()
