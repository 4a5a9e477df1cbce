package system

import (
	"errors"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// Debug turns broken world invariants, such as two live players, into panics.
// Release builds skip the tick instead.
var Debug bool

// singlePlayer returns the one live player. Having none is normal while a
// level loads or restarts.
func singlePlayer(w *ecs.World) (ecs.Entity, *component.Player, bool) {
	e, p, err := ecs.Single(w, component.PlayerComponent.Kind())
	if err != nil {
		if Debug && errors.Is(err, ecs.ErrMultipleEntities) {
			panic("system: player: " + err.Error())
		}
		return 0, nil, false
	}
	return e, p, true
}

// playerSensor finds the sensor of the given kind riding on owner.
func playerSensor(w *ecs.World, owner ecs.Entity, kind component.SensorKind) (*component.Sensor, bool) {
	var found *component.Sensor
	ecs.ForEach(w, component.SensorComponent.Kind(), func(_ ecs.Entity, s *component.Sensor) {
		if found == nil && s.Kind == kind && ecs.Entity(s.Owner) == owner {
			found = s
		}
	})
	return found, found != nil
}

// RequestRestart queues a restart for the game loop.
func RequestRestart(w *ecs.World, reason string) {
	e := w.CreateEntity()
	_ = ecs.Add(w, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{Reason: reason})
}

// Restarts drains the pending restart requests and reports whether there were
// any.
func Restarts(w *ecs.World) ([]component.RestartRequest, bool) {
	var reqs []component.RestartRequest
	ecs.ForEach(w, component.RestartRequestComponent.Kind(), func(e ecs.Entity, r *component.RestartRequest) {
		reqs = append(reqs, *r)
		w.DestroyEntity(e)
	})
	return reqs, len(reqs) > 0
}
