package system

import (
	"math"

	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// swapThreshold is the cosine below which a portal counts as reversing the
// player's horizontal direction.
const swapThreshold = -0.3

// PortalSystem teleports the player when its body starts touching a portal.
type PortalSystem struct{}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{}
}

func (s *PortalSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	e, player, ok := singlePlayer(w)
	if !ok {
		return
	}
	contacts, ok := ecs.Get(w, e, component.BodyContactsComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	input, _ := ecs.Get(w, e, component.InputComponent.Kind())

	for _, other := range contacts.Began {
		portal, ok := ecs.Get(w, ecs.Entity(other), component.PortalComponent.Kind())
		if !ok {
			continue
		}
		pt, ok := ecs.Get(w, ecs.Entity(other), component.TransformComponent.Kind())
		if !ok {
			continue
		}
		teleport(player, input, t, vel, pt, portal)
		return
	}
}

// teleport moves the player through portal. in may be nil.
func teleport(player *component.Player, in *component.Input, t *component.Transform, vel *component.Velocity, pt *component.Transform, portal *component.Portal) {
	angle := portal.AngleIn - portal.AngleOut
	offX, offY := common.Rotate(t.X-pt.X, t.Y-pt.Y, angle)
	t.X = pt.X + portal.DeltaX + offX
	t.Y = pt.Y + portal.DeltaY + offY
	vel.X, vel.Y = common.Rotate(vel.X, vel.Y, angle)
	if math.Cos(angle) < swapThreshold {
		player.ToggleSwap(in)
	}
}
