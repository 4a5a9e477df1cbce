package system

import (
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/prefabs"
)

// Pipeline is the fixed-step system order for one level attempt. Contact
// resolution reads the previous physics step before any input is applied.
type Pipeline struct {
	Spawn  *PlayerSpawnSystem
	Fall   *FallMonitorSystem
	Camera *CameraSystem

	scheduler *ecs.Scheduler
}

// NewPipeline wires the systems in tick order. tuning may be nil.
func NewPipeline(player *prefabs.PlayerSpec, world *prefabs.WorldSpec, input *InputSystem, tuning *TuningSystem) *Pipeline {
	p := &Pipeline{
		Spawn:  NewPlayerSpawnSystem(player),
		Fall:   NewFallMonitorSystem(player.FatalHeight),
		Camera: NewCameraSystem(),
	}

	s := ecs.NewScheduler(p.Spawn)
	if tuning != nil {
		s.Add(tuning)
	}
	if input != nil {
		s.Add(input)
	}
	s.Add(NewPlayerContactSystem())
	s.Add(NewPlayerControllerSystem())
	s.Add(NewLaunchpadSystem())
	s.Add(NewPhysicsSystem(world.Gravity, world.Iterations))
	s.Add(NewPortalSystem())
	s.Add(p.Fall)
	s.Add(NewFinishSystem())
	s.Add(NewReplaySystem())
	s.Add(NewGhostSystem())
	s.Add(p.Camera)
	s.Add(NewFadeSystem())
	p.scheduler = s
	return p
}

func (p *Pipeline) Update(w *ecs.World) {
	if p == nil {
		return
	}
	p.scheduler.Update(w)
}

// Start spawns the player immediately and centers the camera on it, so the
// first drawn frame already shows the level start.
func (p *Pipeline) Start(w *ecs.World) {
	p.Spawn.Update(w)
	p.Camera.Snap(w)
}

// ApplyTuning points future spawns and the fall threshold at spec.
func (p *Pipeline) ApplyTuning(spec *prefabs.PlayerSpec) {
	if p == nil || spec == nil {
		return
	}
	p.Spawn.Spec = spec
	p.Fall.FatalHeight = spec.FatalHeight
}
