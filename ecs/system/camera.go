package system

import (
	"github.com/milk9111/speeed/common"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// CameraSystem eases every camera toward its target, the player by default.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, camT *component.Transform) {
		target := ecs.Entity(cam.Target)
		if !target.Valid() {
			e, _, ok := singlePlayer(w)
			if !ok {
				return
			}
			target = e
		}
		t, ok := ecs.Get(w, target, component.TransformComponent.Kind())
		if !ok {
			return
		}
		smooth := cam.Smoothness
		if smooth <= 0 || smooth > 1 {
			smooth = 1
		}
		camT.X = common.Lerp(camT.X, t.X, smooth)
		camT.Y = common.Lerp(camT.Y, t.Y, smooth)
	})
}

// Snap moves every camera straight onto the player, used after a (re)load.
func (cs *CameraSystem) Snap(w *ecs.World) {
	e, _, ok := singlePlayer(w)
	if !ok {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Camera, camT *component.Transform) {
		camT.X, camT.Y = t.X, t.Y
	})
}
