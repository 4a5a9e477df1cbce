package entity

import (
	"fmt"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// NewCamera creates a camera that follows the player.
func NewCamera(w *ecs.World, smoothness float64) (ecs.Entity, error) {
	if smoothness <= 0 || smoothness > 1 {
		smoothness = 1
	}
	camera := w.CreateEntity()
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       1,
		Smoothness: smoothness,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}
	return camera, nil
}
