package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

var ghostColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60}

// NewGhost creates an entity that replays points, starting at the first one.
// An empty recording creates nothing.
func NewGhost(w *ecs.World, points []component.ReplayPoint, size float64) (ecs.Entity, error) {
	if len(points) == 0 {
		return 0, nil
	}
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.GhostTagComponent.Kind(), &component.GhostTag{}); err != nil {
		return 0, fmt.Errorf("ghost: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.GhostComponent.Kind(), &component.Ghost{Points: points}); err != nil {
		return 0, fmt.Errorf("ghost: add ghost: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: points[0].X, Y: points[0].Y}); err != nil {
		return 0, fmt.Errorf("ghost: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{Width: size, Height: size, Color: ghostColor}); err != nil {
		return 0, fmt.Errorf("ghost: add shape: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerLayer - 1}); err != nil {
		return 0, fmt.Errorf("ghost: add render layer: %w", err)
	}
	return e, nil
}

// NewRunState creates the per-attempt bookkeeping entity: the run timer and
// the replay recording.
func NewRunState(w *ecs.World) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.RunTimerComponent.Kind(), &component.RunTimer{}); err != nil {
		return 0, fmt.Errorf("run state: add timer: %w", err)
	}
	if err := ecs.Add(w, e, component.ReplayRecordingComponent.Kind(), &component.ReplayRecording{}); err != nil {
		return 0, fmt.Errorf("run state: add recording: %w", err)
	}
	return e, nil
}
