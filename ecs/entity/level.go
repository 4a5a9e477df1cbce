package entity

import (
	"fmt"
	"math"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/milk9111/speeed/levels"
	"golang.org/x/image/colornames"
)

const (
	portalWidth    = 3.0
	markerRadius   = 1.0
	markerSize     = 0.5
	levelLayer     = 0
	markerLayer    = 5
	launchpadLayer = 4
)

var (
	solidColor  = colornames.Slategray
	wallColor   = colornames.Mediumseagreen
	portalColor = colornames.Mediumpurple
	launchColor = colornames.Darkorange
	finishColor = colornames.Gold
)

// LoadLevelToWorld creates the level geometry and markers and queues a spawn
// request at the level start.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("level: nil level")
	}
	for i, s := range lvl.Solids {
		if err := addSolid(world, s); err != nil {
			return fmt.Errorf("level %s: solid %d: %w", lvl.Name, i, err)
		}
	}
	for i, p := range lvl.Portals {
		if err := addPortal(world, p); err != nil {
			return fmt.Errorf("level %s: portal %d: %w", lvl.Name, i, err)
		}
	}
	for i, l := range lvl.Launchpads {
		if err := addLaunchpad(world, l); err != nil {
			return fmt.Errorf("level %s: launchpad %d: %w", lvl.Name, i, err)
		}
	}
	if err := addFinish(world, lvl.Finish); err != nil {
		return fmt.Errorf("level %s: finish: %w", lvl.Name, err)
	}

	spawn := world.CreateEntity()
	if err := ecs.Add(world, spawn, component.SpawnRequestComponent.Kind(), &component.SpawnRequest{X: lvl.Start.X, Y: lvl.Start.Y}); err != nil {
		return fmt.Errorf("level %s: spawn request: %w", lvl.Name, err)
	}
	return nil
}

func addSolid(world *ecs.World, s levels.Solid) error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("non-positive size %vx%v", s.W, s.H)
	}
	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: s.X, Y: s.Y}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    s.W,
		Height:   s.H,
		Friction: 1,
		Static:   true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.SurfaceComponent.Kind(), &component.Surface{Ground: s.Ground, RestoresJump: s.RestoresJump}); err != nil {
		return err
	}
	c := solidColor
	if s.RestoresJump {
		c = wallColor
	}
	if err := ecs.Add(world, e, component.ShapeComponent.Kind(), &component.Shape{Width: s.W, Height: s.H, Color: c}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: levelLayer})
}

// addPortal builds the entry trigger: a segment across the direction the
// portal faces.
func addPortal(world *ecs.World, p levels.Portal) error {
	angleIn := p.AngleIn * math.Pi / 180
	angleOut := p.AngleOut * math.Pi / 180

	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y, Rotation: angleIn + math.Pi/2}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.PortalComponent.Kind(), &component.Portal{
		DeltaX:   p.Destination.X - p.X,
		DeltaY:   p.Destination.Y - p.Y,
		AngleIn:  angleIn,
		AngleOut: angleOut,
		Width:    portalWidth,
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:   portalWidth,
		Static:  true,
		Trigger: true,
		Segment: true,
		Angle:   angleIn + math.Pi/2,
	}); err != nil {
		return err
	}
	w, h := 0.2, portalWidth
	if math.Abs(math.Cos(angleIn)) < 0.5 {
		w, h = h, w
	}
	if err := ecs.Add(world, e, component.ShapeComponent.Kind(), &component.Shape{Width: w, Height: h, Color: portalColor}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: markerLayer})
}

func addLaunchpad(world *ecs.World, l levels.Launchpad) error {
	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: l.X, Y: l.Y}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.LaunchpadComponent.Kind(), &component.Launchpad{VelocityX: l.VX, VelocityY: l.VY, Radius: markerRadius}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.ShapeComponent.Kind(), &component.Shape{Width: 1, Height: markerSize / 2, Color: launchColor}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: launchpadLayer})
}

func addFinish(world *ecs.World, p levels.Point) error {
	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.FinishComponent.Kind(), &component.Finish{Radius: markerRadius}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.ShapeComponent.Kind(), &component.Shape{Width: markerSize, Height: markerSize, Color: finishColor}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: markerLayer})
}
