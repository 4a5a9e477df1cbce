package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// RenderSystem draws every Shape as a filled rectangle. World space is y-up;
// the camera transform sits at the screen center.
type RenderSystem struct {
	PixelsPerUnit float64
	// PlayerEmptyColor replaces the player's color while it has no jump left.
	PlayerEmptyColor color.RGBA
}

func NewRenderSystem(pixelsPerUnit float64, playerEmpty color.RGBA) *RenderSystem {
	return &RenderSystem{PixelsPerUnit: pixelsPerUnit, PlayerEmptyColor: playerEmpty}
}

type drawItem struct {
	e     ecs.Entity
	layer int
	t     *component.Transform
	s     *component.Shape
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	camX, camY, zoom := 0.0, 0.0, 1.0
	ecs.ForEach2(w, component.CameraComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, cam *component.Camera, t *component.Transform) {
		camX, camY = t.X, t.Y
		if cam.Zoom > 0 {
			zoom = cam.Zoom
		}
	})
	scale := r.PixelsPerUnit * zoom
	bounds := screen.Bounds()
	halfW, halfH := float64(bounds.Dx())/2, float64(bounds.Dy())/2

	var items []drawItem
	ecs.ForEach2(w, component.ShapeComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, s *component.Shape, t *component.Transform) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawItem{e: e, layer: layer, t: t, s: s})
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return uint64(items[i].e) < uint64(items[j].e)
	})

	for _, it := range items {
		c := it.s.Color
		if p, ok := ecs.Get(w, it.e, component.PlayerComponent.Kind()); ok && !p.HasJumps() {
			c = r.PlayerEmptyColor
		}
		x := (it.t.X-it.s.Width/2-camX)*scale + halfW
		y := halfH - (it.t.Y+it.s.Height/2-camY)*scale
		vector.FillRect(screen, float32(x), float32(y), float32(it.s.Width*scale), float32(it.s.Height*scale), c, false)
	}

	ecs.ForEach(w, component.FadeComponent.Kind(), func(_ ecs.Entity, f *component.Fade) {
		if f.Alpha <= 0 {
			return
		}
		a := uint8(min(f.Alpha, 1) * 255)
		vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), color.RGBA{A: a}, false)
	})
}
