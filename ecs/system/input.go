package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
)

// stickThreshold is how far the left stick must lean to count as a held
// direction.
const stickThreshold = 0.8

// Actions is the held state of every gameplay action for one tick.
type Actions struct {
	Left        bool
	Right       bool
	Jump        bool
	GroundPound bool
	Restart     bool
}

// InputSystem samples the devices once per tick and writes press/release
// edges into every Input component.
type InputSystem struct {
	read func() Actions
	prev Actions
}

func NewInputSystem() *InputSystem {
	return &InputSystem{read: readDevices}
}

// NewInputSystemWithSource reads actions from fn instead of the devices.
func NewInputSystemWithSource(fn func() Actions) *InputSystem {
	return &InputSystem{read: fn}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.read == nil {
		return
	}
	cur := i.read()
	next := nextInput(i.prev, cur)
	i.prev = cur

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = next
	})
	if next.RestartPressed {
		RequestRestart(w, "manual")
	}
}

func nextInput(prev, cur Actions) component.Input {
	return component.Input{
		Left:               cur.Left,
		Right:              cur.Right,
		LeftReleased:       prev.Left && !cur.Left,
		RightReleased:      prev.Right && !cur.Right,
		JumpPressed:        cur.Jump && !prev.Jump,
		JumpReleased:       prev.Jump && !cur.Jump,
		GroundPoundPressed: cur.GroundPound && !prev.GroundPound,
		RestartPressed:     cur.Restart && !prev.Restart,
	}
}

func readDevices() Actions {
	a := Actions{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Jump:        ebiten.IsKeyPressed(ebiten.KeySpace),
		GroundPound: ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Restart:     ebiten.IsKeyPressed(ebiten.KeyR),
	}

	if gamepads := ebiten.AppendGamepadIDs(nil); len(gamepads) > 0 {
		id := gamepads[0]
		leftX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		a.Left = a.Left || leftX < -stickThreshold
		a.Right = a.Right || leftX > stickThreshold

		a.Jump = a.Jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		a.GroundPound = a.GroundPound || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
		a.Restart = a.Restart || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return a
}
