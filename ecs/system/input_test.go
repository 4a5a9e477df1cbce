package system

import (
	"testing"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestNextInputEdges(t *testing.T) {
	tests := []struct {
		name string
		prev Actions
		cur  Actions
		want component.Input
	}{
		{"idle", Actions{}, Actions{}, component.Input{}},
		{"jump pressed", Actions{}, Actions{Jump: true}, component.Input{JumpPressed: true}},
		{"jump held", Actions{Jump: true}, Actions{Jump: true}, component.Input{}},
		{"jump released", Actions{Jump: true}, Actions{}, component.Input{JumpReleased: true}},
		{"right held", Actions{Right: true}, Actions{Right: true}, component.Input{Right: true}},
		{"right released", Actions{Right: true}, Actions{}, component.Input{RightReleased: true}},
		{"left to right", Actions{Left: true}, Actions{Right: true}, component.Input{Right: true, LeftReleased: true}},
		{"ground pound", Actions{}, Actions{GroundPound: true}, component.Input{GroundPoundPressed: true}},
		{"restart", Actions{}, Actions{Restart: true}, component.Input{RestartPressed: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextInput(tt.prev, tt.cur))
		})
	}
}

func TestInputSystem(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := newTestPlayer(t, w, 0, 1)

	frames := []Actions{{Jump: true}, {Jump: true}, {}, {Restart: true}}
	i := 0
	sys := NewInputSystemWithSource(func() Actions {
		a := frames[i]
		i++
		return a
	})
	in, _ := ecs.Get(w, e, component.InputComponent.Kind())

	sys.Update(w)
	assert.True(t, in.JumpPressed)
	sys.Update(w)
	assert.False(t, in.JumpPressed)
	sys.Update(w)
	assert.True(t, in.JumpReleased)
	assert.Equal(t, 0, restartCount(w))
	sys.Update(w)
	assert.True(t, in.RestartPressed)
	assert.Equal(t, 1, restartCount(w))
}
