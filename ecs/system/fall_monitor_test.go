package system

import (
	"testing"

	"github.com/milk9111/speeed/ecs"
	"github.com/milk9111/speeed/ecs/component"
	"github.com/stretchr/testify/assert"
)

func TestFallMonitor(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"above", -4.99, 0},
		{"at threshold", -5, 1},
		{"below", -30, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			newTestPlayer(t, w, 0, tt.y)
			NewFallMonitorSystem(DefaultFatalHeight).Update(w)
			assert.Equal(t, tt.want, restartCount(w))
		})
	}
}

func TestFallMonitorRepeatsEveryTick(t *testing.T) {
	w := ecs.NewWorld()
	newTestPlayer(t, w, 0, -6)
	sys := NewFallMonitorSystem(DefaultFatalHeight)
	sys.Update(w)
	sys.Update(w)
	assert.Equal(t, 2, restartCount(w))

	reqs, ok := Restarts(w)
	assert.True(t, ok)
	assert.Len(t, reqs, 2)
	assert.Equal(t, "fell", reqs[0].Reason)
	assert.Equal(t, 0, restartCount(w))
}

func TestFallMonitorWithoutPlayer(t *testing.T) {
	w := ecs.NewWorld()
	NewFallMonitorSystem(DefaultFatalHeight).Update(w)
	assert.Equal(t, 0, ecs.Count(w, component.RestartRequestComponent.Kind()))
}
