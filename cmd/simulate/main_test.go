package main

import (
	"testing"

	"github.com/milk9111/speeed/ecs/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScript(t *testing.T) {
	steps, err := parseScript("30:right+jump, 0:right,60:")
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, 0, steps[0].Tick)
	assert.Equal(t, system.Actions{Right: true}, steps[0].Actions)
	assert.Equal(t, system.Actions{Right: true, Jump: true}, steps[1].Actions)
	assert.Equal(t, system.Actions{}, steps[2].Actions)
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"missing colon", "10right"},
		{"bad tick", "x:right"},
		{"negative tick", "-1:right"},
		{"unknown action", "0:dash"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScript(tt.script)
			assert.Error(t, err)
		})
	}
}

func TestActionsAt(t *testing.T) {
	steps, err := parseScript("0:right,10:right+jump,12:left")
	require.NoError(t, err)

	assert.Equal(t, system.Actions{Right: true}, actionsAt(steps, 5))
	assert.Equal(t, system.Actions{Right: true, Jump: true}, actionsAt(steps, 10))
	assert.Equal(t, system.Actions{Left: true}, actionsAt(steps, 100))
	assert.Equal(t, system.Actions{}, actionsAt(nil, 3))
}
