package component

import "github.com/tanema/gween"

// Fade drives a full-screen overlay. Alpha is refreshed from Tween each tick;
// the entity is destroyed once the tween finishes.
type Fade struct {
	Tween *gween.Tween
	Alpha float64
}

var FadeComponent = NewComponent[Fade]()
