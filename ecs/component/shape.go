package component

import "image/color"

// Shape is a solid-colored rectangle drawn centered on the transform, in
// world units.
type Shape struct {
	Width  float64
	Height float64
	Color  color.RGBA
}

var ShapeComponent = NewComponent[Shape]()
