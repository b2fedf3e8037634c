// pkg/render/viewport.go
package render

import "go-breakpoint-defense/pkg/route"

// Viewport maps world coordinates (origin at the screen centre, Y up) to
// screen pixels (origin top-left, Y down).
type Viewport struct {
	Width, Height int
}

// ToScreen converts a world point to screen pixels.
func (v Viewport) ToScreen(p route.Vec) (float32, float32) {
	return float32(p.X + float64(v.Width)/2), float32(float64(v.Height)/2 - p.Y)
}

// ToWorld converts a cursor position to world coordinates.
func (v Viewport) ToWorld(x, y int) route.Vec {
	return route.Vec{
		X: float64(x) - float64(v.Width)/2,
		Y: float64(v.Height)/2 - float64(y),
	}
}
