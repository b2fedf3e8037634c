// pkg/render/color.go
package render

import "image/color"

// Palette holds the colors used by Renderer.
type Palette struct {
	Background  color.RGBA
	Path        color.RGBA
	Slot        color.RGBA
	Projectile  color.RGBA
	Impact      color.RGBA
	HealthBar   color.RGBA
	Stroke      color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LerpColor linearly blends a towards b, t in [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
