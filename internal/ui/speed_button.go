// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-breakpoint-defense/pkg/render"
)

// SpeedButton — двойной треугольник, цвет зависит от множителя скорости.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   map[int]color.Color // множитель -> цвет
}

func NewSpeedButton(x, y, size float32, stateColors map[int]color.Color) *SpeedButton {
	return &SpeedButton{X: x, Y: y, Size: size, StateColors: stateColors}
}

func (b *SpeedButton) Draw(screen *ebiten.Image, multiplier int) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	clr, ok := b.StateColors[multiplier]
	if !ok {
		clr = color.White
	}

	height := size * 1.2
	width := size
	offset := width * 0.8

	render.FillPolygon(screen, clr,
		[2]float32{b.X - width, b.Y - height/2},
		[2]float32{b.X, b.Y},
		[2]float32{b.X - width, b.Y + height/2},
	)
	render.FillPolygon(screen, clr,
		[2]float32{b.X - width + offset, b.Y - height/2},
		[2]float32{b.X + offset, b.Y},
		[2]float32{b.X - width + offset, b.Y + height/2},
	)
}

func (b *SpeedButton) IsClicked(x, y int) bool {
	// круг вместо сложной формы
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

func (b *SpeedButton) Clicked() {
	b.LastClickTime = time.Now()
}
