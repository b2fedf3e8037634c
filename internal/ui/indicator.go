// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок цвета текущей фазы, вспыхивает при её смене.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	StrokeColor   color.Color
	LastPulseTime time.Time
}

func NewStateIndicator(x, y, radius float32, stroke color.Color) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, StrokeColor: stroke}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	elapsed := time.Since(i.LastPulseTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	r := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 2, i.StrokeColor, true)
}

// Pulse запускает вспышку.
func (i *StateIndicator) Pulse() {
	i.LastPulseTime = time.Now()
}
