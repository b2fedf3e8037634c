// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	HealthCols          = 6
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

var (
	healthHighColor  = color.RGBA{70, 130, 220, 255}
	healthLowColor   = color.RGBA{220, 60, 60, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
)

// PlayerHealthIndicator отображает оставшиеся жизни сеткой кружков.
type PlayerHealthIndicator struct {
	X, Y float32
}

func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// Draw рисует сетку: синий "избыток" сверх половины, дальше красный, пустые: чёрные.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, face font.Face, lives, maxLives int) {
	half := maxLives / 2
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)

	for j := 0; j < maxLives; j++ {
		x := i.X + float32(j%HealthCols)*step + HealthCircleRadius
		y := i.Y + float32(j/HealthCols)*step + HealthCircleRadius

		clr := healthEmptyColor
		if j < lives {
			clr = healthLowColor
			if lives > half && j < lives-half {
				clr = healthHighColor
			}
		}
		vector.DrawFilledCircle(screen, x, y, HealthCircleRadius, clr, true)
		vector.StrokeCircle(screen, x, y, HealthCircleRadius, 1, color.White, true)
	}

	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	width := text.BoundString(face, label).Dx()
	gridWidth := int(HealthCols * step)
	text.Draw(screen, label, face, int(i.X)+(gridWidth-width)/2, int(i.Y)-8, color.White)
}
