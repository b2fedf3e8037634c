// internal/ui/gold_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// GoldIndicator — золото и отсчёт до следующей волны.
type GoldIndicator struct {
	X, Y      float32
	CoinColor color.RGBA
	TextColor color.RGBA
}

func NewGoldIndicator(x, y float32, textColor color.RGBA) *GoldIndicator {
	return &GoldIndicator{X: x, Y: y, CoinColor: color.RGBA{230, 190, 60, 255}, TextColor: textColor}
}

// Draw выводит золото; nextWaveIn <= 0: отсчёт не показывается.
func (g *GoldIndicator) Draw(screen *ebiten.Image, face font.Face, gold uint32, nextWaveIn float64) {
	vector.DrawFilledCircle(screen, g.X+8, g.Y, 8, g.CoinColor, true)
	vector.StrokeCircle(screen, g.X+8, g.Y, 8, 1, color.Black, true)
	text.Draw(screen, fmt.Sprint(gold), face, int(g.X)+22, int(g.Y)+5, g.TextColor)

	if nextWaveIn > 0 {
		text.Draw(screen, fmt.Sprintf("next wave in %.1fs", nextWaveIn), face, int(g.X), int(g.Y)+28, g.TextColor)
	}
}
