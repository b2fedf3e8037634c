// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y         float32
	Color        color.RGBA
	BossColor    color.RGBA
	OutlineColor color.RGBA
}

func NewWaveIndicator(x, y float32, clr color.RGBA) *WaveIndicator {
	return &WaveIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		BossColor:    color.RGBA{220, 40, 40, 255},
		OutlineColor: color.RGBA{255, 255, 255, 255},
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw рисует номер волны (с единицы) с обводкой. Каждая десятая: красная.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = i.BossColor
	}

	width := text.BoundString(face, label).Dx()
	x := int(i.X) - width/2
	y := int(i.Y)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, y, textColor)
}
