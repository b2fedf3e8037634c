// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        image.Rectangle
	Text        string
	TextColor   color.RGBA
	BgColor     color.RGBA
	HoverColor  color.RGBA
	BorderColor color.RGBA
	Disabled    bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		TextColor:   color.RGBA{240, 240, 240, 255},
		BgColor:     color.RGBA{60, 60, 70, 255},
		HoverColor:  color.RGBA{90, 90, 105, 255},
		BorderColor: color.RGBA{160, 160, 160, 255},
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return !b.Disabled && image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку; hovered: курсор над ней.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if hovered && !b.Disabled {
		bg = b.HoverColor
	}
	if b.Disabled {
		bg.A = 120
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, b.BorderColor, true)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
