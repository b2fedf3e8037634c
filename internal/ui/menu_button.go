// internal/ui/menu_button.go
package ui

import (
	"image"
	"image/color"
)

// NewMenuButton создает крупную кнопку меню с центром по X.
func NewMenuButton(centerX, y, width, height int, label string) *Button {
	b := NewButton(image.Rect(centerX-width/2, y, centerX+width/2, y+height), label)
	b.BgColor = color.RGBA{78, 43, 47, 255}
	b.HoverColor = color.RGBA{120, 66, 72, 255}
	b.BorderColor = color.RGBA{224, 162, 125, 255}
	return b
}
