// component/render.go
package component

import "image/color"

// Renderable — ключ ассета и запасной вид для отрисовки
type Renderable struct {
	Key    string // ID архетипа врага или тип башни
	Color  color.RGBA
	Radius float32
}
