// internal/component/movement.go
package component

import (
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/pkg/route"
)

// Position — компонент позиции в мировых координатах (y вверх)
type Position struct {
	X, Y float64
}

// Vec converts the position for route math.
func (p Position) Vec() route.Vec { return route.Vec{X: p.X, Y: p.Y} }

// PositionOf is the inverse of Vec.
func PositionOf(v route.Vec) Position { return Position{X: v.X, Y: v.Y} }

// Velocity — компонент скорости
type Velocity struct {
	Speed float64 // единиц в секунду
}

// Path — компонент пути. Segment указывает на путевую точку, к которой идёт враг.
type Path struct {
	Segment int
	Policy  defs.MovementKind
}
