// pkg/route/vec.go
package route

import "math"

// Vec — точка или направление на плоскости в мировых координатах (ось Y смотрит вверх).
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dot(o Vec) float64 { return v.X*o.X + v.Y*o.Y }
func (v Vec) LenSq() float64 { return v.X*v.X + v.Y*v.Y }
func (v Vec) Len() float64 { return math.Sqrt(v.LenSq()) }
func (v Vec) DistSq(o Vec) float64 { return v.Sub(o).LenSq() }
func (v Vec) Dist(o Vec) float64 { return v.Sub(o).Len() }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Normalize returns the unit vector in the direction of v, or the zero vector
// when v has no length.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Unit directions used by the path legs.
var (
	West  = Vec{X: -1}
	East  = Vec{X: 1}
	North = Vec{Y: 1}
	South = Vec{Y: -1}
)
