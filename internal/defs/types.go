// internal/defs/types.go
package defs

import "image/color"

// MovementKind selects the movement policy an enemy gets at spawn time.
type MovementKind string

const (
	MovementWaypoint   MovementKind = "waypoint"   // явный индекс сегмента, переход по прибытию
	MovementPositional MovementKind = "positional" // сегмент пересчитывается по координатам каждый тик
	MovementSwarm      MovementKind = "swarm"      // следование по маршруту с расталкиванием соседей
)

// Valid reports whether k names a known policy.
func (k MovementKind) Valid() bool {
	switch k {
	case MovementWaypoint, MovementPositional, MovementSwarm:
		return true
	}
	return false
}

// Visuals is the stable key material the renderer needs to draw an entity.
type Visuals struct {
	Color        color.RGBA `yaml:"color"`
	RadiusFactor float64    `yaml:"radius_factor"`
}
