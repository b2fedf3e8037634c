// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds the static data for one enemy archetype. The archetype
// table is indexed by wave number.
type EnemyDefinition struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Movement MovementKind `yaml:"movement"`
	Visuals  Visuals      `yaml:"visuals"`
}

// DefaultEnemies — архетипы по номеру волны: орки, солдаты, листовые и огненные жуки.
func DefaultEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{
			ID:       "ENEMY_ORC",
			Name:     "Orc",
			Movement: MovementWaypoint,
			Visuals:  Visuals{Color: color.RGBA{86, 140, 64, 255}, RadiusFactor: 1.0},
		},
		{
			ID:       "ENEMY_SOLDIER",
			Name:     "Soldier",
			Movement: MovementWaypoint,
			Visuals:  Visuals{Color: color.RGBA{170, 170, 190, 255}, RadiusFactor: 0.9},
		},
		{
			ID:       "ENEMY_LEAFBUG",
			Name:     "Leafbug",
			Movement: MovementSwarm,
			Visuals:  Visuals{Color: color.RGBA{120, 200, 80, 255}, RadiusFactor: 0.8},
		},
		{
			ID:       "ENEMY_FIREBUG",
			Name:     "Firebug",
			Movement: MovementWaypoint,
			Visuals:  Visuals{Color: color.RGBA{230, 90, 40, 255}, RadiusFactor: 1.2},
		},
	}
}
