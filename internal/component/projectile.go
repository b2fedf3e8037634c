// internal/component/projectile.go
package component

import (
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/internal/utils"
)

// Target — цель снаряда и её последняя известная позиция.
type Target struct {
	ID        types.EntityID
	LastKnown Position
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	Damage    uint32
	Target    *Target // nil: снаряд без цели, удаляется
	ArmTimer  utils.Timer
	Frame     int
	TowerType defs.TowerType
}
