// internal/component/combat.go
package component

import "go-breakpoint-defense/internal/utils"

// Combat — компонент для башен, управляющий атакой
type Combat struct {
	Damage   uint32
	Range    float64
	Cooldown utils.Timer // повторяющийся таймер между выстрелами
}
