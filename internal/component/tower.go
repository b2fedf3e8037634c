// component/tower.go
package component

import "go-breakpoint-defense/internal/defs"

type Tower struct {
	Type  defs.TowerType
	Level int // 1..MaxLevel
	Slot  int // индекс клетки строительства
}
