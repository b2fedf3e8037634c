// internal/component/visual.go
package component

import "go-breakpoint-defense/internal/utils"

// AnimState — состояние анимации врага, выбирается по направлению движения.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalkLeft
	AnimWalkRight
	AnimWalkUp
	AnimWalkDown
)

func (s AnimState) String() string {
	switch s {
	case AnimWalkLeft:
		return "WalkLeft"
	case AnimWalkRight:
		return "WalkRight"
	case AnimWalkUp:
		return "WalkUp"
	case AnimWalkDown:
		return "WalkDown"
	}
	return "Idle"
}

// Animation: State пишет симуляция, Frame и Timer ведёт проигрывание.
type Animation struct {
	State   AnimState
	Frame   int
	Playing AnimState // состояние, для которого идёт текущий Frame
	Timer   utils.Timer
}
