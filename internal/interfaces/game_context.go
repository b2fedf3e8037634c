// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что StateSystem требует от владельца симуляции при смене фазы.
type GameContext interface {
	ClearEnemies()
	ClearProjectiles()
}
