// internal/component/game_state.go
package component

// Phase — фаза игры
type Phase int

const (
	BuildState Phase = iota
	WaveState
	GameOverState
)

func (p Phase) String() string {
	switch p {
	case BuildState:
		return "Building"
	case WaveState:
		return "Attacking"
	case GameOverState:
		return "GameOver"
	}
	return "Unknown"
}

// GameState — компонент для хранения состояния игры
type GameState struct {
	Phase Phase
}
