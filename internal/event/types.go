// internal/event/types.go
package event

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/types"
)

const (
	EnemySpawned  EventType = "EnemySpawned"
	EnemyKilled   EventType = "EnemyKilled"   // Враг уничтожен снарядом
	EnemyBreached EventType = "EnemyBreached" // Враг дошёл до конца пути
	WaveCleared   EventType = "WaveCleared"   // Квота выпущена и все враги мертвы
	WaveStarted   EventType = "WaveStarted"
	PhaseChanged  EventType = "PhaseChanged"
	GameOver      EventType = "GameOver"
	TowerPlaced   EventType = "TowerPlaced" // Башня построена
	TowerUpgraded EventType = "TowerUpgraded"
)

type EnemySpawnedData struct {
	ID        types.EntityID
	Archetype string
	Wave      uint
	Life      uint32
}

type EnemyKilledData struct {
	ID     types.EntityID
	Wave   uint
	Reward uint32
}

type EnemyBreachedData struct {
	ID        types.EntityID
	LivesLeft uint32
}

type WaveData struct {
	Number uint
}

type PhaseChangedData struct {
	From, To component.Phase
}

type TowerData struct {
	ID    types.EntityID
	Type  defs.TowerType
	Level int
	Cost  uint32
}
