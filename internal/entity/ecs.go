// internal/entity/ecs.go
package entity

import (
	"maps"
	"slices"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/types"
)

type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Enemies     map[types.EntityID]*component.Enemy
	Animations  map[types.EntityID]*component.Animation
	Renderables map[types.EntityID]*component.Renderable
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Projectiles map[types.EntityID]*component.Projectile
	Wave        *component.Wave
	Economy     *component.Economy
	GameState   *component.GameState
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Animations:  make(map[types.EntityID]*component.Animation),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Wave:        &component.Wave{},
		Economy:     &component.Economy{},
		GameState:   &component.GameState{Phase: component.BuildState},
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Animations, id)
	delete(ecs.Renderables, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Projectiles, id)
}

// ClearEnemies removes every enemy entity.
func (ecs *ECS) ClearEnemies() {
	for _, id := range SortedIDs(ecs.Enemies) {
		ecs.RemoveEntity(id)
	}
}

// ClearProjectiles removes every projectile entity.
func (ecs *ECS) ClearProjectiles() {
	for _, id := range SortedIDs(ecs.Projectiles) {
		ecs.RemoveEntity(id)
	}
}

// ClearTowers removes every tower entity.
func (ecs *ECS) ClearTowers() {
	for _, id := range SortedIDs(ecs.Towers) {
		ecs.RemoveEntity(id)
	}
}

// SortedIDs возвращает ключи в порядке создания сущностей. Все системы обходят
// сущности через неё, чтобы тик не зависел от порядка обхода map.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	return slices.Sorted(maps.Keys(m))
}
