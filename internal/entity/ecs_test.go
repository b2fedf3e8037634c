package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/types"
)

func TestNewEntityAscending(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	assert.Less(t, a, b)
}

func TestSortedIDs(t *testing.T) {
	m := map[types.EntityID]int{9: 0, 2: 0, 5: 0, 1: 0}
	assert.Equal(t, []types.EntityID{1, 2, 5, 9}, SortedIDs(m))
	assert.Empty(t, SortedIDs(map[types.EntityID]int{}))
}

func TestClearKeepsOtherEntities(t *testing.T) {
	ecs := NewECS()

	enemy := ecs.NewEntity()
	ecs.Enemies[enemy] = &component.Enemy{Life: 10}
	ecs.Positions[enemy] = &component.Position{}

	shot := ecs.NewEntity()
	ecs.Projectiles[shot] = &component.Projectile{}
	ecs.Positions[shot] = &component.Position{}

	tower := ecs.NewEntity()
	ecs.Towers[tower] = &component.Tower{Level: 1}
	ecs.Positions[tower] = &component.Position{}

	ecs.ClearEnemies()
	assert.Empty(t, ecs.Enemies)
	assert.NotContains(t, ecs.Positions, enemy)
	assert.Contains(t, ecs.Positions, shot)

	ecs.ClearProjectiles()
	assert.Empty(t, ecs.Projectiles)
	assert.Len(t, ecs.Positions, 1)
	assert.Contains(t, ecs.Towers, tower)
}
