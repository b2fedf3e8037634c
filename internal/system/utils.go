// internal/system/utils.go
package system

import (
	"math"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
	"go-breakpoint-defense/pkg/utils"
)

// ApplyDamage вычитает урон из жизни врага с насыщением в 0.
// Возвращает оставшуюся жизнь; ok=false, если врага уже нет.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage uint32) (life uint32, ok bool) {
	enemy, exists := ecs.Enemies[enemyID]
	if !exists {
		return 0, false
	}
	enemy.Life = utils.SaturatingSub(enemy.Life, damage)
	return enemy.Life, true
}

// animStateFor выбирает анимацию ходьбы по преобладающей оси направления.
func animStateFor(dir route.Vec) component.AnimState {
	if dir.IsZero() {
		return component.AnimIdle
	}
	if math.Abs(dir.X) >= math.Abs(dir.Y) {
		if dir.X < 0 {
			return component.AnimWalkLeft
		}
		return component.AnimWalkRight
	}
	if dir.Y > 0 {
		return component.AnimWalkUp
	}
	return component.AnimWalkDown
}
