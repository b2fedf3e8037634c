// internal/system/economy.go
package system

import (
	"math"

	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
	"go-breakpoint-defense/pkg/utils"
)

// EconomySystem ведёт золото и жизни: награды за убийства и потери от прорывов.
type EconomySystem struct {
	ecs             *entity.ECS
	tuning          defs.EconomyTuning
	route           *route.Route
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(ecs *entity.ECS, tuning defs.EconomyTuning, r *route.Route, eventDispatcher *event.Dispatcher) *EconomySystem {
	return &EconomySystem{
		ecs:             ecs,
		tuning:          tuning,
		route:           r,
		eventDispatcher: eventDispatcher,
	}
}

// Reset restores the starting gold and lives.
func (s *EconomySystem) Reset() {
	s.ecs.Economy.Gold = s.tuning.InitialGold
	s.ecs.Economy.Lives = s.tuning.MaxLives
}

// Update убирает врагов, прошедших порог конца пути, и снимает по жизни за каждого.
func (s *EconomySystem) Update() {
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		enemy, ok := s.ecs.Enemies[id]
		if !ok {
			continue
		}
		pos, hasPos := s.ecs.Positions[id]
		if !enemy.ReachedEnd && (!hasPos || !s.route.Breached(pos.Vec())) {
			continue
		}

		s.ecs.RemoveEntity(id)
		eco := s.ecs.Economy
		eco.Lives = utils.SaturatingSub(eco.Lives, 1)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyBreached, Data: event.EnemyBreachedData{
			ID: id, LivesLeft: eco.Lives,
		}})
	}
}

// Reward returns round(life/RewardLifeDivisor + (wave+1)*RewardPerWave).
func (s *EconomySystem) Reward(life uint32, wave uint) uint32 {
	return utils.RoundUint32(float64(life)/s.tuning.RewardLifeDivisor + float64(wave+1)*s.tuning.RewardPerWave)
}

// RewardKill убирает убитого врага и начисляет награду по текущему номеру волны.
// Жизнь врага к этому моменту уже 0, поэтому первое слагаемое награды нулевое.
func (s *EconomySystem) RewardKill(enemyID types.EntityID) uint32 {
	enemy, ok := s.ecs.Enemies[enemyID]
	if !ok {
		return 0
	}
	wave := s.ecs.Wave.Number
	reward := s.Reward(enemy.Life, wave)

	s.ecs.RemoveEntity(enemyID)
	s.ecs.Economy.Gold = utils.SaturatingAdd(s.ecs.Economy.Gold, reward, math.MaxUint32)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyKilledData{
		ID: enemyID, Wave: wave, Reward: reward,
	}})
	return reward
}

// Spend списывает золото, если его хватает.
func (s *EconomySystem) Spend(cost uint32) bool {
	if s.ecs.Economy.Gold < cost {
		return false
	}
	s.ecs.Economy.Gold -= cost
	return true
}
