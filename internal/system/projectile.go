// internal/system/projectile.go
package system

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs     *entity.ECS
	combat  defs.CombatTuning
	economy *EconomySystem
}

func NewProjectileSystem(ecs *entity.ECS, combat defs.CombatTuning, economy *EconomySystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:     ecs,
		combat:  combat,
		economy: economy,
	}
}

// Update разбивает снаряды на живые и потерявшие цель в начале прохода.
// Если цель живого снаряда погибла раньше в этом же проходе, снаряд ждёт
// следующего тика и идёт по ветке потерянной цели.
func (s *ProjectileSystem) Update(deltaTime float64) {
	var live, lost []types.EntityID
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		proj := s.ecs.Projectiles[id]
		if _, hasPos := s.ecs.Positions[id]; !hasPos || proj.Target == nil {
			s.ecs.RemoveEntity(id)
			continue
		}
		if _, alive := s.ecs.Enemies[proj.Target.ID]; alive {
			live = append(live, id)
		} else {
			lost = append(lost, id)
		}
	}

	for _, id := range live {
		s.updateLive(id, deltaTime)
	}
	for _, id := range lost {
		s.updateLost(id, deltaTime)
	}
}

func (s *ProjectileSystem) updateLive(id types.EntityID, deltaTime float64) {
	proj := s.ecs.Projectiles[id]
	targetPos, alive := s.ecs.Positions[proj.Target.ID]
	if _, isEnemy := s.ecs.Enemies[proj.Target.ID]; !alive || !isEnemy {
		return
	}
	pos := s.ecs.Positions[id]
	target := targetPos.Vec()

	next := stepTowards(pos.Vec(), target, s.combat.ShotSpeed*deltaTime)
	*pos = component.PositionOf(next)
	proj.Target.LastKnown = *targetPos

	if next.DistSq(target) > s.combat.HurtDistanceSq {
		return
	}
	proj.ArmTimer.Tick(deltaTime)
	if proj.ArmTimer.JustFinished() {
		proj.Frame++
	}
	if proj.Frame < s.combat.ImpactFrame {
		return
	}

	life, _ := ApplyDamage(s.ecs, proj.Target.ID, proj.Damage)
	if life == 0 {
		s.economy.RewardKill(proj.Target.ID)
	}
	s.ecs.RemoveEntity(id)
}

func (s *ProjectileSystem) updateLost(id types.EntityID, deltaTime float64) {
	proj := s.ecs.Projectiles[id]
	pos := s.ecs.Positions[id]
	proj.Frame = 0

	last := proj.Target.LastKnown.Vec()
	next := stepTowards(pos.Vec(), last, s.combat.ShotSpeed*deltaTime)
	*pos = component.PositionOf(next)

	if next.DistSq(last) <= s.combat.ArrivalDistSq || next.Len() > s.combat.DespawnRange {
		s.ecs.RemoveEntity(id)
	}
}

// stepTowards двигает точку к цели, не перелетая её.
func stepTowards(from, to route.Vec, distance float64) route.Vec {
	delta := to.Sub(from)
	if delta.Len() <= distance {
		return to
	}
	return from.Add(delta.Normalize().Scale(distance))
}
