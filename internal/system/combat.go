// internal/system/combat.go
package system

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/logger"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/internal/utils"
	"go-breakpoint-defense/pkg/route"

	"golang.org/x/sync/errgroup"
)

// Candidate — враг, видимый башне при выборе цели.
type Candidate struct {
	ID      types.EntityID
	Pos     route.Vec
	Segment int
}

// SelectTarget выбирает цель среди врагов в радиусе (0, attackRange):
// сначала максимальный сегмент, затем наименьшее расстояние до путевой точки
// этого сегмента. candidates должны идти по возрастанию ID, тогда при точном
// равенстве побеждает враг, появившийся раньше.
func SelectTarget(towerPos route.Vec, attackRange float64, candidates []Candidate, r *route.Route) (Candidate, bool) {
	var (
		best     Candidate
		bestDist float64
		found    bool
	)
	rangeSq := attackRange * attackRange
	for _, c := range candidates {
		d := towerPos.DistSq(c.Pos)
		if d <= 0 || d >= rangeSq {
			continue
		}
		toTurn := c.Pos.DistSq(r.Waypoint(c.Segment))
		switch {
		case !found, c.Segment > best.Segment:
		case c.Segment == best.Segment && toTurn < bestDist:
		default:
			continue
		}
		best, bestDist, found = c, toTurn, true
	}
	return best, found
}

// shot — результат работы одной башни за тик.
type shot struct {
	fire   bool
	target Candidate
}

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs     *entity.ECS
	tuning  *defs.Tuning
	route   *route.Route
	workers int
	log     *logger.Logger
}

func NewCombatSystem(ecs *entity.ECS, tuning *defs.Tuning, r *route.Route, workers int, log *logger.Logger) *CombatSystem {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Discard()
	}
	return &CombatSystem{ecs: ecs, tuning: tuning, route: r, workers: workers, log: log}
}

// Update тикает перезарядку всех башен и создаёт снаряды. Башни считаются
// параллельно: каждая пишет только свой таймер и свою ячейку results, враги
// читаются из снимка. Снаряды создаются после, в порядке ID башен.
func (s *CombatSystem) Update(deltaTime float64) {
	towerIDs := entity.SortedIDs(s.ecs.Towers)
	if len(towerIDs) == 0 {
		return
	}
	candidates := s.snapshotEnemies()

	type job struct {
		pos    route.Vec
		combat *component.Combat
	}
	jobs := make([]job, len(towerIDs))
	for i, id := range towerIDs {
		pos, hasPos := s.ecs.Positions[id]
		combat, hasCombat := s.ecs.Combats[id]
		if hasPos && hasCombat {
			jobs[i] = job{pos: pos.Vec(), combat: combat}
		}
	}

	results := make([]shot, len(towerIDs))
	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range jobs {
		j := jobs[i]
		if j.combat == nil {
			continue
		}
		g.Go(func() error {
			j.combat.Cooldown.Tick(deltaTime)
			target, ok := SelectTarget(j.pos, j.combat.Range, candidates, s.route)
			if ok && j.combat.Cooldown.JustFinished() {
				results[i] = shot{fire: true, target: target}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.log.Error("targeting pass failed: %v", err)
		return
	}

	for i, res := range results {
		if res.fire {
			s.spawnProjectile(towerIDs[i], jobs[i].pos, jobs[i].combat.Damage, res.target)
		}
	}
}

func (s *CombatSystem) snapshotEnemies() []Candidate {
	ids := entity.SortedIDs(s.ecs.Enemies)
	out := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		seg := 0
		if path, ok := s.ecs.Paths[id]; ok {
			seg = path.Segment
		}
		out = append(out, Candidate{ID: id, Pos: pos.Vec(), Segment: seg})
	}
	return out
}

func (s *CombatSystem) spawnProjectile(towerID types.EntityID, towerPos route.Vec, damage uint32, target Candidate) {
	var towerType defs.TowerType
	if tower, ok := s.ecs.Towers[towerID]; ok {
		towerType = tower.Type
	}

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: towerPos.X, Y: towerPos.Y + s.tuning.Combat.SpawnOffsetY}
	s.ecs.Projectiles[id] = &component.Projectile{
		Damage: damage,
		Target: &component.Target{
			ID:        target.ID,
			LastKnown: component.PositionOf(target.Pos),
		},
		ArmTimer:  NewArmTimer(s.tuning.Combat),
		TowerType: towerType,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Key:    string(towerType),
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}

// NewTowerCombat builds the combat component for a tower at a level.
func NewTowerCombat(def defs.TowerDefinition, level int, c defs.CombatTuning) *component.Combat {
	stats := def.Stats(level, c)
	return &component.Combat{
		Damage:   stats.Damage,
		Range:    c.AttackRange,
		Cooldown: utils.NewTimer(stats.Cooldown, utils.Repeating),
	}
}

// NewArmTimer — таймер кадров взрыва снаряда.
func NewArmTimer(c defs.CombatTuning) utils.Timer {
	return utils.NewTimer(c.FrameInterval, utils.Repeating)
}
