package system

import (
	"testing"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
)

type world struct {
	ecs     *entity.ECS
	tuning  *defs.Tuning
	route   *route.Route
	events  *event.Dispatcher
	economy *EconomySystem
	state   *StateSystem
	seen    []event.Event
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		ecs:    entity.NewECS(),
		tuning: defs.DefaultTuning(),
		route:  route.Default(),
		events: event.NewDispatcher(),
	}
	w.ecs.Wave = NewWaveState(w.tuning.Wave)
	w.economy = NewEconomySystem(w.ecs, w.tuning.Economy, w.route, w.events)
	w.economy.Reset()
	w.state = NewStateSystem(w.ecs, w.ecs, w.events, nil)
	w.events.SubscribeAll(event.ListenerFunc(func(e event.Event) { w.seen = append(w.seen, e) }),
		event.EnemySpawned, event.EnemyKilled, event.EnemyBreached, event.WaveCleared,
		event.WaveStarted, event.PhaseChanged, event.GameOver)
	return w
}

func (w *world) addEnemy(pos route.Vec, segment int, life uint32) types.EntityID {
	return w.addEnemyWithPolicy(pos, segment, life, defs.MovementWaypoint)
}

func (w *world) addEnemyWithPolicy(pos route.Vec, segment int, life uint32, policy defs.MovementKind) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 75}
	w.ecs.Paths[id] = &component.Path{Segment: segment, Policy: policy}
	w.ecs.Enemies[id] = &component.Enemy{Life: life, MaxLife: life}
	w.ecs.Animations[id] = &component.Animation{}
	return id
}

func (w *world) addTower(pos route.Vec, tt defs.TowerType, level int) types.EntityID {
	def, _ := w.tuning.Tower(tt)
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	w.ecs.Towers[id] = &component.Tower{Type: tt, Level: level}
	w.ecs.Combats[id] = NewTowerCombat(def, level, w.tuning.Combat)
	return id
}

func (w *world) addProjectile(pos route.Vec, target types.EntityID, lastKnown route.Vec, damage uint32) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: pos.X, Y: pos.Y}
	w.ecs.Projectiles[id] = &component.Projectile{
		Damage:   damage,
		Target:   &component.Target{ID: target, LastKnown: component.PositionOf(lastKnown)},
		ArmTimer: NewArmTimer(w.tuning.Combat),
	}
	return id
}

func (w *world) countEvents(t event.EventType) int {
	n := 0
	for _, e := range w.seen {
		if e.Type == t {
			n++
		}
	}
	return n
}

type reportSink struct{ waves []uint }

func (r *reportSink) ReportWave(wave uint) { r.waves = append(r.waves, wave) }
