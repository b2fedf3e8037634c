// internal/system/wave.go
package system

import (
	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/logger"
	"go-breakpoint-defense/internal/utils"
	"go-breakpoint-defense/pkg/route"
)

// WaveReporter получает номер каждой начатой волны. Вызов не должен блокировать.
type WaveReporter interface {
	ReportWave(wave uint)
}

type WaveSystem struct {
	ecs             *entity.ECS
	tuning          *defs.Tuning
	route           *route.Route
	eventDispatcher *event.Dispatcher
	reporter        WaveReporter
	log             *logger.Logger
}

func NewWaveSystem(ecs *entity.ECS, tuning *defs.Tuning, r *route.Route, eventDispatcher *event.Dispatcher, reporter WaveReporter, log *logger.Logger) *WaveSystem {
	if log == nil {
		log = logger.Discard()
	}
	return &WaveSystem{
		ecs:             ecs,
		tuning:          tuning,
		route:           r,
		eventDispatcher: eventDispatcher,
		reporter:        reporter,
		log:             log,
	}
}

// NewWaveState returns the wave singleton for a fresh game: wave 0, the
// first-wave cooldown already counting.
func NewWaveState(t defs.WaveTuning) *component.Wave {
	return &component.Wave{
		SpawnTimer: utils.NewTimer(t.SpawnInterval, utils.Repeating),
		Cooldown:   utils.NewTimer(t.Cooldown, utils.Once),
		Quota:      t.Quota,
	}
}

// UpdateSpawning выпускает врагов текущей волны. Вызывается только в фазе атаки.
func (s *WaveSystem) UpdateSpawning(deltaTime float64) {
	wave := s.ecs.Wave
	wave.SpawnTimer.Tick(deltaTime)
	if !wave.SpawnTimer.JustFinished() || wave.QuotaReached() {
		return
	}
	s.spawnEnemy(wave)
	wave.SpawnedInWave++
}

// Update ведёт таймер паузы между волнами. Вызывается в фазах строительства и атаки.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	wave.Cooldown.Tick(deltaTime)

	if !wave.FirstWaveReleased && wave.Cooldown.JustFinished() {
		wave.Cooldown.Pause()
		wave.Cooldown.Reset()
		wave.FirstWaveReleased = true
		s.log.Info("first wave started")
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: wave.Number}})
	}

	if !wave.QuotaReached() || len(s.ecs.Enemies) > 0 {
		return
	}

	if wave.Cooldown.Paused() {
		wave.Cooldown.Unpause()
		wave.Cooldown.Reset()
		s.log.Event(string(event.WaveCleared), "wave=%d", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: event.WaveData{Number: wave.Number}})
	}

	if wave.Cooldown.JustFinished() {
		wave.SpawnedInWave = 0
		wave.Number++
		if s.reporter != nil {
			s.reporter.ReportWave(wave.Number)
		}
		wave.Cooldown.Pause()
		wave.Cooldown.Reset()
		s.log.Info("cooldown finished, starting wave: %d", wave.Number)
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: wave.Number}})
	}
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	def := s.tuning.EnemyForWave(wave.Number)
	life := s.tuning.Wave.EnemyLife(wave.Number)

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: s.route.Spawn.X, Y: s.route.Spawn.Y}
	s.ecs.Velocities[id] = &component.Velocity{Speed: s.tuning.Wave.EnemySpeed(wave.Number)}
	s.ecs.Paths[id] = &component.Path{Segment: 0, Policy: def.Movement}
	s.ecs.Enemies[id] = &component.Enemy{
		Archetype: def.ID,
		Life:      life,
		MaxLife:   life,
		Wave:      wave.Number,
	}
	s.ecs.Animations[id] = &component.Animation{State: animStateFor(s.route.LegDirection(0))}
	s.ecs.Renderables[id] = &component.Renderable{
		Key:    def.ID,
		Color:  def.Visuals.Color,
		Radius: float32(config.EnemyRadius * def.Visuals.RadiusFactor),
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: event.EnemySpawnedData{
		ID: id, Archetype: def.ID, Wave: wave.Number, Life: life,
	}})
}
