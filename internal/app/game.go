// internal/app/game.go
package app

import (
	"fmt"
	"math"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/internal/interfaces"
	"go-breakpoint-defense/internal/logger"
	"go-breakpoint-defense/internal/system"
	"go-breakpoint-defense/pkg/route"
)

// Options настраивают симуляцию. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Tuning           *defs.Tuning
	Route            *route.Route
	Reporter         system.WaveReporter // журнал волн, может быть nil
	TargetingWorkers int
	Logger           *logger.Logger
}

var _ interfaces.GameContext = (*Game)(nil)

// Game holds the main game state and logic.
type Game struct {
	ECS                *entity.ECS
	Tuning             *defs.Tuning
	Route              *route.Route
	EventDispatcher    *event.Dispatcher
	MovementSystem     *system.MovementSystem
	WaveSystem         *system.WaveSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	PlayerSystem       *system.PlayerSystem
	SpeedMultiplier    int

	log      *logger.Logger
	gameTime float64
	isPaused bool
}

// NewGame initializes a new game instance. An invalid tuning is a programming
// error and panics; load-time validation lives in defs.LoadTuning.
func NewGame(opts Options) *Game {
	if opts.Tuning == nil {
		opts.Tuning = defs.DefaultTuning()
	}
	if err := opts.Tuning.Validate(); err != nil {
		panic(fmt.Sprintf("invalid tuning: %v", err))
	}
	if opts.Route == nil {
		opts.Route = route.Default()
	}
	if opts.TargetingWorkers < 1 {
		opts.TargetingWorkers = config.TargetingWorkers
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		ECS:             ecs,
		Tuning:          opts.Tuning,
		Route:           opts.Route,
		EventDispatcher: eventDispatcher,
		SpeedMultiplier: 1,
		log:             opts.Logger,
	}
	g.EconomySystem = system.NewEconomySystem(ecs, g.Tuning.Economy, g.Route, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher, g.log)
	g.WaveSystem = system.NewWaveSystem(ecs, g.Tuning, g.Route, eventDispatcher, opts.Reporter, g.log)
	g.MovementSystem = system.NewMovementSystem(ecs, g.Route, g.Tuning.Swarm)
	g.CombatSystem = system.NewCombatSystem(ecs, g.Tuning, g.Route, opts.TargetingWorkers, g.log)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.Tuning.Combat, g.EconomySystem)
	g.VisualEffectSystem = system.NewVisualEffectSystem(ecs, nil)
	g.PlayerSystem = system.NewPlayerSystem(eventDispatcher)

	eventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		stats := g.PlayerSystem.Stats()
		g.log.Event(string(e.Type), "wave=%d kills=%d breaches=%d", g.ECS.Wave.Number, stats.Kills, stats.Breaches)
	}))

	g.reset()
	return g
}

// Update продвигает симуляцию. deltaTime ограничен config.MaxDeltaTime, при
// ускорении шаг повторяется SpeedMultiplier раз.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused {
		return
	}
	dt := math.Max(0, math.Min(deltaTime, config.MaxDeltaTime))
	for i := 0; i < g.SpeedMultiplier; i++ {
		g.step(dt)
	}
}

func (g *Game) step(dt float64) {
	if g.ECS.GameState.Phase == component.GameOverState {
		return
	}
	g.gameTime += dt
	g.ECS.GameTime = g.gameTime

	if g.ECS.GameState.Phase == component.WaveState {
		g.WaveSystem.UpdateSpawning(dt)
		g.MovementSystem.Update(dt)
		g.CombatSystem.Update(dt)
		g.ProjectileSystem.Update(dt)
		g.EconomySystem.Update()
		g.VisualEffectSystem.Update(dt)
	}
	if g.ECS.GameState.Phase != component.GameOverState {
		g.WaveSystem.Update(dt)
	}
}

// Restart начинает новую партию: убирает все сущности и сбрасывает волны,
// экономику, фазу и статистику.
func (g *Game) Restart() {
	g.log.Info("restart after wave %d", g.ECS.Wave.Number)
	g.reset()
}

func (g *Game) reset() {
	g.ECS.ClearEnemies()
	g.ECS.ClearProjectiles()
	g.ECS.ClearTowers()
	g.ECS.Wave = system.NewWaveState(g.Tuning.Wave)
	g.EconomySystem.Reset()
	g.StateSystem.Reset()
	g.PlayerSystem.Reset()
	g.gameTime = 0
	g.ECS.GameTime = 0
	g.isPaused = false
}

func (g *Game) ClearEnemies() {
	g.ECS.ClearEnemies()
}

func (g *Game) ClearProjectiles() {
	g.ECS.ClearProjectiles()
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

func (g *Game) IsPaused() bool {
	return g.isPaused
}

// HandleSpeedClick переключает скорость 1x → 2x → 4x → 1x.
func (g *Game) HandleSpeedClick() {
	switch g.SpeedMultiplier {
	case 1:
		g.SpeedMultiplier = 2
	case 2:
		g.SpeedMultiplier = 4
	default:
		g.SpeedMultiplier = 1
	}
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Snapshot — данные для HUD.
type Snapshot struct {
	Gold          uint32
	Lives         uint32
	Wave          uint
	Phase         component.Phase
	Enemies       int
	Projectiles   int
	Towers        int
	SpawnedInWave int
	Quota         int
	NextWaveIn    float64 // секунд до атаки; 0, если таймер не идёт
	Paused        bool
	Speed         int
	Stats         system.SessionStats
}

func (g *Game) Snapshot() Snapshot {
	wave := g.ECS.Wave
	s := Snapshot{
		Gold:          g.ECS.Economy.Gold,
		Lives:         g.ECS.Economy.Lives,
		Wave:          wave.Number,
		Phase:         g.ECS.GameState.Phase,
		Enemies:       len(g.ECS.Enemies),
		Projectiles:   len(g.ECS.Projectiles),
		Towers:        len(g.ECS.Towers),
		SpawnedInWave: wave.SpawnedInWave,
		Quota:         wave.Quota,
		Paused:        g.isPaused,
		Speed:         g.SpeedMultiplier,
		Stats:         g.PlayerSystem.Stats(),
	}
	if !wave.Cooldown.Paused() {
		s.NextWaveIn = wave.Cooldown.Remaining()
	}
	return s
}
