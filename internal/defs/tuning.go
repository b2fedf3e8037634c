// internal/defs/tuning.go
package defs

import (
	"errors"
	"fmt"

	"go-breakpoint-defense/internal/config"
	"go-breakpoint-defense/pkg/route"
)

// CombatTuning holds the tower, targeting and projectile numbers.
type CombatTuning struct {
	AttackRange    float64 `yaml:"attack_range"`
	ShotSpeed      float64 `yaml:"shot_speed"`
	HurtDistanceSq float64 `yaml:"hurt_distance_sq"`
	ArrivalDistSq  float64 `yaml:"arrival_distance_sq"`
	DespawnRange   float64 `yaml:"despawn_range"`
	FrameInterval  float64 `yaml:"frame_interval"`
	ImpactFrame    int     `yaml:"impact_frame"`
	SpawnOffsetY   float64 `yaml:"spawn_offset_y"`
	DamageScalar   float64 `yaml:"damage_scalar"`
	MaxDamage      uint32  `yaml:"max_damage"`
	CostGrowth     float64 `yaml:"cost_growth"`
	CooldownDecay  float64 `yaml:"cooldown_decay"`
	MinCooldown    float64 `yaml:"min_cooldown"`
	MaxLevel       int     `yaml:"max_level"`
}

// EconomyTuning holds the starting resources and the kill reward constants.
type EconomyTuning struct {
	InitialGold       uint32  `yaml:"initial_gold"`
	MaxLives          uint32  `yaml:"max_lives"`
	RewardLifeDivisor float64 `yaml:"reward_life_divisor"`
	RewardPerWave     float64 `yaml:"reward_per_wave"`
}

// SwarmTuning configures the separation steering of swarm enemies.
type SwarmTuning struct {
	MinSeparation float64 `yaml:"min_separation"`
	Strength      float64 `yaml:"strength"`
	ArrivalRadius float64 `yaml:"arrival_radius"`
}

// Tuning is the full balance sheet of the simulation.
type Tuning struct {
	Wave       WaveTuning        `yaml:"wave"`
	Combat     CombatTuning      `yaml:"combat"`
	Economy    EconomyTuning     `yaml:"economy"`
	Swarm      SwarmTuning       `yaml:"swarm"`
	Enemies    []EnemyDefinition `yaml:"enemies"`
	Towers     []TowerDefinition `yaml:"towers"`
	TowerSlots []route.Vec       `yaml:"tower_slots"`
}

// DefaultTuning returns the reference configuration.
func DefaultTuning() *Tuning {
	return &Tuning{
		Wave: WaveTuning{
			Quota:         config.MaxEnemiesPerWave,
			SpawnInterval: config.TimeBetweenSpawns,
			Cooldown:      config.TimeBetweenWaves,
			InitialLife:   config.InitialEnemyLife,
			LifeScalar:    config.LifeScalar,
			BaseSpeed:     config.BaseEnemySpeed,
			SpeedGrowth:   config.EnemySpeedGrowth,
			SpeedCap:      config.EnemySpeedCap,
		},
		Combat: CombatTuning{
			AttackRange:    config.TowerAttackRange,
			ShotSpeed:      config.ShotSpeed,
			HurtDistanceSq: config.ShotHurtDistanceSq,
			ArrivalDistSq:  config.ShotArrivalDistSq,
			DespawnRange:   config.DespawnShotRange,
			FrameInterval:  config.ShotFrameInterval,
			ImpactFrame:    config.ShotImpactFrame,
			SpawnOffsetY:   config.ShotSpawnOffsetY,
			DamageScalar:   config.TowerDamageScalar,
			MaxDamage:      config.TowerMaxDamage,
			CostGrowth:     config.TowerCostGrowth,
			CooldownDecay:  config.TowerCooldownDecay,
			MinCooldown:    config.TowerMinCooldown,
			MaxLevel:       config.MaxTowerLevel,
		},
		Economy: EconomyTuning{
			InitialGold:       config.InitialPlayerGold,
			MaxLives:          config.MaxLives,
			RewardLifeDivisor: config.RewardLifeDivisor,
			RewardPerWave:     config.RewardPerWave,
		},
		Swarm: SwarmTuning{
			MinSeparation: config.MinSwarmSeparation,
			Strength:      config.SeparationStrength,
			ArrivalRadius: config.SwarmArrivalRadius,
		},
		Enemies:    DefaultEnemies(),
		Towers:     DefaultTowers(),
		TowerSlots: DefaultTowerSlots(),
	}
}

// EnemyForWave picks the archetype for a wave. The table repeats once every
// archetype has been used.
func (t *Tuning) EnemyForWave(wave uint) EnemyDefinition {
	return t.Enemies[wave%uint(len(t.Enemies))]
}

// Tower looks up a tower definition by type.
func (t *Tuning) Tower(tt TowerType) (TowerDefinition, bool) {
	for _, d := range t.Towers {
		if d.Type == tt {
			return d, true
		}
	}
	return TowerDefinition{}, false
}

// Validate checks the invariants every system relies on. A violation is a
// configuration bug, so all problems are reported at once.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Wave.Quota > 0, "wave.quota must be positive, got %d", t.Wave.Quota)
	check(t.Wave.SpawnInterval > 0, "wave.spawn_interval must be positive, got %v", t.Wave.SpawnInterval)
	check(t.Wave.Cooldown > 0, "wave.cooldown must be positive, got %v", t.Wave.Cooldown)
	check(t.Wave.InitialLife >= 1, "wave.initial_life must be at least 1, got %v", t.Wave.InitialLife)
	check(t.Wave.LifeScalar >= -0.2, "wave.life_scalar below -0.2 makes life shrink, got %v", t.Wave.LifeScalar)
	check(t.Wave.BaseSpeed > 0, "wave.base_speed must be positive, got %v", t.Wave.BaseSpeed)
	check(t.Wave.SpeedGrowth >= 0, "wave.speed_growth must not be negative, got %v", t.Wave.SpeedGrowth)
	check(t.Wave.SpeedCap >= t.Wave.BaseSpeed, "wave.speed_cap %v is below base_speed %v", t.Wave.SpeedCap, t.Wave.BaseSpeed)

	check(t.Combat.AttackRange > 0, "combat.attack_range must be positive")
	check(t.Combat.ShotSpeed > 0, "combat.shot_speed must be positive")
	check(t.Combat.HurtDistanceSq > 0, "combat.hurt_distance_sq must be positive")
	check(t.Combat.ArrivalDistSq > 0, "combat.arrival_distance_sq must be positive")
	check(t.Combat.DespawnRange > 0, "combat.despawn_range must be positive")
	check(t.Combat.FrameInterval > 0, "combat.frame_interval must be positive")
	check(t.Combat.ImpactFrame > 0, "combat.impact_frame must be positive")
	check(t.Combat.MaxDamage >= 1, "combat.max_damage must be at least 1")
	check(t.Combat.MinCooldown > 0, "combat.min_cooldown must be positive")
	check(t.Combat.MaxLevel >= 1, "combat.max_level must be at least 1")

	check(t.Economy.MaxLives > 0, "economy.max_lives must be positive")
	check(t.Economy.RewardLifeDivisor > 0, "economy.reward_life_divisor must be positive")

	check(t.Swarm.MinSeparation >= 0, "swarm.min_separation must not be negative")
	check(t.Swarm.ArrivalRadius > 0, "swarm.arrival_radius must be positive")

	check(len(t.Enemies) > 0, "at least one enemy archetype is required")
	for i, e := range t.Enemies {
		check(e.ID != "", "enemies[%d] has no id", i)
		check(e.Movement.Valid(), "enemies[%d] (%s) has unknown movement %q", i, e.ID, e.Movement)
	}

	check(len(t.Towers) > 0, "at least one tower is required")
	seen := make(map[TowerType]bool)
	for i, d := range t.Towers {
		check(d.Type != "", "towers[%d] has no type", i)
		check(!seen[d.Type], "towers[%d] duplicates type %s", i, d.Type)
		check(d.BaseCooldown > 0, "towers[%d] (%s) base_cooldown must be positive", i, d.Type)
		seen[d.Type] = true
	}
	check(len(t.TowerSlots) > 0, "at least one tower slot is required")

	return errors.Join(errs...)
}
