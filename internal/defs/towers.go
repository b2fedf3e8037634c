// internal/defs/towers.go
package defs

import (
	"image/color"
	"math"

	"go-breakpoint-defense/pkg/route"
	"go-breakpoint-defense/pkg/utils"
)

// TowerType is one of the closed set of buildable towers.
type TowerType string

const (
	TowerLich     TowerType = "LICH"
	TowerZigurat  TowerType = "ZIGURAT"
	TowerElectric TowerType = "ELECTRIC"
)

// TowerDefinition holds the level-1 numbers for a tower type; every other
// level is derived from them.
type TowerDefinition struct {
	Type         TowerType `yaml:"type"`
	Name         string    `yaml:"name"`
	BaseCost     uint32    `yaml:"base_cost"`
	BaseDamage   uint32    `yaml:"base_damage"`
	BaseCooldown float64   `yaml:"base_cooldown"` // секунд между выстрелами до учёта уровня
	Visuals      Visuals   `yaml:"visuals"`
}

// TowerStats are the derived combat numbers for one tower level.
type TowerStats struct {
	Level    int
	Damage   uint32
	Cooldown float64
}

// Cost returns the gold needed to build (level 1) or upgrade to level.
func (d TowerDefinition) Cost(level int, c CombatTuning) uint32 {
	if level <= 1 {
		return d.BaseCost
	}
	return utils.RoundUint32(float64(d.BaseCost) * math.Pow(c.CostGrowth, float64(level)))
}

// Stats derives damage and attack cooldown for a level. Damage grows
// exponentially and is clamped; the cooldown shrinks with a floor.
func (d TowerDefinition) Stats(level int, c CombatTuning) TowerStats {
	dmg := math.Round(float64(d.BaseDamage) * math.Pow(1.1+c.DamageScalar, float64(level)))
	dmg = math.Max(1, math.Min(dmg, float64(c.MaxDamage)))

	cooldown := math.Max(d.BaseCooldown*math.Pow(c.CooldownDecay, float64(level)), c.MinCooldown)

	return TowerStats{Level: level, Damage: uint32(dmg), Cooldown: cooldown}
}

// DefaultTowers returns the three reference towers.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Type: TowerLich, Name: "Lich", BaseCost: 40, BaseDamage: 15, BaseCooldown: 0.5,
			Visuals: Visuals{Color: color.RGBA{150, 90, 220, 255}, RadiusFactor: 1.0},
		},
		{
			Type: TowerZigurat, Name: "Zigurat", BaseCost: 100, BaseDamage: 40, BaseCooldown: 0.4,
			Visuals: Visuals{Color: color.RGBA{210, 180, 90, 255}, RadiusFactor: 1.1},
		},
		{
			Type: TowerElectric, Name: "Electric", BaseCost: 180, BaseDamage: 150, BaseCooldown: 1.2,
			Visuals: Visuals{Color: color.RGBA{80, 170, 255, 255}, RadiusFactor: 1.2},
		},
	}
}

// DefaultTowerSlots — клетки карты, на которых разрешено строить.
func DefaultTowerSlots() []route.Vec {
	return []route.Vec{
		{X: 17, Y: 16},
		{X: -112, Y: 16},
		{X: 144, Y: 16},
		{X: -206, Y: 270},
		{X: -335, Y: 270},
		{X: -464, Y: 270},
		{X: -240, Y: -240},
		{X: -112, Y: -240},
		{X: 17, Y: -240},
		{X: 144.5, Y: -240},
		{X: 272.5, Y: -240},
		{X: 400, Y: 53},
		{X: 560, Y: 53},
		{X: 400, Y: 270},
		{X: 560, Y: 270},
	}
}
