// internal/defs/waves.go
package defs

import (
	"math"

	"go-breakpoint-defense/pkg/utils"
)

// WaveTuning описывает темп появления врагов и рост сложности от волны к волне.
type WaveTuning struct {
	Quota         int     `yaml:"quota"`          // врагов в одной волне
	SpawnInterval float64 `yaml:"spawn_interval"` // секунд между появлениями
	Cooldown      float64 `yaml:"cooldown"`       // секунд на строительство между волнами
	InitialLife   float64 `yaml:"initial_life"`
	LifeScalar    float64 `yaml:"life_scalar"`
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedGrowth   float64 `yaml:"speed_growth"`
	SpeedCap      float64 `yaml:"speed_cap"`
}

// EnemyLife returns round(InitialLife * (1.2 + LifeScalar)^wave).
func (t WaveTuning) EnemyLife(wave uint) uint32 {
	return utils.RoundUint32(t.InitialLife * math.Pow(1.2+t.LifeScalar, float64(wave)))
}

// EnemySpeed returns min(BaseSpeed * (1 + SpeedGrowth)^wave, SpeedCap).
func (t WaveTuning) EnemySpeed(wave uint) float64 {
	return math.Min(t.BaseSpeed*math.Pow(1+t.SpeedGrowth, float64(wave)), t.SpeedCap)
}
