// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Волны
	MaxEnemiesPerWave = 25
	TimeBetweenWaves  = 15.0 // секунд на строительство между волнами
	TimeBetweenSpawns = 1.5
	InitialEnemyLife  = 60
	LifeScalar        = 0.8  // life(w) = InitialEnemyLife * (1.2 + LifeScalar)^w
	BaseEnemySpeed    = 75.0 // пикселей в секунду
	EnemySpeedGrowth  = 0.05
	EnemySpeedCap     = 300.0

	// Стрельба
	TowerAttackRange   = 250.0
	ShotSpeed          = 700.0
	ShotHurtDistanceSq = 700.0 // квадрат расстояния, с которого снаряд начинает "взрываться"
	ShotArrivalDistSq  = 50.0  // квадрат расстояния прибытия снаряда без цели
	DespawnShotRange   = 800.0 // от начала координат
	ShotFrameInterval  = 0.05
	ShotImpactFrame    = 7
	ShotSpawnOffsetY   = 40.0
	TowerDamageScalar  = 0.7 // damage = base * (1.1 + TowerDamageScalar)^level
	TowerMaxDamage     = 500
	TowerCostGrowth    = 1.3
	TowerCooldownDecay = 0.85
	TowerMinCooldown   = 0.1
	MaxTowerLevel      = 3

	// Экономика
	InitialPlayerGold = 95
	MaxLives          = 30
	RewardLifeDivisor = 2.5
	RewardPerWave     = 2.0

	// Стая
	MinSwarmSeparation = 25.0
	SeparationStrength = 2.0
	SwarmArrivalRadius = 6.0

	TargetingWorkers = 4
	LedgerTimeout    = 5 // секунд на запись в журнал

	EnemyRadius      = 14.0
	TowerRadius      = 22.0
	ProjectileRadius = 5.0
	SlotRadius       = 26.0

	// Интерфейс
	IndicatorOffsetX = 40
	IndicatorRadius  = 16
	ButtonSize       = 14
	ClickCooldown    = 150 // мс
	MessageDuration  = 2   // секунд показа ошибки действия
)

var (
	BackgroundColor = color.RGBA{30, 26, 34, 255}
	PathColor       = color.RGBA{120, 96, 70, 255}
	SlotColor       = color.RGBA{70, 110, 70, 160}
	TextLightColor  = color.RGBA{224, 162, 125, 255}
	PanelColor      = color.RGBA{78, 43, 47, 230}
	BuildStateColor = color.RGBA{70, 130, 180, 220}
	WaveStateColor  = color.RGBA{220, 60, 60, 220}
	GameOverColor   = color.RGBA{90, 90, 90, 220}
	IndicatorStroke = color.RGBA{240, 240, 240, 255}
	ProjectileColor = color.RGBA{255, 230, 120, 255}
	ImpactColor     = color.RGBA{255, 120, 40, 255}
	HealthBarColor  = color.RGBA{60, 200, 80, 255}
	StrokeWidth     = 2.0
)
