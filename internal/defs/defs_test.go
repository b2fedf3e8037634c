package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyLifeDoublesEachWave(t *testing.T) {
	w := DefaultTuning().Wave

	assert.Equal(t, uint32(60), w.EnemyLife(0))
	assert.Equal(t, uint32(120), w.EnemyLife(1))
	assert.Equal(t, uint32(240), w.EnemyLife(2))

	prev := w.EnemyLife(0)
	for wave := uint(1); wave < 20; wave++ {
		life := w.EnemyLife(wave)
		assert.GreaterOrEqual(t, life, prev, "wave %d", wave)
		prev = life
	}
}

func TestEnemyLifeSaturates(t *testing.T) {
	w := DefaultTuning().Wave
	assert.Equal(t, ^uint32(0), w.EnemyLife(200))
}

func TestEnemySpeedCapped(t *testing.T) {
	w := DefaultTuning().Wave

	assert.InDelta(t, 75.0, w.EnemySpeed(0), 1e-9)
	assert.InDelta(t, 78.75, w.EnemySpeed(1), 1e-9)
	assert.Equal(t, 300.0, w.EnemySpeed(100))
}

func TestTowerCosts(t *testing.T) {
	tun := DefaultTuning()
	lich, ok := tun.Tower(TowerLich)
	require.True(t, ok)

	assert.Equal(t, uint32(40), lich.Cost(1, tun.Combat))
	assert.Equal(t, uint32(68), lich.Cost(2, tun.Combat))
	assert.Equal(t, uint32(88), lich.Cost(3, tun.Combat))

	electric, ok := tun.Tower(TowerElectric)
	require.True(t, ok)
	assert.Equal(t, uint32(180), electric.Cost(1, tun.Combat))
}

func TestTowerStats(t *testing.T) {
	tun := DefaultTuning()

	lich, _ := tun.Tower(TowerLich)
	s := lich.Stats(1, tun.Combat)
	assert.Equal(t, uint32(27), s.Damage)
	assert.InDelta(t, 0.425, s.Cooldown, 1e-9)

	s = lich.Stats(3, tun.Combat)
	assert.Equal(t, uint32(87), s.Damage)

	electric, _ := tun.Tower(TowerElectric)
	assert.Equal(t, uint32(500), electric.Stats(3, tun.Combat).Damage, "damage is clamped")

	c := tun.Combat
	c.MinCooldown = 0.45
	assert.Equal(t, 0.45, lich.Stats(3, c).Cooldown, "cooldown has a floor")
}

func TestTowerLookupUnknown(t *testing.T) {
	_, ok := DefaultTuning().Tower("CANNON")
	assert.False(t, ok)
}

func TestEnemyForWaveWraps(t *testing.T) {
	tun := DefaultTuning()
	n := uint(len(tun.Enemies))

	assert.Equal(t, "ENEMY_ORC", tun.EnemyForWave(0).ID)
	assert.Equal(t, tun.EnemyForWave(1), tun.EnemyForWave(n+1))
}

func TestDefaultTuningIsValid(t *testing.T) {
	tun := DefaultTuning()
	require.NoError(t, tun.Validate())
	assert.Len(t, tun.TowerSlots, 15)
	assert.Len(t, tun.Towers, 3)
}

func TestValidateReportsAllProblems(t *testing.T) {
	tun := DefaultTuning()
	tun.Wave.Quota = 0
	tun.Combat.ShotSpeed = -1
	tun.Enemies = append(tun.Enemies, EnemyDefinition{ID: "ENEMY_GHOST", Movement: "teleport"})

	err := tun.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wave.quota")
	assert.Contains(t, err.Error(), "combat.shot_speed")
	assert.Contains(t, err.Error(), "teleport")
}

func TestLoadTuningMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte(`
wave:
  quota: 10
  cooldown: 5
economy:
  initial_gold: 500
enemies:
  - id: ENEMY_ORC
    name: Orc
    movement: swarm
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	tun, err := LoadTuning(path)
	require.NoError(t, err)

	assert.Equal(t, 10, tun.Wave.Quota)
	assert.Equal(t, 5.0, tun.Wave.Cooldown)
	assert.Equal(t, 1.5, tun.Wave.SpawnInterval, "untouched fields keep their defaults")
	assert.Equal(t, uint32(500), tun.Economy.InitialGold)
	assert.Equal(t, uint32(30), tun.Economy.MaxLives)
	require.Len(t, tun.Enemies, 1)
	assert.Equal(t, MovementSwarm, tun.Enemies[0].Movement)
	assert.Len(t, tun.Towers, 3)
}

func TestLoadTuningErrors(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ParseTuning([]byte("wave: [not a map"))
	assert.Error(t, err)

	_, err = ParseTuning([]byte("wave:\n  base_speed: 400\n"))
	assert.ErrorContains(t, err, "speed_cap")
}
