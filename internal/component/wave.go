// internal/component/wave.go
package component

import "go-breakpoint-defense/internal/utils"

// Wave — одиночка с состоянием волн.
type Wave struct {
	Number            uint
	SpawnTimer        utils.Timer // повторяющийся, темп появления
	Cooldown          utils.Timer // одноразовый, пауза между волнами
	SpawnedInWave     int
	Quota             int
	FirstWaveReleased bool
}

// QuotaReached reports whether the current wave has spawned all its enemies.
func (w *Wave) QuotaReached() bool {
	return w.SpawnedInWave >= w.Quota
}
