package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/event"
	"go-breakpoint-defense/pkg/route"
)

func TestSameStateSwitchIsNoop(t *testing.T) {
	w := newWorld(t)

	w.state.SwitchToBuildState()
	assert.Equal(t, 0, w.countEvents(event.PhaseChanged))

	w.state.SwitchToWaveState()
	w.state.SwitchToWaveState()
	assert.Equal(t, 1, w.countEvents(event.PhaseChanged))
}

func TestBuildStateClearsProjectiles(t *testing.T) {
	w := newWorld(t)
	w.state.SwitchToWaveState()
	enemy := w.addEnemy(w.route.Spawn, 0, 60)
	w.addProjectile(route.Vec{}, enemy, route.Vec{}, 10)

	w.state.SwitchToBuildState()

	assert.Empty(t, w.ecs.Projectiles)
	assert.Contains(t, w.ecs.Enemies, enemy)
}

func TestGameOverIsTerminal(t *testing.T) {
	w := newWorld(t)
	w.state.SwitchToWaveState()
	w.state.SwitchToGameOverState()

	w.state.SwitchToBuildState()
	w.state.SwitchToWaveState()
	w.events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 1}})
	assert.Equal(t, component.GameOverState, w.state.Current())

	w.state.Reset()
	assert.Equal(t, component.BuildState, w.state.Current())
}

func TestPhaseStrings(t *testing.T) {
	assert.Equal(t, "Building", component.BuildState.String())
	assert.Equal(t, "Attacking", component.WaveState.String())
	assert.Equal(t, "GameOver", component.GameOverState.String())
}

func TestPlayerSystemCountsEvents(t *testing.T) {
	w := newWorld(t)
	ps := NewPlayerSystem(w.events)
	enemy := w.addEnemy(route.Vec{}, 0, 0)

	w.economy.RewardKill(enemy)
	w.events.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WaveData{Number: 2}})
	w.events.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Cost: 40}})
	w.events.Dispatch(event.Event{Type: event.TowerUpgraded, Data: event.TowerData{Cost: 68}})

	s := ps.Stats()
	assert.Equal(t, 1, s.Kills)
	assert.Equal(t, uint32(2), s.GoldEarned)
	assert.Equal(t, uint(2), s.BestWave)
	assert.Equal(t, 1, s.TowersBuilt)
	assert.Equal(t, uint32(108), s.GoldSpent)

	ps.Reset()
	assert.Zero(t, ps.Stats())
}
