package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/pkg/route"
)

func TestWaypointMovementAlongFirstLeg(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(w.route.Spawn, 0, 60)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(1)

	pos := w.ecs.Positions[id]
	assert.InDelta(t, 535.0, pos.X, 1e-9)
	assert.InDelta(t, 70.0, pos.Y, 1e-9)
	assert.Equal(t, 0, w.ecs.Paths[id].Segment)
	assert.Equal(t, component.AnimWalkLeft, w.ecs.Animations[id].State)
}

func TestWaypointMovementCarriesAcrossCorner(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(route.Vec{X: 270, Y: 70}, 0, 60)
	w.ecs.Velocities[id].Speed = 20
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(1)

	pos := w.ecs.Positions[id]
	assert.InDelta(t, 260.0, pos.X, 1e-9)
	assert.InDelta(t, 60.0, pos.Y, 1e-9)
	assert.Equal(t, 1, w.ecs.Paths[id].Segment)
	assert.Equal(t, component.AnimWalkDown, w.ecs.Animations[id].State)
}

func TestWaypointMovementStopsAtEnd(t *testing.T) {
	w := newWorld(t)
	last := w.route.Waypoints[w.route.Last()]
	id := w.addEnemy(route.Vec{X: last.X, Y: last.Y + 10}, w.route.Last(), 60)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(1)
	assert.True(t, w.ecs.Enemies[id].ReachedEnd)
	assert.Equal(t, last, w.ecs.Positions[id].Vec())

	ms.Update(1)
	assert.Equal(t, last, w.ecs.Positions[id].Vec(), "finished enemies do not move")
}

func TestSegmentNeverDecreasesOnWaypointPolicy(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(w.route.Spawn, 0, 60)
	w.ecs.Velocities[id].Speed = 300
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	prev := 0
	for i := 0; i < 200 && !w.ecs.Enemies[id].ReachedEnd; i++ {
		ms.Update(0.05)
		seg := w.ecs.Paths[id].Segment
		assert.GreaterOrEqual(t, seg, prev)
		prev = seg
	}
	assert.True(t, w.ecs.Enemies[id].ReachedEnd)
	assert.True(t, w.route.Breached(w.ecs.Positions[id].Vec()))
}

func TestPositionalMovementDerivesSegment(t *testing.T) {
	w := newWorld(t)
	west := w.addEnemyWithPolicy(route.Vec{X: 300, Y: 70}, 0, 60, defs.MovementPositional)
	south := w.addEnemyWithPolicy(route.Vec{X: 260, Y: 0}, 0, 60, defs.MovementPositional)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(0.2)

	assert.InDelta(t, 285.0, w.ecs.Positions[west].X, 1e-9)
	assert.Equal(t, 0, w.ecs.Paths[west].Segment)

	assert.InDelta(t, -15.0, w.ecs.Positions[south].Y, 1e-9)
	assert.Equal(t, 1, w.ecs.Paths[south].Segment, "segment is rewritten from position")
	assert.Equal(t, component.AnimWalkDown, w.ecs.Animations[south].State)
}

func TestPositionalMovementOffPathStaysPut(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemyWithPolicy(route.Vec{X: -500, Y: -400}, 5, 60, defs.MovementPositional)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(1)

	assert.Equal(t, route.Vec{X: -500, Y: -400}, w.ecs.Positions[id].Vec())
	assert.Equal(t, component.AnimIdle, w.ecs.Animations[id].State)
}

func TestSwarmSeparatesCloseNeighbours(t *testing.T) {
	w := newWorld(t)
	a := w.addEnemyWithPolicy(route.Vec{X: 500, Y: 70}, 0, 60, defs.MovementSwarm)
	b := w.addEnemyWithPolicy(route.Vec{X: 500, Y: 80}, 0, 60, defs.MovementSwarm)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(0.1)

	pa, pb := w.ecs.Positions[a].Vec(), w.ecs.Positions[b].Vec()
	assert.Greater(t, pa.Dist(pb), 10.0)
	assert.Less(t, pa.X, 500.0)
	assert.Less(t, pb.X, 500.0)
	assert.Less(t, pa.Y, 70.0)
	assert.Greater(t, pb.Y, 80.0)
}

func TestSwarmIgnoresOtherPolicies(t *testing.T) {
	w := newWorld(t)
	a := w.addEnemyWithPolicy(route.Vec{X: 500, Y: 70}, 0, 60, defs.MovementSwarm)
	w.addEnemy(route.Vec{X: 500, Y: 80}, 0, 60)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(0.1)

	assert.InDelta(t, 492.5, w.ecs.Positions[a].X, 1e-9)
	assert.InDelta(t, 70.0, w.ecs.Positions[a].Y, 1e-9)
}

func TestSwarmAdvancesAtWaypoint(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemyWithPolicy(route.Vec{X: 263, Y: 70}, 0, 60, defs.MovementSwarm)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)

	ms.Update(0.1)

	assert.Equal(t, 1, w.ecs.Paths[id].Segment)
	assert.InDelta(t, 260.0, w.ecs.Positions[id].X, 1e-9)
	assert.InDelta(t, 65.5, w.ecs.Positions[id].Y, 1e-9)
}

func TestUnknownPolicyFallsBackToWaypoint(t *testing.T) {
	w := newWorld(t)
	ms := NewMovementSystem(w.ecs, w.route, w.tuning.Swarm)
	assert.IsType(t, &WaypointPolicy{}, ms.Policy("teleport"))
}

func TestVisualEffectCyclesWalkFrames(t *testing.T) {
	w := newWorld(t)
	id := w.addEnemy(w.route.Spawn, 0, 60)
	w.ecs.Animations[id].State = component.AnimWalkLeft
	vs := NewVisualEffectSystem(w.ecs, nil)

	vs.Update(0.1) // старт клипа
	assert.Equal(t, 0, w.ecs.Animations[id].Frame)

	for i := 1; i <= 7; i++ {
		vs.Update(0.1)
		assert.Equal(t, i, w.ecs.Animations[id].Frame)
	}
	vs.Update(0.1)
	assert.Equal(t, 0, w.ecs.Animations[id].Frame, "wraps after the last frame")

	w.ecs.Animations[id].State = component.AnimWalkDown
	vs.Update(0.1)
	assert.Equal(t, component.AnimWalkDown, w.ecs.Animations[id].Playing)
}
