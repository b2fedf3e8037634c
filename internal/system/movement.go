// internal/system/movement.go
package system

import (
	"slices"

	"go-breakpoint-defense/internal/component"
	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/internal/entity"
	"go-breakpoint-defense/internal/types"
	"go-breakpoint-defense/pkg/route"
)

// Mover — снимок одного врага, над которым работает политика движения.
type Mover struct {
	ID         types.EntityID
	Pos        route.Vec
	Segment    int
	Speed      float64
	Policy     defs.MovementKind
	ReachedEnd bool
	Heading    route.Vec // направление последнего шага, для анимации
}

// MovementPolicy moves one enemy by distance. neighbours is the state of every
// enemy before the pass started and must not be modified.
type MovementPolicy interface {
	Step(m *Mover, distance float64, neighbours []Mover)
}

// MovementSystem обновляет позиции врагов
type MovementSystem struct {
	ecs      *entity.ECS
	policies map[defs.MovementKind]MovementPolicy
	fallback MovementPolicy
}

func NewMovementSystem(ecs *entity.ECS, r *route.Route, swarm defs.SwarmTuning) *MovementSystem {
	waypoint := &WaypointPolicy{Route: r}
	return &MovementSystem{
		ecs: ecs,
		policies: map[defs.MovementKind]MovementPolicy{
			defs.MovementWaypoint:   waypoint,
			defs.MovementPositional: &PositionalPolicy{Route: r},
			defs.MovementSwarm:      &SwarmPolicy{Route: r, Tuning: swarm},
		},
		fallback: waypoint,
	}
}

// Policy returns the policy registered for kind, or the waypoint policy.
func (s *MovementSystem) Policy(kind defs.MovementKind) MovementPolicy {
	if p, ok := s.policies[kind]; ok {
		return p
	}
	return s.fallback
}

func (s *MovementSystem) Update(deltaTime float64) {
	ids := entity.SortedIDs(s.ecs.Enemies)
	movers := make([]Mover, 0, len(ids))
	for _, id := range ids {
		pos, hasPos := s.ecs.Positions[id]
		vel, hasVel := s.ecs.Velocities[id]
		path, hasPath := s.ecs.Paths[id]
		if !hasPos || !hasVel || !hasPath {
			continue
		}
		movers = append(movers, Mover{
			ID:         id,
			Pos:        pos.Vec(),
			Segment:    path.Segment,
			Speed:      vel.Speed,
			Policy:     path.Policy,
			ReachedEnd: s.ecs.Enemies[id].ReachedEnd,
		})
	}
	snapshot := slices.Clone(movers)

	for i := range movers {
		m := &movers[i]
		if m.ReachedEnd {
			continue
		}
		s.Policy(m.Policy).Step(m, m.Speed*deltaTime, snapshot)

		*s.ecs.Positions[m.ID] = component.PositionOf(m.Pos)
		s.ecs.Paths[m.ID].Segment = m.Segment
		s.ecs.Enemies[m.ID].ReachedEnd = m.ReachedEnd
		if anim, ok := s.ecs.Animations[m.ID]; ok {
			anim.State = animStateFor(m.Heading)
		}
	}
}
