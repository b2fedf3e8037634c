// internal/system/policies.go
package system

import (
	"math"

	"go-breakpoint-defense/internal/defs"
	"go-breakpoint-defense/pkg/route"
)

// WaypointPolicy держит явный индекс сегмента и переключает его по прибытии
// в путевую точку. Индекс только растёт.
type WaypointPolicy struct {
	Route *route.Route
}

func (p *WaypointPolicy) Step(m *Mover, distance float64, _ []Mover) {
	m.Pos, m.Segment, m.ReachedEnd = p.Route.Advance(m.Pos, m.Segment, distance)
	m.Heading = p.Route.LegDirection(m.Segment)
}

// PositionalPolicy каждый тик заново выводит сегмент из координат по
// правилам route.Classify. Вне правил враг стоит на месте.
type PositionalPolicy struct {
	Route *route.Route
}

func (p *PositionalPolicy) Step(m *Mover, distance float64, _ []Mover) {
	leg, ok := p.Route.Classify(m.Pos)
	if !ok {
		m.Heading = route.Vec{}
		return
	}
	m.Pos = m.Pos.Add(leg.Direction.Scale(distance))
	m.Segment = leg.Segment
	m.Heading = leg.Direction
}

// SwarmPolicy ведёт врага к текущей путевой точке и расталкивает соседей
// той же политики, подошедших ближе MinSeparation.
type SwarmPolicy struct {
	Route  *route.Route
	Tuning defs.SwarmTuning
}

func (p *SwarmPolicy) Step(m *Mover, distance float64, neighbours []Mover) {
	target := p.Route.Waypoint(m.Segment)
	toTarget := target.Sub(m.Pos)

	// у самой точки расталкивание отключается, иначе враг кружит вокруг неё
	if toTarget.Len() <= math.Max(distance, p.Tuning.ArrivalRadius) {
		m.Pos, m.Segment, m.ReachedEnd = p.Route.Advance(m.Pos, m.Segment, distance)
		m.Heading = p.Route.LegDirection(m.Segment)
		return
	}

	dir := toTarget.Normalize().Add(p.separation(m, neighbours).Scale(p.Tuning.Strength)).Normalize()
	if dir.IsZero() {
		dir = toTarget.Normalize()
	}
	m.Pos = m.Pos.Add(dir.Scale(distance))
	m.Heading = dir
}

func (p *SwarmPolicy) separation(m *Mover, neighbours []Mover) route.Vec {
	var push route.Vec
	minSep := p.Tuning.MinSeparation
	if minSep <= 0 {
		return push
	}
	for _, n := range neighbours {
		if n.ID == m.ID || n.Policy != defs.MovementSwarm || n.ReachedEnd {
			continue
		}
		away := m.Pos.Sub(n.Pos)
		d := away.Len()
		if d == 0 || d >= minSep {
			continue
		}
		push = push.Add(away.Normalize().Scale((minSep - d) / minSep))
	}
	return push
}
