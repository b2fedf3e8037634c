// pkg/route/route.go
package route

import "fmt"

// ClassifiedWaypoints — количество точек поворота, под которое написаны позиционные правила Classify.
const ClassifiedWaypoints = 6

// Route is the fixed enemy path: a spawn point followed by the ordered
// waypoints (breakpoints) where enemies turn. Segment k is the leg that ends
// at Waypoints[k].
type Route struct {
	Spawn     Vec
	Waypoints []Vec
}

// Leg is the result of positional classification.
type Leg struct {
	Segment   int
	Direction Vec
}

// New builds a route. It panics on an empty waypoint list since the path is a
// compile-time constant of the game, not runtime input.
func New(spawn Vec, waypoints ...Vec) *Route {
	if len(waypoints) == 0 {
		panic("route: at least one waypoint is required")
	}
	wps := make([]Vec, len(waypoints))
	copy(wps, waypoints)
	return &Route{Spawn: spawn, Waypoints: wps}
}

// Default returns the reference six-turn path.
func Default() *Route {
	const spawnY = 70.0
	return New(
		Vec{X: 610, Y: spawnY},
		Vec{X: 260, Y: spawnY},
		Vec{X: 260, Y: -205},
		Vec{X: -230, Y: -205},
		Vec{X: -230, Y: spawnY},
		Vec{X: -455, Y: spawnY},
		Vec{X: -455, Y: -375},
	)
}

// Last is the index of the terminal waypoint.
func (r *Route) Last() int {
	return len(r.Waypoints) - 1
}

// Waypoint returns the waypoint for a segment index, clamped to the path.
func (r *Route) Waypoint(segment int) Vec {
	if segment < 0 {
		segment = 0
	}
	if segment > r.Last() {
		segment = r.Last()
	}
	return r.Waypoints[segment]
}

// LegStart returns the point a segment starts from.
func (r *Route) LegStart(segment int) Vec {
	if segment <= 0 {
		return r.Spawn
	}
	return r.Waypoint(segment - 1)
}

// LegDirection is the unit direction of travel along a segment.
func (r *Route) LegDirection(segment int) Vec {
	return r.Waypoint(segment).Sub(r.LegStart(segment)).Normalize()
}

// Breached reports whether a position has passed the terminal waypoint's threshold.
func (r *Route) Breached(p Vec) bool {
	return p.Y <= r.Waypoints[r.Last()].Y
}

// Advance moves p forward along the path by distance, starting on the given
// segment. Arrival at a waypoint snaps to it and carries the leftover distance
// into the next leg, so the segment index only ever grows. reachedEnd is true
// once the terminal waypoint has been reached; the segment then stays on the
// last index.
func (r *Route) Advance(p Vec, segment int, distance float64) (Vec, int, bool) {
	last := r.Last()
	if segment < 0 {
		segment = 0
	}
	if segment > last {
		segment = last
	}
	for {
		target := r.Waypoints[segment]
		remaining := p.Dist(target)
		if remaining > distance {
			return p.Add(target.Sub(p).Scale(distance / remaining)), segment, false
		}
		p = target
		distance -= remaining
		if segment == last {
			return p, segment, true
		}
		segment++
	}
}

// Classify re-derives the leg from a raw position using axis-aligned
// thresholds taken from the waypoints. The rules are checked in a fixed
// priority order and the first match wins, so a position sitting on a
// threshold is classified by the earlier rule. ok is false when no rule
// applies (past the end of the path, or knocked off it).
func (r *Route) Classify(p Vec) (Leg, bool) {
	if len(r.Waypoints) != ClassifiedWaypoints {
		return Leg{}, false
	}
	w := r.Waypoints
	switch {
	// 1. запад до первого поворота
	case p.X > w[0].X:
		return Leg{Segment: 0, Direction: West}, true
	// 2. юг
	case p.X <= w[0].X && p.X > w[2].X && p.Y > w[1].Y:
		return Leg{Segment: 1, Direction: South}, true
	// 3. запад
	case p.Y <= w[1].Y && p.X >= w[2].X:
		return Leg{Segment: 2, Direction: West}, true
	// 4. север
	case p.Y < w[3].Y && p.X <= w[2].X && p.X > w[4].X:
		return Leg{Segment: 3, Direction: North}, true
	// 5. запад
	case p.Y >= w[3].Y && p.X >= w[4].X:
		return Leg{Segment: 4, Direction: West}, true
	// 6. юг к выходу
	case p.Y > w[5].Y && p.X <= w[4].X:
		return Leg{Segment: 5, Direction: South}, true
	}
	return Leg{}, false
}

func (l Leg) String() string {
	return fmt.Sprintf("leg %d (%.0f,%.0f)", l.Segment, l.Direction.X, l.Direction.Y)
}
