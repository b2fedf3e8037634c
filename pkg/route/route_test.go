package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFollowsRulePriority(t *testing.T) {
	r := Default()

	cases := []struct {
		name string
		pos  Vec
		seg  int
		dir  Vec
	}{
		{"spawn heads west", Vec{610, 70}, 0, West},
		{"first turn heads south", Vec{260, 70}, 1, South},
		{"bottom run heads west", Vec{260, -205}, 2, West},
		{"bottom run mid", Vec{0, -210}, 2, West},
		{"climb heads north", Vec{-231, -100}, 3, North},
		{"top run heads west", Vec{-300, 70}, 4, West},
		{"final drop heads south", Vec{-456, 0}, 5, South},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			leg, ok := r.Classify(tc.pos)
			require.True(t, ok)
			assert.Equal(t, tc.seg, leg.Segment)
			assert.Equal(t, tc.dir, leg.Direction)
		})
	}
}

func TestClassifyPastTheExit(t *testing.T) {
	r := Default()
	_, ok := r.Classify(Vec{-455, -376})
	assert.False(t, ok)
}

func TestClassifyRequiresReferenceShape(t *testing.T) {
	r := New(Vec{}, Vec{X: 10})
	_, ok := r.Classify(Vec{X: 5})
	assert.False(t, ok)
}

func TestAdvanceCarriesLeftoverAcrossWaypoint(t *testing.T) {
	r := Default()

	// 350 до первого поворота, ещё 10 уходят на спуск.
	p, seg, end := r.Advance(r.Spawn, 0, 360)
	assert.False(t, end)
	assert.Equal(t, 1, seg)
	assert.InDelta(t, 260, p.X, 1e-9)
	assert.InDelta(t, 60, p.Y, 1e-9)
}

func TestAdvanceIsForwardOnly(t *testing.T) {
	r := Default()
	p := r.Spawn
	seg := 0
	prev := seg
	for i := 0; i < 500; i++ {
		var end bool
		p, seg, end = r.Advance(p, seg, 7.3)
		require.GreaterOrEqual(t, seg, prev)
		prev = seg
		if end {
			break
		}
	}
	assert.Equal(t, r.Last(), seg)
	assert.Equal(t, r.Waypoints[r.Last()], p)
	assert.True(t, r.Breached(p))
}

func TestAdvanceZeroDistanceStaysPut(t *testing.T) {
	r := Default()
	p, seg, end := r.Advance(Vec{400, 70}, 0, 0)
	assert.Equal(t, Vec{400, 70}, p)
	assert.Equal(t, 0, seg)
	assert.False(t, end)
}

func TestBreachedThreshold(t *testing.T) {
	r := Default()
	assert.False(t, r.Breached(Vec{-455, -374.9}))
	assert.True(t, r.Breached(Vec{-455, -375}))
}

func TestLegDirection(t *testing.T) {
	r := Default()
	assert.Equal(t, West, r.LegDirection(0))
	assert.Equal(t, South, r.LegDirection(1))
	assert.Equal(t, North, r.LegDirection(3))
	assert.Equal(t, r.Spawn, r.LegStart(0))
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalize())
	assert.InDelta(t, 1.0, Vec{3, 4}.Normalize().Len(), 1e-12)
}
