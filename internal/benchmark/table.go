// Package benchmark holds the tour-average expected-strokes reference curves
// and the piecewise-linear lookup used by the strokes gained engine.
//
// Full-swing tables (tee, fairway, rough, bunker, recovery) are keyed in
// yards; the green and putting tables are keyed in feet. Mixing those units
// is the classic way to corrupt strokes gained numbers, so callers must pass
// distances in the table's native unit.
package benchmark

import "sort"

type point struct {
	distance float64
	strokes  float64
}

// Table is an immutable sparse distance to expected-strokes curve. The
// sample points are sorted once at construction so lookups are a binary
// search rather than a per-call re-sort.
type Table struct {
	points []point
}

// NewTable builds a table from sparse samples. Insertion order of the map is
// irrelevant; keys are positive distances, values are expected strokes to
// hole out from that distance.
func NewTable(samples map[int]float64) Table {
	points := make([]point, 0, len(samples))
	for d, s := range samples {
		points = append(points, point{distance: float64(d), strokes: s})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].distance < points[j].distance
	})
	return Table{points: points}
}

// Len returns the number of sample points.
func (t Table) Len() int {
	return len(t.points)
}

// Expected returns the expected strokes to hole out from the given distance.
// Distances at or beyond the table's range extrapolate flat to the nearest
// sample; an exact key hit returns the sample value with no interpolation
// drift; anything in between is linearly interpolated.
//
// The caller is responsible for passing a non-negative distance. An empty
// table returns 0.
func (t Table) Expected(distance float64) float64 {
	n := len(t.points)
	if n == 0 {
		return 0
	}
	if distance <= t.points[0].distance {
		return t.points[0].strokes
	}
	if distance >= t.points[n-1].distance {
		return t.points[n-1].strokes
	}

	// First sample point at or above the requested distance.
	hi := sort.Search(n, func(i int) bool {
		return t.points[i].distance >= distance
	})
	if t.points[hi].distance == distance {
		return t.points[hi].strokes
	}
	lo := hi - 1

	frac := (distance - t.points[lo].distance) / (t.points[hi].distance - t.points[lo].distance)
	return t.points[lo].strokes + frac*(t.points[hi].strokes-t.points[lo].strokes)
}
