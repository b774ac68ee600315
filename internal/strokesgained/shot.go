package strokesgained

import "github.com/TerVRI/golfstats/internal/benchmark"

// Shot describes the ball's position before a stroke. Distance is in the
// lie's native unit: yards for full-swing lies, feet on or around the green.
type Shot struct {
	Lie      benchmark.Lie `json:"lie"`
	Distance float64       `json:"distance"`
}

// ShotGained computes classic per-shot strokes gained for callers that do
// have shot-by-shot data: the expected strokes from the starting position,
// minus the expected strokes from where the ball ended up, minus the one
// stroke spent. A nil next means the shot was holed.
func (a *Attributor) ShotGained(from Shot, next *Shot) float64 {
	before := a.benchmarks.Expected(from.Lie, from.Distance)
	if next == nil {
		return before - 1
	}
	after := a.benchmarks.Expected(next.Lie, next.Distance)
	return before - after - 1
}

// HoleShotsGained sums per-shot strokes gained over a full hole, assuming
// the final shot holed out. The total telescopes to the expected strokes
// from the opening position minus the strokes actually taken.
func (a *Attributor) HoleShotsGained(shots []Shot) float64 {
	total := 0.0
	for i, s := range shots {
		var next *Shot
		if i+1 < len(shots) {
			next = &shots[i+1]
		}
		total += a.ShotGained(s, next)
	}
	return total
}
