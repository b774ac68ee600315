// Package strokesgained decomposes scorecard data into the four PGA Tour
// strokes gained categories: off the tee, approach, around the green, and
// putting.
//
// Full shot-by-shot data is rarely available from a hand-kept scorecard, so
// the hole-level attribution works from whatever signals were recorded (par,
// score, putts, fairway/green outcomes, at most two distances) and closes
// the books with a residual: the around-the-green bucket absorbs whatever
// part of the score-vs-baseline delta the other three estimates did not
// claim. That makes the four categories always sum exactly to the hole's
// strokes vs baseline, no matter which optional fields are missing.
package strokesgained

import (
	"github.com/TerVRI/golfstats/internal/benchmark"
	"github.com/TerVRI/golfstats/internal/models"
)

const (
	// Expected putts per hole when the first-putt distance was not recorded.
	expectedPuttsFallback = 1.8

	// Fixed tee-shot differential when the fairway outcome is known.
	fairwayHitValue    = 0.1
	fairwayMissedValue = -0.1
)

// Tour-average score from the tee for a hole of the given par.
var expectedTotalByPar = map[int]float64{
	3: 2.90,
	4: 3.95,
	5: 5.05,
}

// ExpectedTotalForPar returns the tour baseline score for a hole of the
// given par. Pars outside 3-5 are out of contract; they fall back to the par
// itself so the attribution stays numerically total.
func ExpectedTotalForPar(par int) float64 {
	if expected, ok := expectedTotalByPar[par]; ok {
		return expected
	}
	return float64(par)
}

// Attributor turns hole records into strokes gained breakdowns against a
// fixed benchmark set. It is stateless apart from the read-only benchmarks
// and safe for concurrent use.
type Attributor struct {
	benchmarks *benchmark.Set
}

// NewAttributor creates an attributor over the given benchmark set.
func NewAttributor(benchmarks *benchmark.Set) *Attributor {
	return &Attributor{benchmarks: benchmarks}
}

// Attribute decomposes one hole's score-vs-baseline delta across the four
// categories. It never fails for a structurally valid record: missing
// optional fields fall back to documented constants, and the residual
// closure guarantees the categories reconcile to the baseline delta.
func (a *Attributor) Attribute(h models.HoleRecord) models.StrokesGainedResult {
	strokesVsBaseline := ExpectedTotalForPar(h.Par) - float64(h.Score)

	putting := a.puttingGained(h)
	offTee := offTeeGained(h)
	approach := a.approachGained(h)

	// Residual: whatever the three estimates above did not account for.
	aroundGreen := strokesVsBaseline - putting - offTee - approach

	return models.StrokesGainedResult{
		OffTee:      offTee,
		Approach:    approach,
		AroundGreen: aroundGreen,
		Putting:     putting,
		Total:       strokesVsBaseline,
	}
}

// puttingGained benchmarks the putts taken against the expected putts from
// the first-putt distance, or against the flat tour average when the
// distance was not recorded. Zero putts (holed from off the green) is not
// special-cased: the delta becomes the full expected-putts value.
func (a *Attributor) puttingGained(h models.HoleRecord) float64 {
	expected := expectedPuttsFallback
	if h.FirstPuttDistance != nil {
		expected = a.benchmarks.Expected(benchmark.LiePutting, *h.FirstPuttDistance)
	}
	return expected - float64(h.Putts)
}

// offTeeGained applies the fixed tee-shot differential. Par 3s never score
// a tee component; the tee shot there is the approach.
func offTeeGained(h models.HoleRecord) float64 {
	if h.Par < 4 || h.FairwayHit == nil {
		return 0
	}
	if *h.FairwayHit {
		return fairwayHitValue
	}
	return fairwayMissedValue
}

// approachGained benchmarks the shots used to reach the green from the
// approach distance. The lie is fairway or rough per the recorded fairway
// outcome (unknown reads as fairway), and the shots used are inferred from
// the green-in-regulation flag: 1 if the green was hit, 2 otherwise.
func (a *Attributor) approachGained(h models.HoleRecord) float64 {
	if h.ApproachDistance == nil {
		return 0
	}

	lie := benchmark.LieFairway
	if h.FairwayHit != nil && !*h.FairwayHit {
		lie = benchmark.LieRough
	}

	shotsToGreen := 2.0
	if h.GreenInRegulation {
		shotsToGreen = 1.0
	}

	return a.benchmarks.Expected(lie, *h.ApproachDistance) - shotsToGreen
}
