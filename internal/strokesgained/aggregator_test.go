package strokesgained

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"

	"github.com/TerVRI/golfstats/internal/models"
)

func TestAggregateRound_Additivity(t *testing.T) {
	a := newTestAttributor()
	holes := []models.HoleRecord{
		{HoleNumber: 1, Par: 4, Score: 5, Putts: 2, FairwayHit: boolPtr(false), ApproachDistance: floatPtr(165)},
		{HoleNumber: 2, Par: 3, Score: 3, Putts: 2, GreenInRegulation: true, FirstPuttDistance: floatPtr(25)},
		{HoleNumber: 3, Par: 5, Score: 4, Putts: 1, FairwayHit: boolPtr(true), GreenInRegulation: true, ApproachDistance: floatPtr(230), FirstPuttDistance: floatPtr(12)},
	}

	round := a.AggregateRound(holes)

	var want models.StrokesGainedResult
	for _, h := range holes {
		want.Add(a.Attribute(h))
	}

	if diff := cmp.Diff(want, round, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("round aggregation mismatch (-want +got):\n%s", diff)
	}
	sum := round.OffTee + round.Approach + round.AroundGreen + round.Putting
	assert.InDelta(t, round.Total, sum, 1e-9)
}

func TestAggregateRound_PartialRoundsAllowed(t *testing.T) {
	a := newTestAttributor()
	nine := make([]models.HoleRecord, 9)
	for i := range nine {
		nine[i] = models.HoleRecord{HoleNumber: i + 1, Par: 4, Score: 4, Putts: 2}
	}

	round := a.AggregateRound(nine)

	// Nine holes sum to nine per-hole deltas, no normalization to 18.
	per := a.Attribute(nine[0])
	assert.InDelta(t, 9*per.Total, round.Total, 1e-9)

	assert.Equal(t, models.StrokesGainedResult{}, a.AggregateRound(nil), "empty round sums to zero")
}

func TestAggregatePlayerStats_Averages(t *testing.T) {
	results := []models.StrokesGainedResult{
		{OffTee: 0.2, Approach: -1.0, AroundGreen: 0.4, Putting: 0.8, Total: 0.4},
		{OffTee: -0.4, Approach: 0.6, AroundGreen: -0.8, Putting: 0.2, Total: -0.4},
	}

	stats := AggregatePlayerStats(results)

	assert.Equal(t, 2, stats.Rounds)
	want := models.StrokesGainedResult{OffTee: -0.1, Approach: -0.2, AroundGreen: -0.2, Putting: 0.5, Total: 0.0}
	if diff := cmp.Diff(want, stats.Averages, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("averages mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, stats.HasTrend, "two rounds are not enough for a trend")
	assert.Equal(t, models.CategoryApproach, stats.WeakestCategory)
}

func TestAggregatePlayerStats_EmptyInput(t *testing.T) {
	stats := AggregatePlayerStats(nil)

	assert.Equal(t, 0, stats.Rounds)
	assert.Equal(t, models.StrokesGainedResult{}, stats.Averages)
	assert.False(t, stats.HasTrend)
}

func TestAggregatePlayerStats_Trend(t *testing.T) {
	// Chronological totals: older three average -2, recent three average +1.
	totals := []float64{-3, -2, -1, 0, 1, 2}
	results := make([]models.StrokesGainedResult, len(totals))
	for i, total := range totals {
		results[i] = models.StrokesGainedResult{Putting: total, Total: total}
	}

	stats := AggregatePlayerStats(results)

	assert.True(t, stats.HasTrend)
	assert.InDelta(t, 3.0, stats.Trend, 1e-9, "recent mean 1 minus previous mean -2")

	// One round short of two full windows: no trend.
	short := AggregatePlayerStats(results[:5])
	assert.False(t, short.HasTrend)
	assert.Zero(t, short.Trend)
}

func TestAggregatePlayerStats_WeakestCategoryTieBreak(t *testing.T) {
	// Off-the-tee and putting tie for worst; the fixed priority order keeps
	// off-the-tee.
	results := []models.StrokesGainedResult{
		{OffTee: -1.0, Approach: 0, AroundGreen: 0.5, Putting: -1.0, Total: -1.5},
	}

	stats := AggregatePlayerStats(results)
	assert.Equal(t, models.CategoryOffTee, stats.WeakestCategory)
}
