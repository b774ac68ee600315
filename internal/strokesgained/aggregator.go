package strokesgained

import (
	"gonum.org/v1/gonum/stat"

	"github.com/TerVRI/golfstats/internal/models"
)

// Rounds in each half of the trend comparison: the mean total of the three
// most recent rounds against the mean of the three before them.
const trendWindow = 3

// AggregateRound sums the per-hole attributions for one round. Partial
// rounds are valid and simply produce a smaller total; nothing is
// normalized to 18 holes.
func (a *Attributor) AggregateRound(holes []models.HoleRecord) models.StrokesGainedResult {
	var round models.StrokesGainedResult
	for _, h := range holes {
		hole := a.Attribute(h)
		round.Add(hole)
	}
	return round
}

// AggregatePlayerStats reduces a chronologically ordered slice of round
// results (oldest first) into per-category averages, a recent-form trend,
// and the weakest category. An empty slice returns the zero value rather
// than dividing by zero.
func AggregatePlayerStats(results []models.StrokesGainedResult) models.PlayerStats {
	stats := models.PlayerStats{Rounds: len(results)}
	if len(results) == 0 {
		return stats
	}

	offTee := make([]float64, len(results))
	approach := make([]float64, len(results))
	aroundGreen := make([]float64, len(results))
	putting := make([]float64, len(results))
	totals := make([]float64, len(results))
	for i, r := range results {
		offTee[i] = r.OffTee
		approach[i] = r.Approach
		aroundGreen[i] = r.AroundGreen
		putting[i] = r.Putting
		totals[i] = r.Total
	}

	stats.Averages = models.StrokesGainedResult{
		OffTee:      stat.Mean(offTee, nil),
		Approach:    stat.Mean(approach, nil),
		AroundGreen: stat.Mean(aroundGreen, nil),
		Putting:     stat.Mean(putting, nil),
		Total:       stat.Mean(totals, nil),
	}

	if len(totals) >= 2*trendWindow {
		recent := totals[len(totals)-trendWindow:]
		previous := totals[len(totals)-2*trendWindow : len(totals)-trendWindow]
		stats.Trend = stat.Mean(recent, nil) - stat.Mean(previous, nil)
		stats.HasTrend = true
	}

	stats.WeakestCategory = weakestCategory(stats.Averages)
	return stats
}

// weakestCategory returns the category with the lowest average. Ties keep
// the earlier entry in the fixed priority order so the answer is
// deterministic.
func weakestCategory(averages models.StrokesGainedResult) models.Category {
	weakest := models.CategoryPriority[0]
	for _, c := range models.CategoryPriority[1:] {
		if averages.ByCategory(c) < averages.ByCategory(weakest) {
			weakest = c
		}
	}
	return weakest
}
