// Package handicap computes a playing-handicap index from a player's score
// history using the World Handicap System differential formula.
//
// The best-fraction rule historically drifted across clients (40% in one,
// 50% in another); this package is the single home for the formula, with
// 40% as the WHS-aligned default and the fraction exposed as an option so a
// product decision is a setting, not a fork.
package handicap

import (
	"math"
	"sort"

	"github.com/TerVRI/golfstats/internal/models"
)

const (
	// DefaultBestFraction selects the best 40% of recent differentials.
	DefaultBestFraction = 0.40

	// DefaultWindow caps the history at the 20 most recent qualifying rounds.
	DefaultWindow = 20

	// WHS excellence adjustment applied to the averaged differentials.
	indexMultiplier = 0.96

	// Standard slope; a course of this slope leaves differentials unscaled.
	slopeBaseline = 113.0

	// Below this many qualifying rounds there is no index; callers render
	// the nil result as "not yet available".
	minQualifyingRounds = 3
)

// Options tunes the calculator. Zero values fall back to the defaults.
type Options struct {
	BestFraction float64 `json:"best_fraction"`
	Window       int     `json:"window"`
}

// Calculator computes handicap indexes. Stateless and safe for concurrent use.
type Calculator struct {
	bestFraction float64
	window       int
}

// NewCalculator creates a calculator with the given options.
func NewCalculator(opts Options) *Calculator {
	c := &Calculator{
		bestFraction: opts.BestFraction,
		window:       opts.Window,
	}
	if c.bestFraction <= 0 {
		c.bestFraction = DefaultBestFraction
	}
	if c.window <= 0 {
		c.window = DefaultWindow
	}
	return c
}

// Calculate converts a round history into a handicap index. It returns nil
// when fewer than three qualifying rounds exist; that is the documented
// insufficient-data rule, not an error. The returned value keeps full
// precision; use Display for the one-decimal presentation form.
func (c *Calculator) Calculate(history []models.RoundHistoryEntry) *float64 {
	qualifying := make([]models.RoundHistoryEntry, 0, len(history))
	for _, e := range history {
		if e.Qualifying() {
			qualifying = append(qualifying, e)
		}
	}
	if len(qualifying) < minQualifyingRounds {
		return nil
	}

	// Most recent rounds first, then cap at the window.
	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].PlayedAt.After(qualifying[j].PlayedAt)
	})
	if len(qualifying) > c.window {
		qualifying = qualifying[:c.window]
	}

	differentials := make([]float64, len(qualifying))
	for i, e := range qualifying {
		differentials[i] = Differential(float64(e.TotalScore), *e.CourseRating, *e.SlopeRating)
	}
	sort.Float64s(differentials)

	best := int(math.Floor(float64(len(differentials)) * c.bestFraction))
	if best < 1 {
		best = 1
	}

	sum := 0.0
	for _, d := range differentials[:best] {
		sum += d
	}
	index := sum / float64(best) * indexMultiplier
	return &index
}

// Differential computes a single round's score differential, the building
// block of the index: (score - rating) x 113 / slope.
func Differential(score, courseRating float64, slopeRating int) float64 {
	return (score - courseRating) * slopeBaseline / float64(slopeRating)
}

// Display rounds an index to one decimal place for presentation. Downstream
// math should keep the full-precision value from Calculate.
func Display(index float64) float64 {
	return math.Round(index*10) / 10
}
