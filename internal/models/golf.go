package models

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies one of the four strokes gained buckets.
type Category string

const (
	CategoryOffTee      Category = "off_the_tee"
	CategoryApproach    Category = "approach"
	CategoryAroundGreen Category = "around_the_green"
	CategoryPutting     Category = "putting"
)

// CategoryPriority is the fixed order used to break ties when ranking
// categories (weakest-category reporting must be deterministic).
var CategoryPriority = []Category{
	CategoryOffTee,
	CategoryApproach,
	CategoryAroundGreen,
	CategoryPutting,
}

// HoleRecord represents the raw scorecard data captured for a single hole.
// Optional fields use pointers: nil means the golfer did not record the
// value (FairwayHit is also nil on par 3s, where there is no fairway to hit).
//
// Units: ApproachDistance is yards, FirstPuttDistance is feet.
//
// The engine assumes structurally valid input (par 3-5, score >= 1,
// putts <= score); validation belongs to whoever builds the record.
type HoleRecord struct {
	HoleNumber        int      `json:"hole_number"`
	Par               int      `json:"par"`
	Score             int      `json:"score"`
	Putts             int      `json:"putts"`
	FairwayHit        *bool    `json:"fairway_hit,omitempty"`
	GreenInRegulation bool     `json:"green_in_regulation"`
	ApproachDistance  *float64 `json:"approach_distance,omitempty"`
	FirstPuttDistance *float64 `json:"first_putt_distance,omitempty"`
	Penalties         int      `json:"penalties"`
}

// StrokesGainedResult holds the four-way strokes gained decomposition for a
// hole or, summed, for a round. Positive values beat the tour baseline.
// Total always equals the sum of the four categories.
type StrokesGainedResult struct {
	OffTee      float64 `json:"off_the_tee"`
	Approach    float64 `json:"approach"`
	AroundGreen float64 `json:"around_the_green"`
	Putting     float64 `json:"putting"`
	Total       float64 `json:"total"`
}

// ByCategory returns the value for a single category.
func (r StrokesGainedResult) ByCategory(c Category) float64 {
	switch c {
	case CategoryOffTee:
		return r.OffTee
	case CategoryApproach:
		return r.Approach
	case CategoryAroundGreen:
		return r.AroundGreen
	case CategoryPutting:
		return r.Putting
	}
	return 0
}

// Add accumulates another result into r, keeping Total in sync.
func (r *StrokesGainedResult) Add(other StrokesGainedResult) {
	r.OffTee += other.OffTee
	r.Approach += other.Approach
	r.AroundGreen += other.AroundGreen
	r.Putting += other.Putting
	r.Total += other.Total
}

// RoundHistoryEntry is the handicap input for one completed round. Course
// rating and slope rating come from the course's tee data; both must be
// present for the round to count toward the index.
type RoundHistoryEntry struct {
	TotalScore   int       `json:"total_score"`
	CourseRating *float64  `json:"course_rating,omitempty"`
	SlopeRating  *int      `json:"slope_rating,omitempty"`
	PlayedAt     time.Time `json:"played_at"`
}

// Qualifying reports whether the entry can produce a score differential.
// A zero slope would divide by zero, so it is treated as not qualifying.
func (e RoundHistoryEntry) Qualifying() bool {
	return e.CourseRating != nil && e.SlopeRating != nil && *e.SlopeRating != 0
}

// Round is the scorecard envelope supplied by the host application: an
// ordered list of up to 18 hole records plus the course metadata needed for
// handicap calculation.
type Round struct {
	ID           uuid.UUID    `json:"id"`
	CourseName   string       `json:"course_name,omitempty"`
	CourseRating *float64     `json:"course_rating,omitempty"`
	SlopeRating  *int         `json:"slope_rating,omitempty"`
	PlayedAt     time.Time    `json:"played_at"`
	Holes        []HoleRecord `json:"holes"`
}

// TotalScore sums the hole scores. Partial rounds simply sum fewer holes.
func (r Round) TotalScore() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Score
	}
	return total
}

// TotalPar sums the hole pars.
func (r Round) TotalPar() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Par
	}
	return total
}

// HistoryEntry projects the round into its handicap input form.
func (r Round) HistoryEntry() RoundHistoryEntry {
	return RoundHistoryEntry{
		TotalScore:   r.TotalScore(),
		CourseRating: r.CourseRating,
		SlopeRating:  r.SlopeRating,
		PlayedAt:     r.PlayedAt,
	}
}

// PlayerStats represents multi-round aggregate performance.
type PlayerStats struct {
	Rounds          int                 `json:"rounds"`
	Averages        StrokesGainedResult `json:"averages"`
	Trend           float64             `json:"trend"`
	HasTrend        bool                `json:"has_trend"`
	WeakestCategory Category            `json:"weakest_category"`
}

// HoleAnalysis pairs a hole number with its strokes gained breakdown.
type HoleAnalysis struct {
	HoleNumber    int                 `json:"hole_number"`
	Par           int                 `json:"par"`
	Score         int                 `json:"score"`
	StrokesGained StrokesGainedResult `json:"strokes_gained"`
}

// RoundAnalysis is the per-round analytics output.
type RoundAnalysis struct {
	RoundID       uuid.UUID           `json:"round_id"`
	PlayedAt      time.Time           `json:"played_at"`
	TotalScore    int                 `json:"total_score"`
	TotalPar      int                 `json:"total_par"`
	StrokesGained StrokesGainedResult `json:"strokes_gained"`
	Holes         []HoleAnalysis      `json:"holes"`
}

// PlayerReport bundles everything the engine derives from a player's round
// history: per-round breakdowns, aggregate stats, and the handicap index.
// HandicapIndex is nil when fewer than three qualifying rounds exist; the
// consumer should render that as "not yet available", not as a failure.
type PlayerReport struct {
	GeneratedAt     time.Time       `json:"generated_at"`
	Rounds          []RoundAnalysis `json:"rounds"`
	Stats           PlayerStats     `json:"stats"`
	HandicapIndex   *float64        `json:"handicap_index,omitempty"`
	HandicapDisplay *float64        `json:"handicap_display,omitempty"`
}
