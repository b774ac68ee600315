package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
)

// Lie identifies the ball position a reference curve describes.
type Lie string

const (
	LieTee      Lie = "tee"
	LieFairway  Lie = "fairway"
	LieRough    Lie = "rough"
	LieBunker   Lie = "bunker"
	LieRecovery Lie = "recovery"
	LieGreen    Lie = "green"
	LiePutting  Lie = "putting"
)

// Lies lists every supported lie category.
var Lies = []Lie{LieTee, LieFairway, LieRough, LieBunker, LieRecovery, LieGreen, LiePutting}

// Set bundles the seven lie tables. It is read-only after construction and
// safe to share across goroutines.
type Set struct {
	tables map[Lie]Table
}

// NewSet builds a set from per-lie samples. Lies missing from the input get
// an empty table.
func NewSet(samples map[Lie]map[int]float64) *Set {
	tables := make(map[Lie]Table, len(Lies))
	for _, lie := range Lies {
		tables[lie] = NewTable(samples[lie])
	}
	return &Set{tables: tables}
}

// Table returns the curve for a lie. Unknown lies return an empty table.
func (s *Set) Table(lie Lie) Table {
	return s.tables[lie]
}

// Expected is shorthand for Table(lie).Expected(distance).
func (s *Set) Expected(lie Lie, distance float64) float64 {
	return s.tables[lie].Expected(distance)
}

// Load reads a JSON file of per-lie sample overrides and merges it over the
// default tables. The file shape is {"fairway": {"100": 2.87, ...}, ...};
// lies absent from the file keep their defaults, lies present replace the
// default curve wholesale.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file: %w", err)
	}

	var overrides map[Lie]map[int]float64
	if err := json.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark file: %w", err)
	}

	merged := make(map[Lie]map[int]float64, len(Lies))
	for _, lie := range Lies {
		merged[lie] = defaultTables[lie]
	}
	for lie, samples := range overrides {
		if _, ok := merged[lie]; !ok {
			return nil, fmt.Errorf("unknown lie category %q in benchmark file", lie)
		}
		if len(samples) == 0 {
			return nil, fmt.Errorf("empty table for lie category %q in benchmark file", lie)
		}
		merged[lie] = samples
	}

	return NewSet(merged), nil
}
