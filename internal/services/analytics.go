package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TerVRI/golfstats/internal/benchmark"
	"github.com/TerVRI/golfstats/internal/handicap"
	"github.com/TerVRI/golfstats/internal/models"
	"github.com/TerVRI/golfstats/internal/strokesgained"
	"github.com/TerVRI/golfstats/pkg/config"
)

// AnalyticsService ties the benchmark tables, the strokes gained engine,
// and the handicap calculator together for the host application. The engine
// packages underneath stay pure; logging and configuration live here.
type AnalyticsService struct {
	attributor *strokesgained.Attributor
	calculator *handicap.Calculator
	logger     *logrus.Logger
}

// NewAnalyticsService builds the service from configuration: the built-in
// benchmark set (or the configured override file) and the configured
// handicap options.
func NewAnalyticsService(cfg *config.Config, logger *logrus.Logger) (*AnalyticsService, error) {
	benchmarks := benchmark.DefaultSet()
	if cfg.BenchmarkFile != "" {
		loaded, err := benchmark.Load(cfg.BenchmarkFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmark overrides: %w", err)
		}
		benchmarks = loaded
		logger.WithField("file", cfg.BenchmarkFile).Info("Loaded benchmark table overrides")
	}

	calculator := handicap.NewCalculator(handicap.Options{
		BestFraction: cfg.HandicapBestFraction,
		Window:       cfg.HandicapWindow,
	})

	return &AnalyticsService{
		attributor: strokesgained.NewAttributor(benchmarks),
		calculator: calculator,
		logger:     logger,
	}, nil
}

// AnalyzeRound produces the per-hole and round-level strokes gained
// breakdown for one scorecard.
func (s *AnalyticsService) AnalyzeRound(round models.Round) models.RoundAnalysis {
	analysis := models.RoundAnalysis{
		RoundID:    round.ID,
		PlayedAt:   round.PlayedAt,
		TotalScore: round.TotalScore(),
		TotalPar:   round.TotalPar(),
		Holes:      make([]models.HoleAnalysis, 0, len(round.Holes)),
	}

	for _, h := range round.Holes {
		sg := s.attributor.Attribute(h)
		analysis.StrokesGained.Add(sg)
		analysis.Holes = append(analysis.Holes, models.HoleAnalysis{
			HoleNumber:    h.HoleNumber,
			Par:           h.Par,
			Score:         h.Score,
			StrokesGained: sg,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"round_id": round.ID,
		"holes":    len(round.Holes),
		"score":    analysis.TotalScore,
		"sg_total": analysis.StrokesGained.Total,
	}).Debug("Analyzed round")

	return analysis
}

// BuildPlayerReport analyzes a player's full round history: every round's
// strokes gained breakdown, aggregate averages and trend, and the handicap
// index. Rounds are sorted chronologically first so "most recent" means the
// same thing for the trend and the handicap window regardless of input order.
func (s *AnalyticsService) BuildPlayerReport(rounds []models.Round) models.PlayerReport {
	ordered := make([]models.Round, len(rounds))
	copy(ordered, rounds)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].PlayedAt.Before(ordered[j].PlayedAt)
	})

	report := models.PlayerReport{
		GeneratedAt: time.Now().UTC(),
		Rounds:      make([]models.RoundAnalysis, 0, len(ordered)),
	}

	results := make([]models.StrokesGainedResult, 0, len(ordered))
	history := make([]models.RoundHistoryEntry, 0, len(ordered))
	for _, r := range ordered {
		analysis := s.AnalyzeRound(r)
		report.Rounds = append(report.Rounds, analysis)
		results = append(results, analysis.StrokesGained)
		history = append(history, r.HistoryEntry())
	}

	report.Stats = strokesgained.AggregatePlayerStats(results)

	if index := s.calculator.Calculate(history); index != nil {
		display := handicap.Display(*index)
		report.HandicapIndex = index
		report.HandicapDisplay = &display
	}

	s.logger.WithFields(logrus.Fields{
		"rounds":       len(ordered),
		"has_handicap": report.HandicapIndex != nil,
		"weakest":      report.Stats.WeakestCategory,
	}).Info("Built player report")

	return report
}
