package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/TerVRI/golfstats/internal/models"
	"github.com/TerVRI/golfstats/internal/services"
	"github.com/TerVRI/golfstats/pkg/config"
	"github.com/TerVRI/golfstats/pkg/logger"
)

// scorecardFile is the input shape: a player's round history as exported by
// the host application.
type scorecardFile struct {
	Player string         `json:"player,omitempty"`
	Rounds []models.Round `json:"rounds"`
}

func main() {
	output := flag.String("o", "", "write the report to this file instead of stdout")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: golfstats [-o report.json] <scorecard.json>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	svc, err := services.NewAnalyticsService(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize analytics: %v", err)
	}

	input := flag.Arg(0)
	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("Failed to read scorecard file: %v", err)
	}

	var scorecard scorecardFile
	if err := json.Unmarshal(data, &scorecard); err != nil {
		log.Fatalf("Failed to parse scorecard file: %v", err)
	}

	// Rounds exported without an ID get one so report entries stay addressable.
	for i := range scorecard.Rounds {
		if scorecard.Rounds[i].ID == uuid.Nil {
			scorecard.Rounds[i].ID = uuid.New()
		}
	}

	logger.WithPlayerContext(scorecard.Player, len(scorecard.Rounds)).Info("Analyzing round history")

	report := svc.BuildPlayerReport(scorecard.Rounds)

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	out = append(out, '\n')

	if *output == "" {
		if _, err := os.Stdout.Write(out); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
		return
	}

	if err := os.WriteFile(*output, out, 0o644); err != nil {
		log.Fatalf("Failed to write report file: %v", err)
	}
	log.WithField("file", *output).Info("Report written")
}
