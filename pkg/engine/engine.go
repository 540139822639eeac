// Package engine wires the analysis stages into a single pipeline and
// produces one report per buffer. Stages run in a fixed order because the
// later stages consume the identification result of the first.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/entropy"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/identify"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/payload"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/polyglot"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/stego"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/threat"
)

// Report is the complete analysis outcome for one buffer.
type Report struct {
	ID       string        `json:"id"`
	Filename string        `json:"filename"`
	Size     int           `json:"size"`
	Digest   string        `json:"digest"`
	Duration time.Duration `json:"duration"`

	Identification models.FileIdentificationResult `json:"identification"`
	Entropy        models.EntropyClassification    `json:"entropy"`
	Steganography  models.SteganographyResult      `json:"steganography"`
	Polyglot       models.PolyglotResult           `json:"polyglot"`
	Payloads       models.PayloadAnalysis          `json:"payloads"`
	Threat         models.ThreatScore              `json:"threat"`
}

// Engine runs the full pipeline with a fixed configuration.
type Engine struct {
	cfg Config
	log *slog.Logger
}

// New builds an engine. A nil logger falls back to slog.Default.
func New(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, log: logger}
}

// Analyze runs every stage over the buffer. It never returns an error;
// stages degrade to empty results on malformed input.
func (e *Engine) Analyze(data []byte, filename string) Report {
	start := time.Now()
	report := Report{
		ID:       uuid.NewString(),
		Filename: filename,
		Size:     len(data),
		Digest:   fmt.Sprintf("%016x", xxhash.Sum64(data)),
	}

	report.Identification = identify.Identify(data, filename)
	e.log.Debug("identification complete",
		"type", report.Identification.TypeID,
		"confidence", report.Identification.Confidence)

	value := entropy.Shannon(data)
	report.Entropy = entropy.Classify(report.Identification.TypeID, value)
	e.log.Debug("entropy classified",
		"value", value, "status", report.Entropy.Status)

	report.Steganography = stego.Detect(data, report.Identification.TypeID, e.cfg.Stego)
	if report.Steganography.Detected {
		e.log.Info("steganographic indicators present",
			"techniques", len(report.Steganography.Techniques),
			"confidence", report.Steganography.Confidence)
	}

	report.Polyglot = polyglot.Detect(data)
	if report.Polyglot.IsPolyglot {
		e.log.Info("polyglot structure present",
			"formats", report.Polyglot.Formats, "risk", report.Polyglot.Risk)
	}

	report.Payloads = payload.Hunt(data, report.Identification, e.cfg.Payload)

	report.Threat = threat.Score(threat.Input{
		Identification: report.Identification,
		Entropy:        report.Entropy,
		Filename:       filename,
		CodePatterns:   payload.CodePatterns(data),
		ForeignFormats: report.Polyglot.Formats,
	})

	report.Duration = time.Since(start)
	e.log.Info("analysis complete",
		"file", filename,
		"score", report.Threat.Score,
		"level", report.Threat.Level,
		"duration", report.Duration)
	return report
}
