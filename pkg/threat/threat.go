// Package threat aggregates upstream evidence into a normalized risk score.
// This is a pure aggregation stage: no byte-level inspection happens here.
// Negative indicator weights are evidence of benignity.
package threat

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
)

// Input carries the identification, entropy classification and raw
// structural findings the rule set scores over.
type Input struct {
	Identification models.FileIdentificationResult
	Entropy        models.EntropyClassification
	Filename       string
	// CodePatterns are code-like pattern names found in the raw bytes.
	CodePatterns []string
	// ForeignFormats are formats whose structural markers appear in the
	// buffer even though the file was identified as something else.
	ForeignFormats []string
}

// deceptiveNameGlobs match filenames whose penultimate extension is an
// executable-class extension, as in "invoice.exe.pdf".
var deceptiveNameGlobs = func() []glob.Glob {
	patterns := []string{
		"*.exe.*", "*.dll.*", "*.scr.*", "*.bat.*", "*.cmd.*",
		"*.com.*", "*.ps1.*", "*.vbs.*", "*.js.*", "*.jar.*",
	}
	globs := make([]glob.Glob, len(patterns))
	for i, p := range patterns {
		globs[i] = glob.MustCompile(p)
	}
	return globs
}()

var severityWeights = map[models.MismatchSeverity]int{
	models.MismatchNone:       0,
	models.MismatchMinor:      10,
	models.MismatchSuspicious: 40,
	models.MismatchCritical:   80,
}

// Score applies the fixed indicator rule set and normalizes the weighted
// sum into a 0-100 score with a risk level.
func Score(in Input) models.ThreatScore {
	var indicators []models.ThreatIndicator
	add := func(id, name string, cat models.IndicatorCategory, weight, confidence int, desc string) {
		indicators = append(indicators, models.ThreatIndicator{
			ID: id, Name: name, Category: cat,
			Weight: weight, Confidence: confidence, Description: desc,
		})
	}

	id := in.Identification

	if id.Confidence >= 85 {
		add("ident-confident", "confident identification", models.IndicatorHeader,
			-25, id.Confidence, fmt.Sprintf("file type %s identified with %d%% confidence", id.TypeID, id.Confidence))
	}
	if in.Entropy.Status == models.EntropyNormal {
		add("entropy-normal", "entropy within baseline", models.IndicatorEntropy,
			-20, 80, in.Entropy.Explanation)
	}
	if !id.ExtensionMismatch && id.ClaimedExtension != "" {
		add("ext-match", "extension matches content", models.IndicatorHeader,
			-10, 90, fmt.Sprintf(".%s is a valid extension for %s", id.ClaimedExtension, id.TypeID))
	}
	if isSafeMediaCategory(id.Category) && id.Confidence >= 80 {
		add("safe-media", "recognized media type", models.IndicatorContent,
			-15, 80, fmt.Sprintf("%s is a passive media format", id.TypeID))
	}

	if id.ExtensionMismatch {
		if w := severityWeights[id.MismatchSeverity]; w > 0 {
			add("ext-mismatch", "extension mismatch", models.IndicatorHeader,
				w, 90, fmt.Sprintf("content is %s but the name claims .%s (%s)",
					id.TypeID, id.ClaimedExtension, id.MismatchSeverity))
		}
	}
	if len(in.CodePatterns) > 0 &&
		id.Category != models.CategoryExecutable && id.Category != models.CategoryScript {
		weight := 50
		desc := fmt.Sprintf("%d code-like pattern(s) found in a %s file", len(in.CodePatterns), id.TypeID)
		if id.TypeID == "pdf" {
			// PDF legitimately carries JavaScript, so the signal is
			// weakened but not dismissed.
			weight = 30
			desc += " (documents may carry scripts legitimately)"
		}
		add("code-in-data", "code patterns in non-code file", models.IndicatorContent,
			weight, 75, desc)
	}
	if in.Entropy.Status == models.EntropyHigh {
		add("entropy-high", "entropy above baseline", models.IndicatorEntropy,
			25, 70, in.Entropy.Explanation)
	}
	if id.TypeID == "unknown" {
		// Kept deliberately small: ambiguity is not maliciousness.
		add("type-unknown", "unidentified type", models.IndicatorHeader,
			5, 50, "no signature matched; treat with mild caution only")
	}
	if id.Category == models.CategoryExecutable {
		add("executable", "executable content", models.IndicatorHeader,
			30, 90, fmt.Sprintf("%s is directly executable", id.TypeID))
	}
	if base := strings.ToLower(filepath.Base(in.Filename)); base != "" {
		for _, g := range deceptiveNameGlobs {
			if g.Match(base) {
				add("double-extension", "deceptive double extension", models.IndicatorBehavior,
					60, 85, fmt.Sprintf("filename %q hides an executable extension", base))
				break
			}
		}
	}
	if foreign := foreignOf(in.ForeignFormats, id.TypeID); len(foreign) > 0 {
		add("foreign-structure", "foreign format markers", models.IndicatorStructure,
			50, 80, fmt.Sprintf("markers for %s embedded in a %s file",
				strings.Join(foreign, ", "), id.TypeID))
	}

	return buildScore(indicators)
}

func isSafeMediaCategory(c models.Category) bool {
	return c == models.CategoryImage || c == models.CategoryAudio || c == models.CategoryVideo
}

// foreignOf filters out the identified type itself and its trivial aliases.
func foreignOf(formats []string, typeID string) []string {
	var foreign []string
	for _, f := range formats {
		if f == typeID || (f == "pe" && typeID == "exe") {
			continue
		}
		foreign = append(foreign, f)
	}
	return foreign
}

func buildScore(indicators []models.ThreatIndicator) models.ThreatScore {
	raw := 0.0
	for _, ind := range indicators {
		raw += float64(ind.Weight) * float64(ind.Confidence) / 100.0
	}
	normalized := 50.0 + raw*0.5
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 100 {
		normalized = 100
	}
	score := int(normalized)

	return models.ThreatScore{
		Raw:         raw,
		Score:       score,
		Level:       levelFor(score),
		Indicators:  indicators,
		Explanation: explain(indicators),
	}
}

func levelFor(score int) models.RiskLevel {
	switch {
	case score < 20:
		return models.RiskSafe
	case score < 35:
		return models.RiskLow
	case score < 55:
		return models.RiskMedium
	case score < 75:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}

func explain(indicators []models.ThreatIndicator) string {
	var benign, risky []string
	for _, ind := range indicators {
		if ind.Weight < 0 {
			benign = append(benign, ind.Name)
		} else if ind.Weight > 0 {
			risky = append(risky, ind.Name)
		}
	}
	var sb strings.Builder
	if len(benign) > 0 {
		sb.WriteString("benign signals: " + strings.Join(benign, ", ") + ". ")
	}
	if len(risky) > 0 {
		sb.WriteString("risk signals: " + strings.Join(risky, ", ") + ".")
	} else {
		sb.WriteString("no risk indicators were found.")
	}
	return strings.TrimSpace(sb.String())
}
